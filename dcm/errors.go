package dcm

import (
	"fmt"

	"github.com/kreopt/structure/ir"
)

// Error is a decoding failure at a byte offset of the input.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dcm: offset %d: %s", e.Offset, e.Msg)
}

func (e *Error) Unwrap() error {
	return ir.ErrParse
}
