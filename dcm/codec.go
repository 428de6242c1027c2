package dcm

import (
	"github.com/kreopt/structure/format"
	"github.com/kreopt/structure/ir"
)

// Codec adapts the package functions to a fixed set of options.
type Codec struct {
	Opts []Option
}

func (Codec) Format() format.Format { return format.DCMFormat }

func (c Codec) Encode(d ir.Document) ([]byte, error) {
	return Encode(d, c.Opts...)
}

func (c Codec) Decode(b []byte) (ir.Document, error) {
	return Decode(b, c.Opts...)
}
