package ir

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrParse           = errors.New("parse error")
	ErrIntRange        = errors.New("integer out of int32 range")
	ErrUnsupported     = errors.New("unsupported value")
	ErrDetached        = errors.New("document has no node")

	// ErrCycle wraps ErrUnsupported: a document cannot contain itself.
	ErrCycle = fmt.Errorf("%w: document would contain itself", ErrUnsupported)
)

// Error describes a failed operation on a document. Err is one of the
// sentinel errors above.
type Error struct {
	Op   string
	Key  string
	Type Type
	Err  error
}

func (e *Error) Error() string {
	msg := "ir: " + e.Op
	if e.Key != "" {
		msg += " " + strconv.Quote(e.Key)
	}
	msg += ": " + e.Err.Error()
	if e.Type != 0 {
		msg += " (have " + e.Type.String() + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opErr(op, key string, t Type, err error) error {
	return &Error{Op: op, Key: key, Type: t, Err: err}
}
