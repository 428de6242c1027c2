// Package jsoncodec converts documents to and from JSON text.
package jsoncodec

import (
	"github.com/kreopt/structure/format"
	"github.com/kreopt/structure/ir"
)

type Codec struct {
	Opts []Option
}

// EmbeddedCodec returns a Codec in embedded mode.
func EmbeddedCodec() Codec {
	return Codec{Opts: []Option{Embedded()}}
}

func (Codec) Format() format.Format { return format.JSONFormat }

func (c Codec) Encode(d ir.Document) ([]byte, error) {
	return Encode(d, c.Opts...)
}

func (c Codec) Decode(b []byte) (ir.Document, error) {
	return Decode(b, c.Opts...)
}
