// Package structure ties the document model to its serialized forms.
//
// Documents live in package ir. Each supported format has a codec package
// (dcm, jsoncodec, yamlcodec); this package looks them up by format and
// converts between them.
package structure

import (
	"fmt"

	"github.com/kreopt/structure/dcm"
	"github.com/kreopt/structure/format"
	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/jsoncodec"
	"github.com/kreopt/structure/yamlcodec"
)

// Codec converts documents to and from one format.
type Codec interface {
	Format() format.Format
	Encode(ir.Document) ([]byte, error)
	Decode([]byte) (ir.Document, error)
}

var (
	_ Codec = dcm.Codec{}
	_ Codec = jsoncodec.Codec{}
	_ Codec = yamlcodec.Codec{}
)

// CodecFor returns the default codec of f.
func CodecFor(f format.Format) (Codec, error) {
	switch f {
	case format.DCMFormat:
		return dcm.Codec{}, nil
	case format.JSONFormat:
		return jsoncodec.Codec{}, nil
	case format.YAMLFormat:
		return yamlcodec.Codec{}, nil
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

// Convert decodes b from one format and encodes the result in another.
func Convert(b []byte, from, to format.Format) ([]byte, error) {
	dec, err := CodecFor(from)
	if err != nil {
		return nil, err
	}
	enc, err := CodecFor(to)
	if err != nil {
		return nil, err
	}
	return ConvertWith(b, dec, enc)
}

// ConvertWith is Convert with explicit codecs.
func ConvertWith(b []byte, dec, enc Codec) ([]byte, error) {
	d, err := dec.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", dec.Format(), err)
	}
	res, err := enc.Encode(d)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", enc.Format(), err)
	}
	return res, nil
}
