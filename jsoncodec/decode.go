package jsoncodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/kreopt/structure/debug"
	"github.com/kreopt/structure/ir"
)

// Decode parses a single JSON value. Integers that fit in an int32 become
// Int; every other number becomes Float. Duplicate object names and
// trailing values are errors.
func Decode(b []byte, options ...Option) (ir.Document, error) {
	o := newOpts(options)
	d, err := decode(b, o)
	if err != nil {
		if debug.Codec() {
			debug.Logf("jsoncodec: decode: %v\n", err)
		}
		return ir.Document{}, err
	}
	return d, nil
}

func decode(b []byte, o *opts) (ir.Document, error) {
	if o.maxSize > 0 && len(b) > o.maxSize {
		return ir.Document{}, fmt.Errorf("jsoncodec: %d bytes exceed limit of %d: %w", len(b), o.maxSize, ir.ErrParse)
	}
	dec := &decoder{opts: o, jd: jsontext.NewDecoder(bytes.NewReader(b))}
	if o.syms != nil {
		dec.docOpts = []ir.Option{ir.WithSymbols(o.syms)}
	}
	if o.embedded && dec.jd.PeekKind() != '{' {
		return ir.Document{}, fmt.Errorf("jsoncodec: embedded input must be an object: %w", ir.ErrParse)
	}
	d, err := dec.value(0)
	if err != nil {
		return ir.Document{}, err
	}
	switch _, err := dec.jd.ReadToken(); {
	case err == nil:
		return ir.Document{}, fmt.Errorf("jsoncodec: trailing data at offset %d: %w", dec.jd.InputOffset(), ir.ErrParse)
	case !errors.Is(err, io.EOF):
		return ir.Document{}, parseErr(err)
	}
	return d, nil
}

type decoder struct {
	*opts
	jd      *jsontext.Decoder
	docOpts []ir.Option
}

func parseErr(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("jsoncodec: %w: %w", ir.ErrParse, err)
}

func (dec *decoder) value(depth int) (ir.Document, error) {
	tok, err := dec.jd.ReadToken()
	if err != nil {
		return ir.Document{}, parseErr(err)
	}
	d := ir.New(dec.docOpts...)
	switch tok.Kind() {
	case 'n':
		return d, nil
	case 't', 'f':
		return d, d.Set(tok.Bool())
	case '"':
		return d, d.Set(tok.String())
	case '0':
		return d, dec.number(d, tok.String())
	case '{':
		if dec.maxDepth > 0 && depth >= dec.maxDepth {
			return d, fmt.Errorf("jsoncodec: nesting deeper than %d: %w", dec.maxDepth, ir.ErrParse)
		}
		return d, dec.object(d, depth+1)
	case '[':
		if dec.maxDepth > 0 && depth >= dec.maxDepth {
			return d, fmt.Errorf("jsoncodec: nesting deeper than %d: %w", dec.maxDepth, ir.ErrParse)
		}
		return d, dec.array(d, depth+1)
	}
	return d, fmt.Errorf("jsoncodec: unexpected token %s: %w", tok.Kind(), ir.ErrParse)
}

func (dec *decoder) number(d ir.Document, text string) error {
	if i, err := strconv.ParseInt(text, 10, 32); err == nil {
		return d.Set(int32(i))
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("jsoncodec: number %q: %w", text, ir.ErrParse)
	}
	if dec.embedded {
		f = float64(float32(f))
	}
	return d.Set(f)
}

func (dec *decoder) object(d ir.Document, depth int) error {
	if err := d.Set(ir.NewObject(dec.docOpts...)); err != nil {
		return err
	}
	for dec.jd.PeekKind() != '}' {
		tok, err := dec.jd.ReadToken()
		if err != nil {
			return parseErr(err)
		}
		key := tok.String()
		v, err := dec.value(depth)
		if err != nil {
			return err
		}
		if _, err := d.Emplace(key, v); err != nil {
			return err
		}
	}
	if _, err := dec.jd.ReadToken(); err != nil {
		return parseErr(err)
	}
	return nil
}

func (dec *decoder) array(d ir.Document, depth int) error {
	if err := d.Set(ir.NewArray(dec.docOpts...)); err != nil {
		return err
	}
	for dec.jd.PeekKind() != ']' {
		v, err := dec.value(depth)
		if err != nil {
			return err
		}
		if err := d.Append(v); err != nil {
			return err
		}
	}
	if _, err := dec.jd.ReadToken(); err != nil {
		return parseErr(err)
	}
	return nil
}
