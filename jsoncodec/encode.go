package jsoncodec

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/kreopt/structure/debug"
	"github.com/kreopt/structure/ir"
)

// Encode renders d as JSON. Object members are written in ascending key
// order.
func Encode(d ir.Document, options ...Option) ([]byte, error) {
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("jsoncodec: encode: %w", err)
	}
	o := newOpts(options)
	if o.embedded && d.Type().IsLeaf() {
		return nil, fmt.Errorf("jsoncodec: encode: embedded root must be a container, have %s: %w", d.Type(), ir.ErrUnsupported)
	}
	var jOpts []jsontext.Options
	if o.indent != "" {
		jOpts = append(jOpts, jsontext.WithIndent(o.indent))
	}
	buf := bytes.NewBuffer(nil)
	enc := &encoder{opts: o, je: jsontext.NewEncoder(buf, jOpts...)}
	if err := enc.value(d, 0); err != nil {
		return nil, err
	}
	res := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	if o.maxSize > 0 && len(res) > o.maxSize {
		return nil, fmt.Errorf("jsoncodec: encode: %d bytes exceed limit of %d: %w", len(res), o.maxSize, ir.ErrUnsupported)
	}
	if debug.Codec() {
		debug.Logf("jsoncodec: encoded %d bytes\n", len(res))
	}
	return res, nil
}

type encoder struct {
	*opts
	je *jsontext.Encoder
}

func (e *encoder) value(d ir.Document, depth int) error {
	if !d.Type().IsLeaf() {
		depth++
		if e.maxDepth > 0 && depth > e.maxDepth {
			return fmt.Errorf("jsoncodec: encode: nesting deeper than %d: %w", e.maxDepth, ir.ErrUnsupported)
		}
	}
	switch d.Type() {
	case ir.NullType:
		return e.je.WriteToken(jsontext.Null)
	case ir.IntType:
		return e.je.WriteToken(jsontext.Int(int64(d.AsInt())))
	case ir.FloatType:
		f := d.AsFloat()
		if e.embedded {
			f = float64(float32(f))
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("jsoncodec: encode: float %v: %w", d.AsFloat(), ir.ErrUnsupported)
		}
		return e.je.WriteToken(jsontext.Float(f))
	case ir.BoolType:
		return e.je.WriteToken(jsontext.Bool(d.AsBool()))
	case ir.StringType:
		return e.je.WriteToken(jsontext.String(d.AsString()))
	case ir.ObjectType:
		ms, err := d.Members()
		if err != nil {
			return fmt.Errorf("jsoncodec: encode: %w", err)
		}
		if err := e.je.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, m := range ms {
			if e.embedded && m.Val.IsNull() {
				continue
			}
			if err := e.je.WriteToken(jsontext.String(m.Name)); err != nil {
				return err
			}
			if err := e.value(m.Val, depth); err != nil {
				return err
			}
		}
		return e.je.WriteToken(jsontext.EndObject)
	case ir.ArrayType:
		if err := e.je.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, v := range d.Elems() {
			if e.embedded && v.IsNull() {
				continue
			}
			if err := e.value(v, depth); err != nil {
				return err
			}
		}
		return e.je.WriteToken(jsontext.EndArray)
	}
	return fmt.Errorf("jsoncodec: encode: %s: %w", d.Type(), ir.ErrUnsupported)
}

// EstimateKeys counts the object keys and string values of d, the number
// of strings an embedded builder has to keep alive while rendering it.
// Scalars at the root count as zero.
func EstimateKeys(d ir.Document) int {
	n := 0
	switch d.Type() {
	case ir.ObjectType:
		for _, v := range d.Items() {
			n += 1 + itemKeys(v)
		}
	case ir.ArrayType:
		for _, v := range d.Elems() {
			n += itemKeys(v)
		}
	}
	return n
}

func itemKeys(d ir.Document) int {
	switch d.Type() {
	case ir.ObjectType, ir.ArrayType:
		return EstimateKeys(d)
	case ir.StringType:
		return 1
	}
	return 0
}
