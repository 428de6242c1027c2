package dcm

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/kreopt/structure/debug"
	"github.com/kreopt/structure/ir"
)

// Encode returns the wire form of d.
func Encode(d ir.Document, opts ...Option) ([]byte, error) {
	return Append(nil, d, opts...)
}

// Append appends the wire form of d to dst. Object members are written in
// ascending key order, so equal documents encode to equal bytes.
func Append(dst []byte, d ir.Document, opts ...Option) ([]byte, error) {
	if err := d.Err(); err != nil {
		return dst, fmt.Errorf("dcm: encode: %w", err)
	}
	s := newState(opts)
	res, err := s.appendValue(dst, d, 0)
	if err != nil {
		return dst, err
	}
	if debug.Codec() {
		debug.Logf("dcm: encoded %d bytes\n", len(res)-len(dst))
	}
	return res, nil
}

func (s *state) appendValue(b []byte, d ir.Document, depth int) ([]byte, error) {
	t := d.Type()
	if !t.IsLeaf() {
		depth++
		if s.maxDepth > 0 && depth > s.maxDepth {
			return nil, fmt.Errorf("dcm: encode: nesting deeper than %d: %w", s.maxDepth, ir.ErrUnsupported)
		}
	}
	b = append(b, byte(t))
	switch t {
	case ir.NullType:
	case ir.IntType:
		b = binary.NativeEndian.AppendUint32(b, uint32(d.AsInt()))
	case ir.FloatType:
		b = binary.NativeEndian.AppendUint64(b, math.Float64bits(d.AsFloat()))
	case ir.BoolType:
		if d.AsBool() {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	case ir.StringType:
		var err error
		if b, err = appendString(b, d.AsString()); err != nil {
			return nil, err
		}
	case ir.ObjectType:
		ms, err := d.Members()
		if err != nil {
			return nil, fmt.Errorf("dcm: encode: %w", err)
		}
		b = binary.NativeEndian.AppendUint32(b, uint32(len(ms)))
		for _, m := range ms {
			if b, err = appendString(b, m.Name); err != nil {
				return nil, err
			}
			if b, err = s.appendValue(b, m.Val, depth); err != nil {
				return nil, err
			}
		}
	case ir.ArrayType:
		n := d.Len()
		if uint64(n) > math.MaxUint32 {
			return nil, fmt.Errorf("dcm: encode: array of %d elements: %w", n, ir.ErrUnsupported)
		}
		b = binary.NativeEndian.AppendUint32(b, uint32(n))
		var err error
		for _, e := range d.Elems() {
			if b, err = s.appendValue(b, e, depth); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func appendString(b []byte, s string) ([]byte, error) {
	if uint64(len(s)) > math.MaxUint32 {
		return nil, fmt.Errorf("dcm: encode: string of %d bytes: %w", len(s), ir.ErrUnsupported)
	}
	b = binary.NativeEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...), nil
}
