package dcm

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/kreopt/structure/debug"
	"github.com/kreopt/structure/ir"
)

// Decode parses one value from the start of b. Bytes after the value are
// ignored.
func Decode(b []byte, opts ...Option) (ir.Document, error) {
	d, _, err := DecodePrefix(b, opts...)
	return d, err
}

// DecodePrefix is Decode that also reports how many bytes of b the value
// occupied.
func DecodePrefix(b []byte, opts ...Option) (ir.Document, int, error) {
	dec := &decoder{state: newState(opts), buf: b}
	if dec.syms != nil {
		dec.docOpts = []ir.Option{ir.WithSymbols(dec.syms)}
	}
	d, err := dec.value(0)
	if err != nil {
		if debug.Codec() {
			debug.Logf("dcm: decode: %v\n", err)
		}
		return ir.Document{}, 0, err
	}
	return d, dec.off, nil
}

type decoder struct {
	*state
	buf     []byte
	off     int
	docOpts []ir.Option
}

func (dec *decoder) errorf(off int, format string, args ...any) error {
	return &Error{Offset: off, Msg: fmt.Sprintf(format, args...)}
}

func (dec *decoder) remaining() int {
	return len(dec.buf) - dec.off
}

func (dec *decoder) take(n int, what string) ([]byte, error) {
	if n > dec.remaining() {
		return nil, dec.errorf(dec.off, "truncated %s: need %d bytes, have %d", what, n, dec.remaining())
	}
	res := dec.buf[dec.off : dec.off+n]
	dec.off += n
	return res, nil
}

func (dec *decoder) uint32(what string) (uint32, error) {
	p, err := dec.take(4, what)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(p), nil
}

func (dec *decoder) string(what string) (string, error) {
	start := dec.off
	n, err := dec.uint32(what + " length")
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(dec.remaining()) {
		return "", dec.errorf(start, "%s length %d past end of input", what, n)
	}
	p, _ := dec.take(int(n), what)
	return string(p), nil
}

// count reads a container size and rejects sizes that cannot fit in the
// rest of the input, given that each item takes at least size bytes.
func (dec *decoder) count(what string, size int) (int, error) {
	start := dec.off
	n, err := dec.uint32(what + " count")
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(size) > uint64(dec.remaining()) {
		return 0, dec.errorf(start, "%s count %d exceeds remaining %d bytes", what, n, dec.remaining())
	}
	return int(n), nil
}

func (dec *decoder) value(depth int) (ir.Document, error) {
	start := dec.off
	p, err := dec.take(1, "tag")
	if err != nil {
		return ir.Document{}, err
	}
	t := ir.Type(p[0])
	d := ir.New(dec.docOpts...)
	switch t {
	case ir.NullType:
		return d, nil
	case ir.IntType:
		v, err := dec.uint32("int")
		if err != nil {
			return d, err
		}
		return d, d.Set(int32(v))
	case ir.FloatType:
		p, err := dec.take(8, "float")
		if err != nil {
			return d, err
		}
		return d, d.Set(math.Float64frombits(binary.NativeEndian.Uint64(p)))
	case ir.BoolType:
		p, err := dec.take(1, "bool")
		if err != nil {
			return d, err
		}
		if p[0] > 1 {
			return d, dec.errorf(start+1, "bool byte %#x", p[0])
		}
		return d, d.Set(p[0] == 1)
	case ir.StringType:
		s, err := dec.string("string")
		if err != nil {
			return d, err
		}
		return d, d.Set(s)
	case ir.ObjectType, ir.ArrayType:
		if dec.maxDepth > 0 && depth >= dec.maxDepth {
			return d, dec.errorf(start, "nesting deeper than %d", dec.maxDepth)
		}
		if t == ir.ObjectType {
			return dec.object(depth + 1)
		}
		return dec.array(depth + 1)
	default:
		return d, dec.errorf(start, "unknown tag %q", p[0])
	}
}

func (dec *decoder) object(depth int) (ir.Document, error) {
	d := ir.NewObject(dec.docOpts...)
	n, err := dec.count("object", 5)
	if err != nil {
		return d, err
	}
	for range n {
		keyOff := dec.off
		key, err := dec.string("key")
		if err != nil {
			return d, err
		}
		if d.HasKey(key) {
			return d, dec.errorf(keyOff, "duplicate key %q", key)
		}
		v, err := dec.value(depth)
		if err != nil {
			return d, err
		}
		if _, err := d.Emplace(key, v); err != nil {
			return d, err
		}
	}
	return d, nil
}

func (dec *decoder) array(depth int) (ir.Document, error) {
	d := ir.NewArray(dec.docOpts...)
	n, err := dec.count("array", 1)
	if err != nil {
		return d, err
	}
	for range n {
		v, err := dec.value(depth)
		if err != nil {
			return d, err
		}
		if err := d.Append(v); err != nil {
			return d, err
		}
	}
	return d, nil
}
