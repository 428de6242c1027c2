package ir

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Hash returns a 64-bit structural hash of d. Structurally equal documents
// hash equally regardless of object member order or symbol table, since
// keys are hashed by name. The hash is stable across processes.
func (d Document) Hash() uint64 {
	return d.hashNode(d.node)
}

func (d Document) hashNode(n *node) uint64 {
	h := fnv.New64a()
	var b [8]byte
	t := n.typeOf()
	h.Write([]byte{byte(t)})

	switch t {
	case IntType:
		binary.LittleEndian.PutUint32(b[:4], uint32(n.i))
		h.Write(b[:4])
	case FloatType:
		binary.LittleEndian.PutUint64(b[:], floatBits(n.f))
		h.Write(b[:])
	case BoolType:
		if n.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case StringType:
		h.Write([]byte(n.s))
	case ArrayType:
		for _, v := range n.arr.values {
			// order dependent
			binary.LittleEndian.PutUint64(b[:], d.hashNode(v))
			h.Write(b[:])
		}
	case ObjectType:
		// entries are summed so that map order does not matter.
		var sum uint64
		for k, v := range n.obj.fields {
			eh := fnv.New64a()
			eh.Write([]byte(d.Name(k)))
			binary.LittleEndian.PutUint64(b[:], d.hashNode(v))
			eh.Write(b[:])
			sum += eh.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}

// floatBits maps the floats Equal treats as one value to one bit pattern.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(f)
}
