package ir

import (
	"math"

	"github.com/kreopt/structure/symbol"
)

// Equal reports whether d and o are structurally equal: objects with the
// same key set and pairwise equal values, arrays with the same length and
// pairwise equal elements, scalars with the same tag and value, or both
// Null. Every NaN equals every other NaN, and 0 equals -0.
//
// Keys are compared by hash when both documents share a symbol table and
// by name otherwise.
func (d Document) Equal(o Document) bool {
	return equalNodes(d.node, o.node, d.Symbols(), o.Symbols())
}

func equalNodes(a, b *node, sa, sb symbol.Table) bool {
	ta, tb := a.typeOf(), b.typeOf()
	if ta != tb {
		return false
	}
	if a == b {
		return true
	}
	switch ta {
	case NullType:
		return true
	case IntType:
		return a.i == b.i
	case FloatType:
		return a.f == b.f || math.IsNaN(a.f) && math.IsNaN(b.f)
	case BoolType:
		return a.b == b.b
	case StringType:
		return a.s == b.s
	case ArrayType:
		if len(a.arr.values) != len(b.arr.values) {
			return false
		}
		for i := range a.arr.values {
			if !equalNodes(a.arr.values[i], b.arr.values[i], sa, sb) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.obj.fields) != len(b.obj.fields) {
			return false
		}
		for h, av := range a.obj.fields {
			hb := h
			if sa != sb {
				hb = sb.Intern(symbol.NameOf(sa, h))
			}
			bv, ok := b.obj.fields[hb]
			if !ok {
				return false
			}
			if !equalNodes(av, bv, sa, sb) {
				return false
			}
		}
		return true
	}
	return false
}
