// Package diff compares documents, either structurally as a list of
// changes or textually as a line diff of their JSON renderings.
package diff

import (
	"fmt"
	"maps"
	"slices"

	"github.com/kreopt/structure/ir"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Modified
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Change is one difference between two documents. From is Null for
// Added and To is Null for Removed.
type Change struct {
	Path string
	Kind Kind
	From ir.Document
	To   ir.Document
}

// Changes returns the differences between from and to in document
// order: object keys ascending, array indexes ascending. Containers of
// the same type are compared member by member; arrays by index. Anything
// else that is not equal is reported as Modified at its path.
func Changes(from, to ir.Document) []Change {
	return changes(nil, "$", from, to)
}

func changes(dst []Change, path string, from, to ir.Document) []Change {
	switch {
	case from.IsObject() && to.IsObject():
		keys := map[string]bool{}
		for k := range from.KeyNames() {
			keys[k] = true
		}
		for k := range to.KeyNames() {
			keys[k] = true
		}
		for _, k := range slices.Sorted(maps.Keys(keys)) {
			p := ir.FieldPath(path, k)
			f, ferr := from.At(k)
			t, terr := to.At(k)
			switch {
			case ferr != nil:
				dst = append(dst, Change{Path: p, Kind: Added, To: t})
			case terr != nil:
				dst = append(dst, Change{Path: p, Kind: Removed, From: f})
			default:
				dst = changes(dst, p, f, t)
			}
		}
		return dst
	case from.IsArray() && to.IsArray():
		n := max(from.Len(), to.Len())
		for i := range n {
			p := ir.IndexPath(path, i)
			switch {
			case i >= from.Len():
				dst = append(dst, Change{Path: p, Kind: Added, To: to.Elem(i)})
			case i >= to.Len():
				dst = append(dst, Change{Path: p, Kind: Removed, From: from.Elem(i)})
			default:
				dst = changes(dst, p, from.Elem(i), to.Elem(i))
			}
		}
		return dst
	}
	if from.Equal(to) {
		return dst
	}
	return append(dst, Change{Path: path, Kind: Modified, From: from, To: to})
}

// Document renders changes as an array of objects with keys path, kind
// and, where they apply, from and to.
func Document(cs []Change) (ir.Document, error) {
	res := ir.NewArray()
	for _, c := range cs {
		e := ir.NewObject()
		kvs := []ir.KeyVal{{Key: "path", Val: c.Path}, {Key: "kind", Val: c.Kind.String()}}
		if c.Kind != Added {
			kvs = append(kvs, ir.KeyVal{Key: "from", Val: c.From.DeepCopy()})
		}
		if c.Kind != Removed {
			kvs = append(kvs, ir.KeyVal{Key: "to", Val: c.To.DeepCopy()})
		}
		if err := e.EmplaceAll(kvs...); err != nil {
			return ir.Document{}, err
		}
		if err := res.Append(e); err != nil {
			return ir.Document{}, err
		}
	}
	return res, nil
}
