package ir

import (
	"iter"
	"slices"
	"strings"

	"github.com/kreopt/structure/symbol"
)

// The sequences below are single pass; call the method again to restart.
// They are empty unless d is of the matching container type, so loops
// need no type check. Object order is the map's and is unspecified.
// Inserting or erasing while a sequence is being consumed is undefined.

// Keys yields the key hashes of an object.
func (d Document) Keys() iter.Seq[symbol.Hash] {
	return func(yield func(symbol.Hash) bool) {
		if !d.IsObject() {
			return
		}
		for h := range d.node.obj.fields {
			if !yield(h) {
				return
			}
		}
	}
}

// KeyNames yields the key names of an object.
func (d Document) KeyNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for h := range d.Keys() {
			if !yield(d.Name(h)) {
				return
			}
		}
	}
}

// Items yields the entries of an object. The values alias the live
// children.
func (d Document) Items() iter.Seq2[symbol.Hash, Document] {
	return func(yield func(symbol.Hash, Document) bool) {
		if !d.IsObject() {
			return
		}
		for h, c := range d.node.obj.fields {
			if !yield(h, d.child(c)) {
				return
			}
		}
	}
}

// Elems yields the index and element of an array in index order. The
// elements alias the live children.
func (d Document) Elems() iter.Seq2[int, Document] {
	return func(yield func(int, Document) bool) {
		if !d.IsArray() {
			return
		}
		for i, c := range d.node.arr.values {
			if !yield(i, d.child(c)) {
				return
			}
		}
	}
}

// SortedKeys returns the key names of an object in ascending order.
func (d Document) SortedKeys() []string {
	return slices.Sorted(d.KeyNames())
}

// Member is an object entry with its key name resolved.
type Member struct {
	Name string
	Val  Document
}

// Members returns the entries of an object in ascending key order. It
// fails if a key hash has no name in d's symbol table.
func (d Document) Members() ([]Member, error) {
	ms := make([]Member, 0, d.Len())
	for h, v := range d.Items() {
		name, ok := d.Symbols().Name(h)
		if !ok {
			return nil, opErr("members", h.String(), 0, ErrUnsupported)
		}
		ms = append(ms, Member{Name: name, Val: v})
	}
	slices.SortFunc(ms, func(a, b Member) int { return strings.Compare(a.Name, b.Name) })
	return ms, nil
}
