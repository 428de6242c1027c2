package ir

import (
	"github.com/kreopt/structure/symbol"
)

// Document is a handle on a node of a document tree.
//
// Copying a Document aliases the node: both copies observe every mutation
// made through either of them. DeepCopy is the only way to obtain an
// independent tree.
//
// A Document may carry an error from a failed chained access such as
// d.Key("a").Key("b") on a non-object "a". Such a handle reads as Null and
// every mutation through it returns the carried error (see Err).
//
// The zero Document is a detached Null: it can be read but not written.
// Use New, NewObject or NewArray to obtain a writable handle.
//
// Documents are not safe for concurrent use. Aliases of one node share
// state without locking; callers sharing a tree between goroutines must
// synchronise externally.
type Document struct {
	node *node
	syms symbol.Table
	err  error
}

// Option configures a new Document.
type Option func(*Document)

// WithSymbols makes the document intern its keys in t instead of
// symbol.Default().
func WithSymbols(t symbol.Table) Option {
	return func(d *Document) { d.syms = t }
}

// New returns a handle on a fresh Null node.
func New(opts ...Option) Document {
	d := Document{node: &node{typ: NullType}}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewObject returns a handle on a fresh empty object.
func NewObject(opts ...Option) Document {
	d := New(opts...)
	d.node.initIfNull(ObjectType)
	return d
}

// NewArray returns a handle on a fresh empty array.
func NewArray(opts ...Option) Document {
	d := New(opts...)
	d.node.initIfNull(ArrayType)
	return d
}

// Symbols returns the key table used by d.
func (d Document) Symbols() symbol.Table {
	if d.syms == nil {
		return symbol.Default()
	}
	return d.syms
}

// Name returns the key name for h, as known to d's symbol table.
func (d Document) Name(h symbol.Hash) string {
	return symbol.NameOf(d.Symbols(), h)
}

// Err returns the error carried by d, if any.
func (d Document) Err() error {
	return d.err
}

// Same reports whether d and o alias the same node.
func (d Document) Same(o Document) bool {
	return d.node != nil && d.node == o.node
}

func (d Document) child(n *node) Document {
	return Document{node: n, syms: d.syms}
}

func (d Document) fail(err error) Document {
	return Document{syms: d.syms, err: err}
}

func (d Document) writable(op string) (*node, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.node == nil {
		return nil, opErr(op, "", 0, ErrDetached)
	}
	return d.node, nil
}

func (d Document) Type() Type {
	return d.node.typeOf()
}

func (d Document) IsNull() bool   { return d.Type() == NullType }
func (d Document) IsInt() bool    { return d.Type() == IntType }
func (d Document) IsFloat() bool  { return d.Type() == FloatType }
func (d Document) IsBool() bool   { return d.Type() == BoolType }
func (d Document) IsString() bool { return d.Type() == StringType }
func (d Document) IsObject() bool { return d.Type() == ObjectType }
func (d Document) IsArray() bool  { return d.Type() == ArrayType }

// Len returns the number of elements of an array or keys of an object,
// and 0 for anything else.
func (d Document) Len() int {
	return d.node.size()
}

func (d Document) Empty() bool {
	return d.Len() == 0
}

// Set replaces the value of the node d refers to, in place. Every alias of
// the node observes the new value and type.
//
// v may be any value accepted by From. When v is a Document, the node
// becomes a shallow copy of v's node: scalars are copied and containers
// are shared between the two nodes. Assign v.DeepCopy() to avoid sharing.
func (d Document) Set(v any) error {
	n, err := d.writable("set")
	if err != nil {
		return err
	}
	src, err := d.nodeFor(v)
	if err != nil {
		return opErr("set", "", n.typeOf(), err)
	}
	if src.below(n) {
		return opErr("set", "", n.typeOf(), ErrCycle)
	}
	n.assign(src)
	if n.typ == 0 {
		n.typ = NullType
	}
	return nil
}

// Take moves the node out of d: the returned handle refers to d's node and
// d is left on a fresh Null node.
func (d *Document) Take() Document {
	res := *d
	*d = Document{node: &node{typ: NullType}, syms: d.syms}
	return res
}

// Reset points d at a fresh Null node, detaching it from its aliases.
func (d *Document) Reset() {
	d.node = &node{typ: NullType}
	d.err = nil
}

// DeepCopy returns a handle on an independent copy of d's tree.
func (d Document) DeepCopy() Document {
	if d.node == nil {
		return Document{node: &node{typ: NullType}, syms: d.syms}
	}
	return d.child(d.node.clone())
}
