package ir

import "github.com/kreopt/structure/symbol"

// node is the unit of storage. The tag always agrees with the payload:
// scalars live in the scalar fields, Object nodes hold obj and Array nodes
// hold arr. Containers are referenced through pointers so that a handle
// assignment can leave two nodes sharing one container.
//
// Nodes never reference their parents. Insertions that would make a node
// reachable from itself are refused, see below and holds.
type node struct {
	typ Type
	i   int32
	f   float64
	b   bool
	s   string
	obj *object
	arr *array
}

type object struct {
	fields map[symbol.Hash]*node
}

type array struct {
	values []*node
}

func newObject() *object {
	return &object{fields: map[symbol.Hash]*node{}}
}

func newArray() *array {
	return &array{}
}

func (n *node) typeOf() Type {
	if n == nil || n.typ == 0 {
		return NullType
	}
	return n.typ
}

// initIfNull promotes a null node to an empty container of type t.
func (n *node) initIfNull(t Type) {
	if n.typeOf() != NullType {
		return
	}
	switch t {
	case ObjectType:
		n.obj = newObject()
	case ArrayType:
		n.arr = newArray()
	default:
		return
	}
	n.typ = t
}

func (n *node) clear() {
	*n = node{typ: NullType}
}

func (n *node) setInt(v int32) {
	n.clear()
	n.typ = IntType
	n.i = v
}

func (n *node) setFloat(v float64) {
	n.clear()
	n.typ = FloatType
	n.f = v
}

func (n *node) setBool(v bool) {
	n.clear()
	n.typ = BoolType
	n.b = v
}

func (n *node) setString(v string) {
	n.clear()
	n.typ = StringType
	n.s = v
}

// assign makes n a shallow copy of src: scalars are copied, containers
// are shared.
func (n *node) assign(src *node) {
	if src == nil {
		n.clear()
		return
	}
	if n == src {
		return
	}
	*n = *src
}

func (n *node) size() int {
	switch n.typeOf() {
	case ObjectType:
		return len(n.obj.fields)
	case ArrayType:
		return len(n.arr.values)
	}
	return 0
}

// clone returns an independent copy of the graph rooted at n.
func (n *node) clone() *node {
	if n == nil {
		return &node{typ: NullType}
	}
	res := &node{}
	*res = *n
	switch n.typeOf() {
	case ObjectType:
		res.obj = &object{fields: make(map[symbol.Hash]*node, len(n.obj.fields))}
		for h, c := range n.obj.fields {
			res.obj.fields[h] = c.clone()
		}
	case ArrayType:
		res.arr = &array{values: make([]*node, len(n.arr.values))}
		for i, c := range n.arr.values {
			res.arr.values[i] = c.clone()
		}
	}
	return res
}

// below reports whether target is a strict descendant of n.
func (n *node) below(target *node) bool {
	switch n.typeOf() {
	case ObjectType:
		for _, c := range n.obj.fields {
			if c == target || c.below(target) {
				return true
			}
		}
	case ArrayType:
		for _, c := range n.arr.values {
			if c == target || c.below(target) {
				return true
			}
		}
	}
	return false
}

// holds reports whether n or a node below it owns the container of dst.
func (n *node) holds(dst *node) bool {
	switch n.typeOf() {
	case ObjectType:
		if n.obj == dst.obj {
			return true
		}
		for _, c := range n.obj.fields {
			if c.holds(dst) {
				return true
			}
		}
	case ArrayType:
		if n.arr == dst.arr {
			return true
		}
		for _, c := range n.arr.values {
			if c.holds(dst) {
				return true
			}
		}
	}
	return false
}
