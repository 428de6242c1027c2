package ir

import (
	"fmt"
	"math"
)

// From builds a document from a Go value. Accepted values are nil, bool,
// the integer kinds (which must fit in an int32), float32, float64,
// string, []any, []Document, map[string]any, []KeyVal, Document and
// *Document. Documents, including ones nested in slices and maps, are
// aliased rather than copied.
func From(v any, opts ...Option) (Document, error) {
	switch x := v.(type) {
	case Document:
		return x, x.err
	case *Document:
		return *x, x.err
	}
	d := New(opts...)
	n, err := d.nodeFor(v)
	if err != nil {
		return Document{}, err
	}
	d.node = n
	return d, nil
}

// MustFrom is From that panics on error.
func MustFrom(v any, opts ...Option) Document {
	d, err := From(v, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// nodeFor returns the node to store for v: the aliased node of a Document
// or a fresh node converted from a Go value.
func (d Document) nodeFor(v any) (*node, error) {
	switch x := v.(type) {
	case Document:
		return aliasNode(x)
	case *Document:
		return aliasNode(*x)
	}
	n := &node{typ: NullType}
	switch x := v.(type) {
	case nil:
	case bool:
		n.setBool(x)
	case string:
		n.setString(x)
	case int:
		return intNode(int64(x))
	case int8:
		n.setInt(int32(x))
	case int16:
		n.setInt(int32(x))
	case int32:
		n.setInt(x)
	case int64:
		return intNode(x)
	case uint:
		if uint64(x) > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d", ErrIntRange, x)
		}
		n.setInt(int32(x))
	case uint8:
		n.setInt(int32(x))
	case uint16:
		n.setInt(int32(x))
	case uint32:
		return intNode(int64(x))
	case uint64:
		if x > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d", ErrIntRange, x)
		}
		n.setInt(int32(x))
	case float32:
		n.setFloat(float64(x))
	case float64:
		n.setFloat(x)
	case []any:
		n.initIfNull(ArrayType)
		for _, e := range x {
			c, err := d.nodeFor(e)
			if err != nil {
				return nil, err
			}
			n.arr.values = append(n.arr.values, c)
		}
	case []Document:
		n.initIfNull(ArrayType)
		for _, e := range x {
			c, err := aliasNode(e)
			if err != nil {
				return nil, err
			}
			n.arr.values = append(n.arr.values, c)
		}
	case map[string]any:
		n.initIfNull(ObjectType)
		syms := d.Symbols()
		for k, e := range x {
			c, err := d.nodeFor(e)
			if err != nil {
				return nil, err
			}
			n.obj.fields[syms.Intern(k)] = c
		}
	case []KeyVal:
		n.initIfNull(ObjectType)
		syms := d.Symbols()
		for _, kv := range x {
			h := syms.Intern(kv.Key)
			if _, ok := n.obj.fields[h]; ok {
				continue
			}
			c, err := d.nodeFor(kv.Val)
			if err != nil {
				return nil, err
			}
			n.obj.fields[h] = c
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
	return n, nil
}

func aliasNode(d Document) (*node, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.node == nil {
		return &node{typ: NullType}, nil
	}
	return d.node, nil
}

func intNode(v int64) (*node, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrIntRange, v)
	}
	n := &node{}
	n.setInt(int32(v))
	return n, nil
}

// Interface returns d as plain Go values: nil, int, float64, bool, string,
// []any and map[string]any.
func (d Document) Interface() any {
	switch d.Type() {
	case IntType:
		return int(d.node.i)
	case FloatType:
		return d.node.f
	case BoolType:
		return d.node.b
	case StringType:
		return d.node.s
	case ArrayType:
		res := make([]any, 0, d.Len())
		for _, e := range d.Elems() {
			res = append(res, e.Interface())
		}
		return res
	case ObjectType:
		res := make(map[string]any, d.Len())
		for h, v := range d.Items() {
			res[d.Name(h)] = v.Interface()
		}
		return res
	}
	return nil
}
