package ir

import "strconv"

// Elem returns a handle on the array element at i. The index is taken
// modulo the length, so negative indexes count from the end. The handle
// carries ErrTypeMismatch if d is not an array and ErrIndexOutOfRange if
// the array is empty.
func (d Document) Elem(i int) Document {
	if d.err != nil {
		return d
	}
	if !d.IsArray() {
		return d.fail(opErr("elem", strconv.Itoa(i), d.Type(), ErrTypeMismatch))
	}
	vs := d.node.arr.values
	if len(vs) == 0 {
		return d.fail(opErr("elem", strconv.Itoa(i), 0, ErrIndexOutOfRange))
	}
	j := i % len(vs)
	if j < 0 {
		j += len(vs)
	}
	return d.child(vs[j])
}

// AtIndex returns the array element at i, failing with ErrTypeMismatch if
// d is not an array and ErrIndexOutOfRange unless 0 <= i < d.Len().
func (d Document) AtIndex(i int) (Document, error) {
	if d.err != nil {
		return d, d.err
	}
	if !d.IsArray() {
		err := opErr("at", strconv.Itoa(i), d.Type(), ErrTypeMismatch)
		return d.fail(err), err
	}
	vs := d.node.arr.values
	if i < 0 || i >= len(vs) {
		err := opErr("at", strconv.Itoa(i), 0, ErrIndexOutOfRange)
		return d.fail(err), err
	}
	return d.child(vs[i]), nil
}

// Append adds v to the end of an array, promoting a Null receiver to an
// empty array first. A Document v is appended by alias.
func (d Document) Append(v any) error {
	n, err := d.writable("append")
	if err != nil {
		return err
	}
	n.initIfNull(ArrayType)
	if n.typ != ArrayType {
		return opErr("append", "", n.typ, ErrTypeMismatch)
	}
	c, err := d.nodeFor(v)
	if err != nil {
		return opErr("append", "", 0, err)
	}
	if c.holds(n) {
		return opErr("append", "", 0, ErrCycle)
	}
	n.arr.values = append(n.arr.values, c)
	return nil
}

// Clear empties an array in place.
func (d Document) Clear() error {
	n, err := d.writable("clear")
	if err != nil {
		return err
	}
	if n.typeOf() != ArrayType {
		return opErr("clear", "", n.typeOf(), ErrTypeMismatch)
	}
	clear(n.arr.values)
	n.arr.values = n.arr.values[:0]
	return nil
}
