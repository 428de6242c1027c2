package ir

import (
	"github.com/kreopt/structure/symbol"
)

// KeyVal is one entry of an object literal.
type KeyVal struct {
	Key string
	Val any
}

// Key returns a handle on the value at key, creating what is missing: a
// Null receiver becomes an empty object and an absent key is inserted
// with a Null value. On any other receiver type the returned handle
// carries ErrTypeMismatch.
//
//	doc.Key("a").Key("b").Set(5)
func (d Document) Key(key string) Document {
	if d.err != nil {
		return d
	}
	return d.keyHash(d.Symbols().Intern(key), key)
}

// KeyHash is Key for an already interned key.
func (d Document) KeyHash(h symbol.Hash) Document {
	if d.err != nil {
		return d
	}
	return d.keyHash(h, "")
}

func (d Document) keyHash(h symbol.Hash, key string) Document {
	n, err := d.writable("key")
	if err != nil {
		return d.fail(err)
	}
	n.initIfNull(ObjectType)
	if n.typ != ObjectType {
		return d.fail(opErr("key", d.keyName(h, key), n.typ, ErrTypeMismatch))
	}
	c, ok := n.obj.fields[h]
	if !ok {
		c = &node{typ: NullType}
		n.obj.fields[h] = c
	}
	return d.child(c)
}

func (d Document) keyName(h symbol.Hash, key string) string {
	if key != "" {
		return key
	}
	return d.Name(h)
}

// At returns the value at key without creating anything. It fails with
// ErrTypeMismatch when d is not an object and ErrKeyNotFound when the key
// is absent.
func (d Document) At(key string) (Document, error) {
	if d.err != nil {
		return d, d.err
	}
	return d.atHash(d.Symbols().Intern(key), key)
}

// AtHash is At for an already interned key.
func (d Document) AtHash(h symbol.Hash) (Document, error) {
	if d.err != nil {
		return d, d.err
	}
	return d.atHash(h, "")
}

func (d Document) atHash(h symbol.Hash, key string) (Document, error) {
	if !d.IsObject() {
		err := opErr("at", d.keyName(h, key), d.Type(), ErrTypeMismatch)
		return d.fail(err), err
	}
	c, ok := d.node.obj.fields[h]
	if !ok {
		err := opErr("at", d.keyName(h, key), 0, ErrKeyNotFound)
		return d.fail(err), err
	}
	return d.child(c), nil
}

// Get is the permissive form of At: it returns a Null handle when d is not
// an object or has no such key. The returned handle carries the error,
// so Get(k).Err() tells the cases apart.
func (d Document) Get(key string) Document {
	res, _ := d.At(key)
	return res
}

// GetInt returns the value at key coerced to int32, or def when absent.
func (d Document) GetInt(key string, def int32) int32 {
	v, err := d.At(key)
	if err != nil {
		return def
	}
	return v.AsInt()
}

// GetFloat returns the value at key coerced to float64, or def when absent.
func (d Document) GetFloat(key string, def float64) float64 {
	v, err := d.At(key)
	if err != nil {
		return def
	}
	return v.AsFloat()
}

// GetBool returns the value at key coerced to bool, or def when absent.
func (d Document) GetBool(key string, def bool) bool {
	v, err := d.At(key)
	if err != nil {
		return def
	}
	return v.AsBool()
}

// GetString returns the value at key coerced to string, or def when absent.
func (d Document) GetString(key string, def string) string {
	v, err := d.At(key)
	if err != nil {
		return def
	}
	return v.AsString()
}

func (d Document) HasKey(key string) bool {
	if !d.IsObject() {
		return false
	}
	_, ok := d.node.obj.fields[d.Symbols().Intern(key)]
	return ok
}

// HasHash is HasKey for an already interned key.
func (d Document) HasHash(h symbol.Hash) bool {
	if !d.IsObject() {
		return false
	}
	_, ok := d.node.obj.fields[h]
	return ok
}

// Emplace inserts v at key unless the key is present, promoting a Null
// receiver to an object first. It reports whether the insertion happened.
// A Document v is inserted by alias.
func (d Document) Emplace(key string, v any) (bool, error) {
	n, err := d.writable("emplace")
	if err != nil {
		return false, err
	}
	n.initIfNull(ObjectType)
	if n.typ != ObjectType {
		return false, opErr("emplace", key, n.typ, ErrTypeMismatch)
	}
	h := d.Symbols().Intern(key)
	if _, ok := n.obj.fields[h]; ok {
		return false, nil
	}
	c, err := d.nodeFor(v)
	if err != nil {
		return false, opErr("emplace", key, 0, err)
	}
	if c.holds(n) {
		return false, opErr("emplace", key, 0, ErrCycle)
	}
	n.obj.fields[h] = c
	return true, nil
}

// EmplaceAll emplaces each entry in turn. Entries whose key is already
// present are skipped.
func (d Document) EmplaceAll(kvs ...KeyVal) error {
	n, err := d.writable("emplace")
	if err != nil {
		return err
	}
	n.initIfNull(ObjectType)
	if n.typ != ObjectType {
		return opErr("emplace", "", n.typ, ErrTypeMismatch)
	}
	for _, kv := range kvs {
		if _, err := d.Emplace(kv.Key, kv.Val); err != nil {
			return err
		}
	}
	return nil
}

// EmplaceMap emplaces every entry of m.
func (d Document) EmplaceMap(m map[string]any) error {
	kvs := make([]KeyVal, 0, len(m))
	for k, v := range m {
		kvs = append(kvs, KeyVal{Key: k, Val: v})
	}
	return d.EmplaceAll(kvs...)
}

// Erase removes key from an object and reports whether it was present.
func (d Document) Erase(key string) (bool, error) {
	n, err := d.writable("erase")
	if err != nil {
		return false, err
	}
	if n.typeOf() != ObjectType {
		return false, opErr("erase", key, n.typeOf(), ErrTypeMismatch)
	}
	h := d.Symbols().Intern(key)
	if _, ok := n.obj.fields[h]; !ok {
		return false, nil
	}
	delete(n.obj.fields, h)
	return true, nil
}

// CreateObject emplaces an empty object at key.
func (d Document) CreateObject(key string) (bool, error) {
	return d.Emplace(key, NewObject(WithSymbols(d.Symbols())))
}

// CreateArray emplaces an empty array at key.
func (d Document) CreateArray(key string) (bool, error) {
	return d.Emplace(key, NewArray(WithSymbols(d.Symbols())))
}

// Merge upserts every key of the object o into d: each value is deep
// copied and assigned to d.Key(k), replacing what was there. d must be an
// object or Null and o must be an object.
func (d Document) Merge(o Document) error {
	n, err := d.writable("merge")
	if err != nil {
		return err
	}
	if o.err != nil {
		return o.err
	}
	if t := n.typeOf(); t != ObjectType && t != NullType {
		return opErr("merge", "", t, ErrTypeMismatch)
	}
	if !o.IsObject() {
		return opErr("merge", "", o.Type(), ErrTypeMismatch)
	}
	n.initIfNull(ObjectType)
	for h, v := range o.Items() {
		if err := d.keyHash(d.rekey(o, h), "").Set(v.DeepCopy()); err != nil {
			return err
		}
	}
	return nil
}

// rekey translates a key of o into d's symbol table.
func (d Document) rekey(o Document, h symbol.Hash) symbol.Hash {
	if d.Symbols() == o.Symbols() {
		return h
	}
	return d.Symbols().Intern(o.Name(h))
}
