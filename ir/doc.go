// Package ir provides the in-memory document model: a mutable tree of
// dynamically typed values addressed through Document handles.
//
// # Overview
//
// A document is one of seven kinds, reported by Type:
//
//   - NullType: the absence of a value, and the state of a fresh node
//   - IntType: a 32-bit signed integer
//   - FloatType: a 64-bit float
//   - BoolType: true or false
//   - StringType: a byte string
//   - ObjectType: an unordered map from interned keys to documents
//   - ArrayType: an ordered list of documents
//
// Object keys are strings interned in a symbol.Table and stored by their
// 32-bit hash. Documents use symbol.Default() unless built with
// WithSymbols.
//
// # Handles
//
// Document is a small value type referring to a node. Copying it yields an
// alias: both copies see every change made through either, including
// changes of type. Set replaces a node's value in place, so
//
//	a := ir.NewObject()
//	b := a
//	b.Set(5)
//	// a.IsInt() == true
//
// DeepCopy yields an independent tree.
//
// # Access
//
// Two access styles are offered. The strict one returns errors:
//
//	v, err := doc.At("a")
//	e, err := doc.AtIndex(3)
//	v, err := doc.Lookup("$.a[3].b")
//
// The permissive one never fails and creates missing structure on the way:
//
//	doc.Key("a").Key("b").Set(5) // {"a": {"b": 5}}
//	doc.Key("list").Append(1)    // vivifies an array
//
// A permissive chain that hits a type mismatch returns a handle carrying
// the error. It reads as Null, and mutating through it returns the error.
//
// # Scalars
//
// AsInt, AsFloat, AsBool and AsString coerce any document to a scalar
// without failing; the conversion table is documented next to them.
package ir
