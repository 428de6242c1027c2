package query

import "github.com/kreopt/structure/ir"

// Contains reports whether doc matches pattern. A Null pattern matches
// anything. An object pattern matches an object holding every key of the
// pattern with a matching value; other keys are ignored. An array
// pattern matches an array of the same length element by element.
// Scalars must be equal.
func Contains(doc, pattern ir.Document) bool {
	if pattern.IsNull() {
		return true
	}
	if doc.Type() != pattern.Type() {
		return false
	}
	switch pattern.Type() {
	case ir.ObjectType:
		for h, p := range pattern.Items() {
			v, err := doc.At(pattern.Name(h))
			if err != nil || !Contains(v, p) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if doc.Len() != pattern.Len() {
			return false
		}
		for i, p := range pattern.Elems() {
			if !Contains(doc.Elem(i), p) {
				return false
			}
		}
		return true
	}
	return doc.Equal(pattern)
}

// Trim returns a deep copy of doc restricted to what pattern names:
// object keys absent from the pattern are dropped and arrays keep, for
// each pattern element, the first unused element it matches.
func Trim(pattern, doc ir.Document) ir.Document {
	switch {
	case pattern.IsObject() && doc.IsObject():
		res := ir.NewObject(ir.WithSymbols(doc.Symbols()))
		for h, p := range pattern.Items() {
			k := pattern.Name(h)
			v, err := doc.At(k)
			if err != nil {
				continue
			}
			res.Key(k).Set(Trim(p, v))
		}
		return res
	case pattern.IsArray() && doc.IsArray():
		res := ir.NewArray(ir.WithSymbols(doc.Symbols()))
		used := make([]bool, doc.Len())
		for _, p := range pattern.Elems() {
			for i, v := range doc.Elems() {
				if used[i] || !Contains(v, p) {
					continue
				}
				used[i] = true
				res.Append(Trim(p, v))
				break
			}
		}
		return res
	}
	return doc.DeepCopy()
}
