package ir

// Truth reports whether d is truthy: non-empty containers and strings,
// non-zero numbers and true. Null is false.
func Truth(d Document) bool {
	switch d.Type() {
	case ObjectType, ArrayType:
		return d.Len() != 0
	case StringType:
		return d.node.s != ""
	case IntType:
		return d.node.i != 0
	case FloatType:
		return d.node.f != 0
	case BoolType:
		return d.node.b
	}
	return false
}
