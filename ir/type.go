package ir

import "fmt"

// Type is the tag of a node. The values double as the dcm wire tags.
type Type byte

const (
	NullType   Type = 'n'
	IntType    Type = 'i'
	FloatType  Type = 'f'
	BoolType   Type = 'b'
	StringType Type = 's'
	ObjectType Type = 'o'
	ArrayType  Type = 'a'
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		IntType:    "Int",
		FloatType:  "Float",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown type %q>", byte(t))
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Int":    IntType,
		"Float":  FloatType,
		"Bool":   BoolType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		IntType,
		FloatType,
		BoolType,
		StringType,
		ObjectType,
		ArrayType,
	}
}

// Valid reports whether t is one of the known tags.
func (t Type) Valid() bool {
	switch t {
	case NullType, IntType, FloatType, BoolType, StringType, ObjectType, ArrayType:
		return true
	}
	return false
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
