package ir

import "strconv"

// The As methods never fail. Combinations that make no sense yield the
// zero value of the requested type.
//
//	from \ to  Int         Float   Bool     String
//	Int        value       value   v != 0   decimal
//	Float      truncated   value   false    %f
//	Bool       0 / 1       0       value    "true" / "false"
//	String     0           0       false    value
//
// Float to Bool is always false and Bool to Float is always 0; stored
// fixtures depend on both.

func (d Document) AsInt() int32 {
	switch d.Type() {
	case IntType:
		return d.node.i
	case FloatType:
		return int32(d.node.f)
	case BoolType:
		if d.node.b {
			return 1
		}
	}
	return 0
}

func (d Document) AsFloat() float64 {
	switch d.Type() {
	case IntType:
		return float64(d.node.i)
	case FloatType:
		return d.node.f
	}
	return 0
}

func (d Document) AsBool() bool {
	switch d.Type() {
	case IntType:
		return d.node.i != 0
	case BoolType:
		return d.node.b
	}
	return false
}

func (d Document) AsString() string {
	switch d.Type() {
	case IntType:
		return strconv.FormatInt(int64(d.node.i), 10)
	case FloatType:
		return strconv.FormatFloat(d.node.f, 'f', 6, 64)
	case BoolType:
		return strconv.FormatBool(d.node.b)
	case StringType:
		return d.node.s
	}
	return ""
}

// Scalar lists the types As can produce.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool | string
}

// As coerces d to T following the table above. Integer results are
// converted from AsInt, so unsigned targets wrap negative values.
func As[T Scalar](d Document) T {
	var res T
	switch p := any(&res).(type) {
	case *int:
		*p = int(d.AsInt())
	case *int8:
		*p = int8(d.AsInt())
	case *int16:
		*p = int16(d.AsInt())
	case *int32:
		*p = d.AsInt()
	case *int64:
		*p = int64(d.AsInt())
	case *uint:
		*p = uint(d.AsInt())
	case *uint8:
		*p = uint8(d.AsInt())
	case *uint16:
		*p = uint16(d.AsInt())
	case *uint32:
		*p = uint32(d.AsInt())
	case *uint64:
		*p = uint64(d.AsInt())
	case *float32:
		*p = float32(d.AsFloat())
	case *float64:
		*p = d.AsFloat()
	case *bool:
		*p = d.AsBool()
	case *string:
		*p = d.AsString()
	}
	return res
}
