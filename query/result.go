package query

import (
	"fmt"
	"math"
	"reflect"

	"github.com/kreopt/structure/ir"
)

// fromResult rewrites an expression result into values accepted by
// ir.From.
func fromResult(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, string, float64, ir.Document:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return intResult(int64(x)), nil
	case int64:
		return intResult(x), nil
	case int32, int16, int8, uint8, uint16:
		return x, nil
	case uint, uint32, uint64:
		u := reflect.ValueOf(x).Uint()
		if u > math.MaxInt32 {
			return float64(u), nil
		}
		return int32(u), nil
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			r, err := fromResult(e)
			if err != nil {
				return nil, err
			}
			res[i] = r
		}
		return res, nil
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			r, err := fromResult(e)
			if err != nil {
				return nil, err
			}
			res[k] = r
		}
		return res, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		res := make([]any, rv.Len())
		for i := range rv.Len() {
			r, err := fromResult(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res[i] = r
		}
		return res, nil
	}
	return nil, fmt.Errorf("result of type %T: %w", v, ir.ErrUnsupported)
}

func intResult(v int64) any {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return float64(v)
	}
	return int32(v)
}
