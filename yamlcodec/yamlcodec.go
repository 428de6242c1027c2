// Package yamlcodec converts documents to and from YAML.
package yamlcodec

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/kreopt/structure/debug"
	"github.com/kreopt/structure/format"
	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/symbol"
)

type Option func(*opts)

type opts struct {
	indent int
	syms   symbol.Table
}

// Indent sets the number of spaces per nesting level.
func Indent(n int) Option {
	return func(o *opts) { o.indent = n }
}

// Symbols sets the table decoded keys are interned in.
func Symbols(t symbol.Table) Option {
	return func(o *opts) { o.syms = t }
}

func newOpts(options []Option) *opts {
	o := &opts{indent: 2}
	for _, opt := range options {
		opt(o)
	}
	return o
}

// Encode renders d as YAML with mappings in ascending key order.
func Encode(d ir.Document, options ...Option) ([]byte, error) {
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("yamlcodec: encode: %w", err)
	}
	o := newOpts(options)
	v, err := toYAML(d)
	if err != nil {
		return nil, err
	}
	res, err := yaml.MarshalWithOptions(v, yaml.Indent(o.indent), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlcodec: encode: %w", err)
	}
	if debug.Codec() {
		debug.Logf("yamlcodec: encoded %d bytes\n", len(res))
	}
	return res, nil
}

func toYAML(d ir.Document) (any, error) {
	switch d.Type() {
	case ir.IntType:
		return int(d.AsInt()), nil
	case ir.FloatType:
		return d.AsFloat(), nil
	case ir.BoolType:
		return d.AsBool(), nil
	case ir.StringType:
		return d.AsString(), nil
	case ir.ArrayType:
		res := make([]any, 0, d.Len())
		for _, e := range d.Elems() {
			v, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case ir.ObjectType:
		ms, err := d.Members()
		if err != nil {
			return nil, fmt.Errorf("yamlcodec: encode: %w", err)
		}
		res := make(yaml.MapSlice, 0, len(ms))
		for _, m := range ms {
			v, err := toYAML(m.Val)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: m.Name, Value: v})
		}
		return res, nil
	}
	return nil, nil
}

// Decode parses a YAML document. Integers that fit in an int32 become Int
// and other numbers Float. Mapping keys that are not strings are
// converted with fmt; other scalars without a document counterpart, such
// as timestamps, become strings.
func Decode(b []byte, options ...Option) (ir.Document, error) {
	o := newOpts(options)
	var v any
	if err := yaml.UnmarshalWithOptions(b, &v, yaml.UseOrderedMap()); err != nil {
		if debug.Codec() {
			debug.Logf("yamlcodec: decode: %v\n", err)
		}
		return ir.Document{}, fmt.Errorf("yamlcodec: %w: %w", ir.ErrParse, err)
	}
	var docOpts []ir.Option
	if o.syms != nil {
		docOpts = []ir.Option{ir.WithSymbols(o.syms)}
	}
	return ir.From(fromYAML(v), docOpts...)
}

// fromYAML rewrites decoded values into those accepted by ir.From.
func fromYAML(v any) any {
	switch x := v.(type) {
	case nil, bool, string, float64:
		return x
	case float32:
		return float64(x)
	case int:
		return intValue(int64(x))
	case int64:
		return intValue(x)
	case uint64:
		if x > math.MaxInt32 {
			return float64(x)
		}
		return int32(x)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = fromYAML(e)
		}
		return res
	case yaml.MapSlice:
		res := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			res = append(res, ir.KeyVal{Key: keyString(item.Key), Val: fromYAML(item.Value)})
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = fromYAML(e)
		}
		return res
	}
	return fmt.Sprint(v)
}

func intValue(v int64) any {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return float64(v)
	}
	return int32(v)
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	if k == nil {
		return "null"
	}
	return fmt.Sprint(k)
}

type Codec struct {
	Opts []Option
}

func (Codec) Format() format.Format { return format.YAMLFormat }

func (c Codec) Encode(d ir.Document) ([]byte, error) {
	return Encode(d, c.Opts...)
}

func (c Codec) Decode(b []byte) (ir.Document, error) {
	return Decode(b, c.Opts...)
}
