// Package query evaluates expr-lang expressions against documents.
//
// Expressions see the document as plain Go values. When the document is
// an object its members are variables; the whole document is always
// available as doc, which takes precedence over a member named doc.
// Filter also binds the current element to it and its position to index.
//
// The functions getpath(p), listpath(p) and haspath(p) take a document
// path such as "$.a[0]" and resolve it against doc.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/kreopt/structure/debug"
	"github.com/kreopt/structure/ir"
)

// Eval evaluates src against d and returns the result as a document.
// Integer results outside the int32 range become Float.
func Eval(d ir.Document, src string) (ir.Document, error) {
	if err := d.Err(); err != nil {
		return ir.Document{}, err
	}
	res, err := run(d, src, env(d))
	if err != nil {
		return ir.Document{}, err
	}
	v, err := fromResult(res)
	if err != nil {
		return ir.Document{}, fmt.Errorf("query: %q: %w", src, err)
	}
	return ir.From(v, ir.WithSymbols(d.Symbols()))
}

// Match reports whether the boolean expression src holds for d.
func Match(d ir.Document, src string) (bool, error) {
	if err := d.Err(); err != nil {
		return false, err
	}
	res, err := run(d, src, env(d), expr.AsBool())
	if err != nil {
		return false, err
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("query: %q returned %T, want bool: %w", src, res, ir.ErrTypeMismatch)
	}
	return ok, nil
}

// Filter returns a new array holding the elements of the array d for
// which the boolean expression src holds. The elements are shared with d.
func Filter(d ir.Document, src string) (ir.Document, error) {
	if err := d.Err(); err != nil {
		return ir.Document{}, err
	}
	if !d.IsArray() {
		return ir.Document{}, &ir.Error{Op: "filter", Type: d.Type(), Err: ir.ErrTypeMismatch}
	}
	prg, err := expr.Compile(src, options(d, expr.AsBool())...)
	if err != nil {
		return ir.Document{}, fmt.Errorf("query: compile %q: %w", src, err)
	}
	whole := d.Interface()
	res := ir.NewArray(ir.WithSymbols(d.Symbols()))
	for i, e := range d.Elems() {
		out, err := expr.Run(prg, map[string]any{"it": e.Interface(), "index": i, "doc": whole})
		if err != nil {
			return ir.Document{}, fmt.Errorf("query: %q at index %d: %w", src, i, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return ir.Document{}, fmt.Errorf("query: %q returned %T, want bool: %w", src, out, ir.ErrTypeMismatch)
		}
		if !keep {
			continue
		}
		if err := res.Append(e); err != nil {
			return ir.Document{}, err
		}
	}
	if debug.Query() {
		debug.Logf("query: filter %q kept %d of %d\n", src, res.Len(), d.Len())
	}
	return res, nil
}

func env(d ir.Document) map[string]any {
	v := d.Interface()
	res := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		for k, e := range m {
			res[k] = e
		}
	}
	res["doc"] = v
	return res
}

func run(d ir.Document, src string, env map[string]any, opts ...expr.Option) (any, error) {
	prg, err := expr.Compile(src, options(d, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("query: compile %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("query: %q: %w", src, err)
	}
	if debug.Query() {
		debug.Logf("query: %q -> %v\n", src, res)
	}
	return res, nil
}

func options(d ir.Document, extra ...expr.Option) []expr.Option {
	return append([]expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			v, err := d.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return v.Interface(), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			vs, err := d.List(params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(vs))
			for i, v := range vs {
				res[i] = v.Interface()
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := d.Lookup(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
	}, extra...)
}
