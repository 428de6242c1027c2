// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to documents.
//
// Documents travel through their JSON form, so the usual JSON limits
// apply: floats with integral values come back as Int when they fit in an
// int32.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/kreopt/structure/debug"
	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/jsoncodec"
)

// Apply applies the JSON patch ops to d and returns the patched document.
// d is not modified.
func Apply(d ir.Document, ops []byte) (ir.Document, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return ir.Document{}, fmt.Errorf("patch: decode: %w: %w", ir.ErrParse, err)
	}
	return transform(d, "apply", func(doc []byte) ([]byte, error) {
		return p.Apply(doc)
	})
}

// Merge applies the merge patch mp to d and returns the result. d is not
// modified.
func Merge(d ir.Document, mp []byte) (ir.Document, error) {
	return transform(d, "merge", func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, mp)
	})
}

// CreateMerge returns the merge patch that turns from into to.
func CreateMerge(from, to ir.Document) ([]byte, error) {
	a, err := jsoncodec.Encode(from)
	if err != nil {
		return nil, err
	}
	b, err := jsoncodec.Encode(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("patch: create merge: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch: created merge patch %s\n", res)
	}
	return res, nil
}

func transform(d ir.Document, op string, fn func([]byte) ([]byte, error)) (ir.Document, error) {
	in, err := jsoncodec.Encode(d)
	if err != nil {
		return ir.Document{}, err
	}
	if debug.Patch() {
		debug.Logf("patch: %s on %s\n", op, d)
	}
	out, err := fn(in)
	if err != nil {
		return ir.Document{}, fmt.Errorf("patch: %s: %w", op, err)
	}
	res, err := jsoncodec.Decode(out, jsoncodec.Symbols(d.Symbols()))
	if err != nil {
		return ir.Document{}, fmt.Errorf("patch: %s: result: %w", op, err)
	}
	return res, nil
}
