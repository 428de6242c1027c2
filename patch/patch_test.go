package patch

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kreopt/structure/ir"
)

func TestApply(t *testing.T) {
	d := ir.MustFrom(map[string]any{"a": 1, "list": []any{"x"}})
	ops := `[
		{"op": "replace", "path": "/a", "value": 2},
		{"op": "add", "path": "/list/-", "value": "y"},
		{"op": "add", "path": "/b", "value": {"c": null}}
	]`
	got, err := Apply(d, []byte(ops))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": 2, "list": []any{"x", "y"}, "b": map[string]any{"c": nil}}
	if diff := cmp.Diff(want, got.Interface()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if d.GetInt("a", 0) != 1 {
		t.Error("input modified")
	}
}

func TestApplyErrors(t *testing.T) {
	d := ir.MustFrom(map[string]any{"a": 1})
	if _, err := Apply(d, []byte(`not json`)); !errors.Is(err, ir.ErrParse) {
		t.Errorf("bad patch: %v", err)
	}
	if _, err := Apply(d, []byte(`[{"op": "remove", "path": "/nope"}]`)); err == nil {
		t.Error("want error removing a missing path")
	}
	if _, err := Apply(d, []byte(`[{"op": "test", "path": "/a", "value": 2}]`)); err == nil {
		t.Error("want failed test op")
	}
}

func TestMerge(t *testing.T) {
	d := ir.MustFrom(map[string]any{"a": 1, "b": map[string]any{"c": 1, "d": 2}})
	got, err := Merge(d, []byte(`{"a": null, "b": {"c": 3}, "e": [1]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"b": map[string]any{"c": 3, "d": 2}, "e": []any{1}}
	if diff := cmp.Diff(want, got.Interface()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateMerge(t *testing.T) {
	from := ir.MustFrom(map[string]any{"a": 1, "b": 2})
	to := ir.MustFrom(map[string]any{"a": 1, "c": "x"})
	mp, err := CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(mp, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"b": nil, "c": "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	back, err := Merge(from, mp)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(to) {
		t.Errorf("merge of created patch: %v", back.Interface())
	}
}
