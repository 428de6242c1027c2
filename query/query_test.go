package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kreopt/structure/ir"
)

var sensors = map[string]any{
	"site": "north",
	"readings": []any{
		map[string]any{"id": 1, "temp": 21.5, "ok": true},
		map[string]any{"id": 2, "temp": 35.0, "ok": false},
		map[string]any{"id": 3, "temp": 19.0, "ok": true},
	},
}

func TestEval(t *testing.T) {
	d := ir.MustFrom(sensors)
	tests := []struct {
		src  string
		want any
	}{
		{`site`, "north"},
		{`len(readings)`, 3},
		{`doc.site + "!"`, "north!"},
		{`readings[0].id + 10`, 11},
		{`getpath("$.readings[2].temp")`, 19.0},
		{`haspath("$.nope")`, false},
		{`map(filter(readings, .ok), .id)`, []any{1, 3}},
		{`listpath("$.readings[*].id")`, []any{1, 2, 3}},
		{`{"n": 1, "s": [nil]}`, map[string]any{"n": 1, "s": []any{nil}}},
		{`10000000000`, 1e10},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(d, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got.Interface()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalScalarDoc(t *testing.T) {
	got, err := Eval(ir.MustFrom(4), `doc * 2`)
	if err != nil {
		t.Fatal(err)
	}
	if got.AsInt() != 8 {
		t.Errorf("got %v", got.Interface())
	}
}

func TestEvalErrors(t *testing.T) {
	d := ir.MustFrom(sensors)
	if _, err := Eval(d, `site +`); err == nil {
		t.Error("want compile error")
	}
	if _, err := Eval(d, `getpath("$.missing")`); err == nil {
		t.Errorf("getpath: %v", err)
	}
}

func TestMatch(t *testing.T) {
	d := ir.MustFrom(sensors)
	ok, err := Match(d, `site == "north" && len(readings) > 2`)
	if err != nil || !ok {
		t.Errorf("got %v %v", ok, err)
	}
	ok, err = Match(d, `any(readings, .temp > 40)`)
	if err != nil || ok {
		t.Errorf("got %v %v", ok, err)
	}
	if _, err := Match(d, `site`); err == nil {
		t.Error("want error for non-bool result")
	}
}

func TestFilter(t *testing.T) {
	d := ir.MustFrom(sensors)
	readings := d.Get("readings")
	got, err := Filter(readings, `it.ok && index > 0`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 || got.Elem(0).GetInt("id", 0) != 3 {
		t.Errorf("got %v", got.Interface())
	}
	if !got.Elem(0).Same(readings.Elem(2)) {
		t.Error("filtered element is not shared")
	}
	if _, err := Filter(d, `true`); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("filter on object: %v", err)
	}
}

func TestContains(t *testing.T) {
	d := ir.MustFrom(sensors)
	tests := []struct {
		name    string
		pattern any
		want    bool
	}{
		{"null", nil, true},
		{"subset", map[string]any{"site": "north"}, true},
		{"wrong value", map[string]any{"site": "south"}, false},
		{"missing key", map[string]any{"zone": nil}, false},
		{"any value", map[string]any{"readings": nil}, true},
		{"array length", map[string]any{"readings": []any{nil}}, false},
		{"array elements", map[string]any{"readings": []any{nil, map[string]any{"ok": false}, nil}}, true},
		{"type", []any{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(d, ir.MustFrom(tt.pattern)); got != tt.want {
				t.Errorf("got %v", got)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	d := ir.MustFrom(sensors)
	pattern := ir.MustFrom(map[string]any{
		"readings": []any{map[string]any{"ok": false, "id": nil}},
	})
	got := Trim(pattern, d)
	want := map[string]any{"readings": []any{map[string]any{"ok": false, "id": 2}}}
	if diff := cmp.Diff(want, got.Interface()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
