package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kreopt/structure/ir"
)

func TestFprint(t *testing.T) {
	d := ir.MustFrom(map[string]any{
		"name":  "pump",
		"rates": []any{1, 2.5, []any{true}},
		"cfg":   map[string]any{"gain": 2.0, "off": nil},
		"empty": map[string]any{},
		"a b":   []any{},
	})
	got := Sprint(d)
	want := strings.Join([]string{
		`"a b": []`,
		`cfg:`,
		`  gain: 2.0`,
		`  off: null`,
		`empty: {}`,
		`name: "pump"`,
		`rates:`,
		`  - 1`,
		`  - 2.5`,
		`  -`,
		`    - true`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestScalarRoot(t *testing.T) {
	for _, tt := range []struct {
		in   any
		want string
	}{
		{nil, "null\n"},
		{-3, "-3\n"},
		{"x\ty", "\"x\\ty\"\n"},
		{[]any{}, "[]\n"},
	} {
		if got := Sprint(ir.MustFrom(tt.in)); got != tt.want {
			t.Errorf("Sprint(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIndent(t *testing.T) {
	d := ir.MustFrom(map[string]any{"a": map[string]any{"b": 1}})
	buf := &bytes.Buffer{}
	if err := Fprint(buf, d, Indent(4)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a:\n    b: 1\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestColorsKeepText(t *testing.T) {
	c := NewColors()
	d := ir.MustFrom(map[string]any{"pct": "100%"})
	got := Sprint(d, WithColors(c))
	if !strings.Contains(got, "100%") || strings.Contains(got, "%%") {
		t.Errorf("got %q", got)
	}
}

func TestErrored(t *testing.T) {
	if err := Fprint(&bytes.Buffer{}, ir.MustFrom(1).Key("x")); err == nil {
		t.Error("want error")
	}
}
