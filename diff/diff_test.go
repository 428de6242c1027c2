package diff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kreopt/structure/ir"
)

type flat struct {
	Path string
	Kind Kind
	From any
	To   any
}

func flatten(cs []Change) []flat {
	var res []flat
	for _, c := range cs {
		res = append(res, flat{c.Path, c.Kind, c.From.Interface(), c.To.Interface()})
	}
	return res
}

func TestChanges(t *testing.T) {
	tests := []struct {
		name     string
		from, to any
		want     []flat
	}{
		{"equal", map[string]any{"a": 1}, map[string]any{"a": 1}, nil},
		{"scalar", 1, 2, []flat{{"$", Modified, 1, 2}}},
		{"retype", 1, "1", []flat{{"$", Modified, 1, "1"}}},
		{
			"object",
			map[string]any{"a": 1, "b": 2, "n": map[string]any{"x": true}},
			map[string]any{"b": 3, "c": nil, "n": map[string]any{"x": false}},
			[]flat{
				{"$.a", Removed, 1, nil},
				{"$.b", Modified, 2, 3},
				{"$.c", Added, nil, nil},
				{"$.n.x", Modified, true, false},
			},
		},
		{
			"array",
			[]any{1, 2, 3},
			[]any{1, 5},
			[]flat{{"$[1]", Modified, 2, 5}, {"$[2]", Removed, 3, nil}},
		},
		{
			"array grows",
			[]any{},
			[]any{"x"},
			[]flat{{"$[0]", Added, nil, "x"}},
		},
		{
			"quoted key",
			map[string]any{"a.b": 1},
			map[string]any{},
			[]flat{{"$.'a.b'", Removed, 1, nil}},
		},
		{"object to array", map[string]any{}, []any{}, []flat{{"$", Modified, map[string]any{}, []any{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flatten(Changes(ir.MustFrom(tt.from), ir.MustFrom(tt.to)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	cs := Changes(ir.MustFrom(map[string]any{"a": 1}), ir.MustFrom(map[string]any{"b": 2}))
	d, err := Document(cs)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{
		map[string]any{"path": "$.a", "kind": "removed", "from": 1},
		map[string]any{"path": "$.b", "kind": "added", "to": 2},
	}
	if diff := cmp.Diff(want, d.Interface()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	from := ir.MustFrom(map[string]any{"a": 1, "b": "x"})
	to := ir.MustFrom(map[string]any{"a": 1, "b": "y"})
	got, err := Text(from, to)
	if err != nil {
		t.Fatal(err)
	}
	var plus, minus, ctx []string
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		switch line[:2] {
		case "+ ":
			plus = append(plus, line)
		case "- ":
			minus = append(minus, line)
		default:
			ctx = append(ctx, line)
		}
	}
	if len(plus) != 1 || !strings.Contains(plus[0], `"y"`) {
		t.Errorf("added lines %q", plus)
	}
	if len(minus) != 1 || !strings.Contains(minus[0], `"x"`) {
		t.Errorf("removed lines %q", minus)
	}
	if len(ctx) != 3 || ctx[0] != "  {" || ctx[2] != "  }" {
		t.Errorf("context lines %q", ctx)
	}
	same, err := Text(from, from.DeepCopy())
	if err != nil || same != "" {
		t.Errorf("equal documents: %q %v", same, err)
	}
}
