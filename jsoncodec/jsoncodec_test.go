package jsoncodec

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/symbol"
)

func TestEncodeCompact(t *testing.T) {
	d := ir.MustFrom(map[string]any{
		"b": []any{true, nil, "x"},
		"a": 1,
		"c": map[string]any{},
		"f": 2.5,
	})
	got, err := Encode(d)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":[true,null,"x"],"c":{},"f":2.5}`
	if string(got) != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	d := ir.MustFrom(map[string]any{"a": []any{1, 2}})
	got, err := Encode(d, Indent("  "))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "\n    1") {
		t.Errorf("not indented: %s", got)
	}
	if strings.HasSuffix(string(got), "\n") {
		t.Error("trailing newline")
	}
	back, err := Decode(got)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip: %v", back.Interface())
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`null`, nil},
		{`true`, true},
		{`"sé"`, "sé"},
		{`12`, 12},
		{`-2147483648`, math.MinInt32},
		{`2147483648`, 2147483648.0},
		{`1.0`, 1.0},
		{`1e2`, 100.0},
		{` {"a": [1, {"b": null}], "c": ""} `, map[string]any{"a": []any{1, map[string]any{"b": nil}}, "c": ""}},
		{`[]`, []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Decode([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, d.Interface()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeTypes(t *testing.T) {
	for in, want := range map[string]ir.Type{
		`1`:           ir.IntType,
		`1.0`:         ir.FloatType,
		`99999999999`: ir.FloatType,
		`"1"`:         ir.StringType,
	} {
		d, err := Decode([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		if d.Type() != want {
			t.Errorf("%s: got %s want %s", in, d.Type(), want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`{`,
		`{"a":}`,
		`[1,`,
		`[1 2]`,
		`1 2`,
		`{"a":1,"a":2}`,
		`nul`,
		`{"a":1}}`,
	} {
		if _, err := Decode([]byte(in)); !errors.Is(err, ir.ErrParse) {
			t.Errorf("Decode(%q): %v", in, err)
		}
	}
}

func TestDepthLimit(t *testing.T) {
	if _, err := Decode([]byte(`[[[1]]]`), MaxDepth(2)); !errors.Is(err, ir.ErrParse) {
		t.Errorf("decode: %v", err)
	}
	if _, err := Decode([]byte(`[[1]]`), MaxDepth(2)); err != nil {
		t.Errorf("decode at limit: %v", err)
	}
	d := ir.MustFrom([]any{[]any{[]any{}}})
	if _, err := Encode(d, MaxDepth(2)); !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("encode: %v", err)
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode(ir.MustFrom(math.NaN())); !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("NaN: %v", err)
	}
	if _, err := Encode(ir.MustFrom([]any{1}).Elem(0).Key("x")); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("errored handle: %v", err)
	}
	if _, err := Encode(ir.MustFrom("0123456789"), MaxSize(5)); !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("size: %v", err)
	}
}

func TestEmbedded(t *testing.T) {
	d := ir.MustFrom(map[string]any{"a": nil, "b": []any{nil, 1}, "f": 0.1})
	got, err := Encode(d, Embedded(), Indent("  "))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":[1],"f":0.10000000149011612}`
	if string(got) != want {
		t.Errorf("got %s want %s", got, want)
	}
	if _, err := Encode(ir.MustFrom(1), Embedded()); !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("scalar root: %v", err)
	}
	big := ir.NewArray()
	for range EmbeddedBufferSize {
		big.Append(1)
	}
	if _, err := Encode(big, Embedded()); !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("oversized: %v", err)
	}
	if _, err := Decode([]byte(`[1]`), Embedded()); !errors.Is(err, ir.ErrParse) {
		t.Errorf("array root: %v", err)
	}
	back, err := Decode([]byte(`{"f":0.1}`), Embedded())
	if err != nil {
		t.Fatal(err)
	}
	if back.GetFloat("f", 0) != float64(float32(0.1)) {
		t.Errorf("not narrowed: %v", back.GetFloat("f", 0))
	}
}

func TestEstimateKeys(t *testing.T) {
	d := ir.MustFrom(map[string]any{
		"a": "x",
		"b": []any{"y", 1, map[string]any{"c": 2}},
		"d": 3,
	})
	if got := EstimateKeys(d); got != 6 {
		t.Errorf("got %d", got)
	}
	if got := EstimateKeys(ir.MustFrom("s")); got != 0 {
		t.Errorf("scalar root: %d", got)
	}
}

func TestDecodeSymbols(t *testing.T) {
	tab := symbol.NewTable()
	d, err := Decode([]byte(`{"k":1}`), Symbols(tab))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tab.Name(symbol.Sum("k")); !ok {
		t.Error("key not interned")
	}
	if d.GetInt("k", 0) != 1 {
		t.Errorf("got %v", d.Interface())
	}
}

func TestCodec(t *testing.T) {
	c := EmbeddedCodec()
	if c.Format().String() != "json" {
		t.Errorf("format %s", c.Format())
	}
	b, err := c.Encode(ir.MustFrom(map[string]any{"a": nil}))
	if err != nil || string(b) != "{}" {
		t.Errorf("got %s %v", b, err)
	}
}
