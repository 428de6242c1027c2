package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
	}{
		{"d", DCMFormat},
		{"dcm", DCMFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yml", YAMLFormat},
		{"YAML", YAMLFormat},
		{".yml", YAMLFormat},
		{".dcm", DCMFormat},
	} {
		got, err := ParseFormat(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
	for _, bad := range []string{"tony", "", "ym", ".yam"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseFormat(%q): got %v", bad, err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		b, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(b); err != nil || g != f {
			t.Errorf("%s: got %v %v", f, g, err)
		}
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Error("want error for unknown format")
	}
	if s := Format(-1).Suffix(); s != "" {
		t.Errorf("unknown format suffix %q", s)
	}
}

func TestFromSuffix(t *testing.T) {
	for _, tt := range []struct {
		name string
		want Format
		ok   bool
	}{
		{"a.json", JSONFormat, true},
		{"dir/b.dcm", DCMFormat, true},
		{"c.yml", YAMLFormat, true},
		{"c.yaml", YAMLFormat, true},
		{"UPPER.YML", YAMLFormat, true},
		{"a.json.dcm", DCMFormat, true},
		{".yml", 0, false},
		{".json", 0, false},
		{"noext", 0, false},
	} {
		got, ok := FromSuffix(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromSuffix(%q) = %v %v", tt.name, got, ok)
		}
	}
}

func TestSuffixParses(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.Suffix())
		if err != nil || got != f {
			t.Errorf("%s: ParseFormat(%q) = %v, %v", f, f.Suffix(), got, err)
		}
		if got, ok := FromSuffix("x" + f.Suffix()); !ok || got != f {
			t.Errorf("%s: FromSuffix = %v %v", f, got, ok)
		}
	}
}
