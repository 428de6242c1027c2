// Package format names the serialization formats a document can be
// converted to and from.
package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	DCMFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// spelling lists the names a format answers to and the file extensions
// that select it. The first name and the first extension are canonical.
type spelling struct {
	names []string
	exts  []string
}

var spellings = [...]spelling{
	DCMFormat:  {names: []string{"dcm", "d"}, exts: []string{".dcm"}},
	JSONFormat: {names: []string{"json", "j"}, exts: []string{".json"}},
	YAMLFormat: {names: []string{"yaml", "y", "yml"}, exts: []string{".yaml", ".yml"}},
}

func (f Format) spelling() (spelling, bool) {
	if f < 0 || int(f) >= len(spellings) {
		return spelling{}, false
	}
	return spellings[f], true
}

// ParseFormat accepts a format name, a one letter abbreviation or a
// file extension, in any case.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for _, f := range AllFormats() {
		sp := spellings[f]
		for _, n := range sp.names {
			if lv == n {
				return f, nil
			}
		}
		for _, e := range sp.exts {
			if lv == e {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	sp, ok := f.spelling()
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(sp.names[0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsDCM() bool  { return f == DCMFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// IsText reports whether f is a text format. Only dcm is binary.
func (f Format) IsText() bool { return f != DCMFormat }

// Suffix returns the extension written for f, including the dot, or ""
// for an unknown format.
func (f Format) Suffix() string {
	sp, ok := f.spelling()
	if !ok {
		return ""
	}
	return sp.exts[0]
}

// FromSuffix returns the format one of whose extensions ends name.
// A bare extension such as ".json" names a hidden file, not a format.
func FromSuffix(name string) (Format, bool) {
	lname := strings.ToLower(name)
	for _, f := range AllFormats() {
		for _, e := range spellings[f].exts {
			if len(lname) > len(e) && strings.HasSuffix(lname, e) {
				return f, true
			}
		}
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{DCMFormat, JSONFormat, YAMLFormat}
}
