// Package view renders documents as indented text for people to read.
//
// Object members appear as "key: value" lines in ascending key order and
// array elements as "- value" lines. Containers nest below their key or
// dash; empty ones print as {} and [].
package view

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/kreopt/structure/ir"
)

type Option func(*state)

type state struct {
	colors *Colors
	indent int
}

func WithColors(c *Colors) Option {
	return func(s *state) { s.colors = c }
}

// Indent sets the number of spaces per level.
func Indent(n int) Option {
	return func(s *state) { s.indent = n }
}

// Fprint writes the rendering of d to w.
func Fprint(w io.Writer, d ir.Document, opts ...Option) error {
	if err := d.Err(); err != nil {
		return err
	}
	s := &state{indent: 2}
	for _, opt := range opts {
		opt(s)
	}
	bw := bufio.NewWriter(w)
	if d.Type().IsLeaf() || d.Empty() {
		bw.WriteString(s.leaf(d))
		bw.WriteByte('\n')
	} else if err := s.container(bw, d, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// Sprint returns the rendering of d.
func Sprint(d ir.Document, opts ...Option) string {
	buf := &strings.Builder{}
	if err := Fprint(buf, d, opts...); err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}

func (s *state) container(w *bufio.Writer, d ir.Document, level int) error {
	pad := strings.Repeat(" ", level*s.indent)
	if d.IsArray() {
		dash := s.colors.Color(ir.ArrayType, SepColor, "-")
		for _, e := range d.Elems() {
			w.WriteString(pad + dash)
			if err := s.child(w, e, level); err != nil {
				return err
			}
		}
		return nil
	}
	ms, err := d.Members()
	if err != nil {
		return err
	}
	colon := s.colors.Color(ir.ObjectType, SepColor, ":")
	for _, m := range ms {
		w.WriteString(pad + s.colors.Color(ir.ObjectType, FieldColor, fieldName(m.Name)) + colon)
		if err := s.child(w, m.Val, level); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) child(w *bufio.Writer, d ir.Document, level int) error {
	if d.Type().IsLeaf() || d.Empty() {
		w.WriteString(" " + s.leaf(d) + "\n")
		return nil
	}
	w.WriteByte('\n')
	return s.container(w, d, level+1)
}

func (s *state) leaf(d ir.Document) string {
	var txt string
	switch d.Type() {
	case ir.NullType:
		txt = "null"
	case ir.IntType:
		txt = strconv.FormatInt(int64(d.AsInt()), 10)
	case ir.FloatType:
		txt = strconv.FormatFloat(d.AsFloat(), 'g', -1, 64)
		if !strings.ContainsAny(txt, ".eEIN") {
			txt += ".0"
		}
	case ir.BoolType:
		txt = strconv.FormatBool(d.AsBool())
	case ir.StringType:
		txt = strconv.Quote(d.AsString())
	case ir.ObjectType:
		txt = "{}"
	case ir.ArrayType:
		txt = "[]"
	}
	return s.colors.Color(d.Type(), ValueColor, txt)
}

func fieldName(k string) string {
	if k == "" {
		return `""`
	}
	for _, r := range k {
		if !(r == '_' || r == '-' || r == '.' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return strconv.Quote(k)
		}
	}
	return k
}
