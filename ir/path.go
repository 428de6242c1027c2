package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed document path such as $.a[0].'b.c'.
//
// Each element selects one of: a field, an index, every element ([*]),
// or the whole subtree (..).
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	subtree := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !subtree {
				buf.WriteByte('.')
			}
			buf.WriteString(quoteField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		subtree = x.Subtree
	}
	return buf.String()
}

// ParsePath parses p, which must start with '$'.
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrParse, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: path %q: %w", ErrParse, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if len(rest) > 0 && rest[0] != '.' && rest[0] != '[' {
				// $..x selects field x anywhere below.
				rest = "." + rest
			}
			break
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 && !parent.Subtree {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func quoteField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// FieldPath returns the path of key below the path prefix.
func FieldPath(prefix, key string) string {
	return prefix + "." + quoteField(key)
}

// IndexPath returns the path of element i below the path prefix.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// Lookup returns the value at path without creating anything. Wildcards
// are not allowed; use List for those.
func (d Document) Lookup(path string) (Document, error) {
	p, err := ParsePath(path)
	if err != nil {
		return d.fail(err), err
	}
	res := d
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll, x.Subtree:
			err := fmt.Errorf("%w: wildcard in lookup of %q", ErrUnsupported, path)
			return d.fail(err), err
		case x.Index != nil:
			res, err = res.AtIndex(*x.Index)
		case x.Field != nil:
			res, err = res.At(*x.Field)
		}
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// List returns every value matching path, which may contain [*] and ..
// elements. The results alias d's tree.
func (d Document) List(path string) ([]Document, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return d.list(nil, p), nil
}

func (d Document) list(dst []Document, p *Path) []Document {
	if p == nil {
		return append(dst, d)
	}
	if p.Subtree {
		_ = d.Visit(func(_ string, n Document, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = n.list(dst, p.Next)
			return true, nil
		})
		return dst
	}
	switch {
	case p.Field != nil:
		if c, err := d.At(*p.Field); err == nil {
			dst = c.list(dst, p.Next)
		}
	case p.Index != nil:
		if c, err := d.AtIndex(*p.Index); err == nil {
			dst = c.list(dst, p.Next)
		}
	case p.IndexAll:
		for _, c := range d.Elems() {
			dst = c.list(dst, p.Next)
		}
	default:
		dst = d.list(dst, p.Next)
	}
	return dst
}

// Visit walks the tree depth first, calling fn with the path of each node
// before (isPost false) and after (isPost true) its children. Children
// are walked only when the pre-order call returns true. Object members
// are visited in ascending key order.
func (d Document) Visit(fn func(path string, d Document, isPost bool) (bool, error)) error {
	return d.visit("$", fn)
}

func (d Document) visit(path string, fn func(string, Document, bool) (bool, error)) error {
	descend, err := fn(path, d, false)
	if err != nil {
		return err
	}
	if descend {
		switch d.Type() {
		case ObjectType:
			for _, k := range d.SortedKeys() {
				c, _ := d.At(k)
				if err := c.visit(FieldPath(path, k), fn); err != nil {
					return err
				}
			}
		case ArrayType:
			for i, c := range d.Elems() {
				if err := c.visit(IndexPath(path, i), fn); err != nil {
					return err
				}
			}
		}
	}
	_, err = fn(path, d, true)
	return err
}
