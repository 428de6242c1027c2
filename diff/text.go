package diff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/kreopt/structure/ir"
	"github.com/kreopt/structure/jsoncodec"
)

type TextOption func(*textOpts)

type textOpts struct {
	colors bool
	indent string
}

// Colorize marks added lines green and removed lines red.
func Colorize(v bool) TextOption {
	return func(o *textOpts) { o.colors = v }
}

// TextIndent sets the JSON indentation used before diffing.
func TextIndent(s string) TextOption {
	return func(o *textOpts) { o.indent = s }
}

// Text returns a line diff of the indented JSON forms of from and to.
// Each line is prefixed with "+ ", "- " or two spaces. Equal documents
// produce an empty string.
func Text(from, to ir.Document, opts ...TextOption) (string, error) {
	o := &textOpts{indent: "  "}
	for _, opt := range opts {
		opt(o)
	}
	a, err := jsoncodec.Encode(from, jsoncodec.Indent(o.indent))
	if err != nil {
		return "", err
	}
	b, err := jsoncodec.Encode(to, jsoncodec.Indent(o.indent))
	if err != nil {
		return "", err
	}
	if string(a) == string(b) {
		return "", nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(string(a)+"\n", string(b)+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	add, del := plain, plain
	if o.colors {
		add, del = color.GreenString, color.RedString
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			switch d.Type {
			case diffpatch.DiffInsert:
				buf.WriteString(add("+ %s", line))
			case diffpatch.DiffDelete:
				buf.WriteString(del("- %s", line))
			default:
				buf.WriteString("  " + line)
			}
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}

func plain(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
