// Package debug provides env-gated diagnostics. Each flag is read once at
// start up from a STRUCTURE_DEBUG_* variable holding a boolean.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/kreopt/structure/ir"
)

type debug struct {
	Codec bool
	Patch bool
	Query bool
	Store bool
}

var d *debug

func init() {
	d = &debug{}
	d.Codec = boolEnv("STRUCTURE_DEBUG_CODEC")
	d.Patch = boolEnv("STRUCTURE_DEBUG_PATCH")
	d.Query = boolEnv("STRUCTURE_DEBUG_QUERY")
	d.Store = boolEnv("STRUCTURE_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Codec() bool {
	return d.Codec
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func Store() bool {
	return d.Store
}

// Logf writes to stderr. Documents and plain Go trees among args are
// rendered as indented JSON.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, render(args)...)
}

func render(args []any) []any {
	res := make([]any, len(args))
	for i, a := range args {
		res[i] = a
		switch x := a.(type) {
		case ir.Document:
			if err := x.Err(); err != nil {
				res[i] = fmt.Sprintf("[err %v]", err)
				continue
			}
			res[i] = renderJSON(x.Interface())
		case map[string]any, []any:
			res[i] = renderJSON(x)
		}
	}
	return res
}

func renderJSON(v any) string {
	b, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
