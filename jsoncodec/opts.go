package jsoncodec

import "github.com/kreopt/structure/symbol"

const (
	// EmbeddedBufferSize is the output and input limit of embedded mode.
	EmbeddedBufferSize = 1536

	DefaultMaxDepth = 512
)

type Option func(*opts)

type opts struct {
	indent   string
	embedded bool
	maxSize  int
	maxDepth int
	syms     symbol.Table
}

func newOpts(options []Option) *opts {
	o := &opts{maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(o)
	}
	if o.embedded {
		o.indent = ""
		if o.maxSize <= 0 || o.maxSize > EmbeddedBufferSize {
			o.maxSize = EmbeddedBufferSize
		}
	}
	return o
}

// Indent makes Encode emit one member or element per line, indented by
// s per level.
func Indent(s string) Option {
	return func(o *opts) { o.indent = s }
}

// Embedded selects the form used by constrained devices: compact output
// of at most EmbeddedBufferSize bytes, an object or array root, Null
// members omitted and floats narrowed to single precision. Decoding in
// embedded mode accepts only an object root.
func Embedded() Option {
	return func(o *opts) { o.embedded = true }
}

// MaxSize limits the size of encoded output and of decoded input. Zero
// means no limit.
func MaxSize(n int) Option {
	return func(o *opts) { o.maxSize = n }
}

// MaxDepth limits container nesting. Zero or less means no limit.
func MaxDepth(n int) Option {
	return func(o *opts) { o.maxDepth = n }
}

// Symbols sets the table decoded keys are interned in.
func Symbols(t symbol.Table) Option {
	return func(o *opts) { o.syms = t }
}
