package dcm

import "github.com/kreopt/structure/symbol"

// DefaultMaxDepth bounds the nesting of containers accepted by Decode and
// produced by Encode unless MaxDepth says otherwise.
const DefaultMaxDepth = 512

type Option func(*state)

type state struct {
	maxDepth int
	syms     symbol.Table
}

func newState(opts []Option) *state {
	s := &state{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxDepth sets the container nesting limit. A value of zero or less
// removes the limit.
func MaxDepth(n int) Option {
	return func(s *state) { s.maxDepth = n }
}

// Symbols sets the table decoded keys are interned in.
func Symbols(t symbol.Table) Option {
	return func(s *state) { s.syms = t }
}
