package parse

import (
	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/token"
)

type parseOpts struct {
	alloc     ir.Allocator
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// WithAllocator makes the reader take nodes from a. Trees read this way
// should be released with ir.ReleaseTo(a, ...).
func WithAllocator(a ir.Allocator) ParseOption {
	return func(o *parseOpts) { o.alloc = a }
}

// ParsePositions records the start position of every node read into m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{alloc: ir.Heap}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.alloc == nil {
		pOpts.alloc = ir.Heap
	}
	return pOpts
}
