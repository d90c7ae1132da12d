package pattern

import (
	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/parse"
)

// Pattern is a compiled pattern. It is not modified by matching, so one
// Pattern may be matched from several goroutines.
type Pattern struct {
	node  *ir.Node
	slots int
}

// CompilePattern parses src, which must hold exactly one value, and
// compiles it.
func CompilePattern(src string) (*Pattern, error) {
	raw, err := parse.Parse([]byte(src))
	if err != nil {
		return nil, err
	}
	node, slots, err := Compile(raw)
	if err != nil {
		return nil, err
	}
	return &Pattern{node: node, slots: slots}, nil
}

func MustCompile(src string) *Pattern {
	p, err := CompilePattern(src)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) Slots() int {
	return p.slots
}

// Node returns the compiled tree. It must not be modified.
func (p *Pattern) Node() *ir.Node {
	return p.node
}

// Match matches val and returns a fresh capture slice.
func (p *Pattern) Match(val *ir.Node) ([]*ir.Node, bool) {
	captures := make([]*ir.Node, p.slots)
	if !Match(p.node, val, captures) {
		return nil, false
	}
	return captures, true
}

func (p *Pattern) String() string {
	return encode.MustString(p.node, encode.EncodePatterns(true))
}
