package pattern

import (
	"fmt"

	"github.com/signadot/sexp/debug"
	"github.com/signadot/sexp/ir"
)

type compiler struct {
	slots int
}

// Compile rewrites every raw pattern node of raw in place into a pattern
// variable and returns the tree with the number of capture slots it uses.
// Slots are numbered in pre-order: an or takes its slot before its
// alternatives. On failure the partially rewritten tree is returned along
// with a *CompileError.
func Compile(raw *ir.Node) (*ir.Node, int, error) {
	c := &compiler{}
	err := c.compile(raw)
	if debug.Compile() {
		debug.Logf("compile %v: %d slots err=%v\n", raw, c.slots, err)
	}
	return raw, c.slots, err
}

// compile walks ordinary pairs without taking slots. The cdr chain is
// followed in a loop.
func (c *compiler) compile(n *ir.Node) error {
	for n != nil {
		switch n.Type {
		case ir.RawPatternType:
			return c.variable(n)
		case ir.PairType:
			if err := c.compile(n.Car); err != nil {
				return err
			}
			n = n.Cdr
		default:
			return nil
		}
	}
	return nil
}

func (c *compiler) variable(n *ir.Node) error {
	head := n.Car
	if head == nil || head.Type != ir.SymbolType {
		return &CompileError{Err: ErrBadPatternHead, Node: n, Detail: fmt.Sprintf("got %s", ir.TypeOf(head))}
	}
	kind, ok := ir.ParseKind(head.Text)
	if !ok {
		return &CompileError{Err: ErrUnknownKind, Node: n, Detail: head.Text}
	}
	args := n.Cdr
	if kind != ir.KindOr && args != nil {
		return &CompileError{Err: ErrArity, Node: n, Detail: fmt.Sprintf("%s takes no arguments", kind)}
	}
	if !args.IsList() {
		return &CompileError{Err: ErrArity, Node: n, Detail: "or alternatives must be a proper list"}
	}
	n.Type = ir.PatternVarType
	n.Kind = kind
	n.Slot = c.slots
	n.Car = nil
	n.Cdr = nil
	n.Alts = args
	c.slots++
	for a := args; a != nil; a = a.Cdr {
		a.Type = ir.PairType
		if err := c.compile(a.Car); err != nil {
			return err
		}
	}
	return nil
}
