package pattern

import (
	"fmt"

	"github.com/signadot/sexp/debug"
	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/parse"
)

// Match reports whether val matches the compiled pattern pat, storing
// captured subtrees in captures by slot. captures must have room for
// every slot of pat. Its contents are only meaningful when Match returns
// true.
func Match(pat, val *ir.Node, captures []*ir.Node) bool {
	res := match(pat, val, captures)
	if debug.Match() {
		debug.Logf("match %v against %v: %t\n", pat, val, res)
	}
	return res
}

// MatchPattern is Match for a pattern compiled with slots capture slots.
// It panics if captures is shorter than slots.
func MatchPattern(pat, val *ir.Node, captures []*ir.Node, slots int) bool {
	if len(captures) < slots {
		panic(fmt.Sprintf("pattern: %d captures for %d slots", len(captures), slots))
	}
	return Match(pat, val, captures)
}

// MatchString reads and compiles the first value of src as a pattern and
// matches val against it. Read and compile failures are returned as
// errors.
func MatchString(src string, val *ir.Node, captures []*ir.Node) (bool, error) {
	raw, err := parse.ReadString(src)
	if err != nil {
		return false, err
	}
	pat, slots, err := Compile(raw)
	defer ir.Release(pat)
	if err != nil {
		return false, err
	}
	if len(captures) < slots {
		return false, fmt.Errorf("%w: have %d need %d", ErrCaptures, len(captures), slots)
	}
	return Match(pat, val, captures), nil
}

// match evaluates both car and cdr of every pair so that all captures are
// assigned.
func match(pat, val *ir.Node, captures []*ir.Node) bool {
	ok := true
	for {
		if pat == nil {
			return ok && val == nil
		}
		if val == nil {
			return false
		}
		if !pat.Type.IsCell() {
			return matchLeaf(pat, val, captures) && ok
		}
		if val.Type != pat.Type {
			return false
		}
		if !match(pat.Car, val.Car, captures) {
			ok = false
		}
		pat, val = pat.Cdr, val.Cdr
	}
}

func matchLeaf(pat, val *ir.Node, captures []*ir.Node) bool {
	if pat.Type == ir.PatternVarType {
		return matchVar(pat, val, captures)
	}
	if pat.Type != val.Type {
		return false
	}
	switch pat.Type {
	case ir.SymbolType, ir.StringType:
		return pat.Text == val.Text
	case ir.IntegerType:
		return pat.Int == val.Int
	case ir.RealType:
		return pat.Float == val.Float
	case ir.BooleanType:
		return pat.Bool == val.Bool
	}
	return false
}

func matchVar(pat, val *ir.Node, captures []*ir.Node) bool {
	var ok bool
	if pat.Kind == ir.KindOr {
		for a := pat.Alts; a != nil; a = a.Cdr {
			if match(a.Car, val, captures) {
				ok = true
			}
		}
	} else {
		ok = pat.Kind.Accepts(val.Type)
	}
	if ok {
		captures[pat.Slot] = val
	}
	return ok
}
