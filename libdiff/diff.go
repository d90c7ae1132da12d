package libdiff

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "<op " + strconv.Itoa(int(o)) + ">"
}

// Change is one difference between two trees. Path holds list indices
// from the root of the from tree. For an Insert the last index is the
// position in from before which To is inserted.
type Change struct {
	Path []int
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "%v %s", c.Path, c.Op)
	if c.Op != Insert {
		buf.WriteString(" " + encode.MustString(c.From, encode.EncodePatterns(true)))
	}
	if c.Op != Delete {
		buf.WriteString(" " + encode.MustString(c.To, encode.EncodePatterns(true)))
	}
	return buf.String()
}

// Diff returns the changes which turn from into to, nil when they are
// equal. Proper lists are compared element-wise; anything else which
// differs is replaced whole.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, from, to, nil)
}

func diff(path []int, from, to *ir.Node, res []Change) []Change {
	if ir.Equal(from, to) {
		return res
	}
	if isList(from) && isList(to) {
		return diffList(path, from, to, res)
	}
	return append(res, Change{Path: slices.Clone(path), Op: Replace, From: from, To: to})
}

func isList(n *ir.Node) bool {
	return n == nil || (n.Type == ir.PairType && n.IsList())
}

// we map each element to a rune by a summary of its type and, for
// leaves, its value. The rune sequences are diffed and elements with
// equal summaries are compared recursively. A run of deletes followed
// by inserts is paired by position into replaces.
func diffList(path []int, from, to *ir.Node, res []Change) []Change {
	fromElts, _ := from.Slice()
	toElts, _ := to.Slice()
	m := map[string]rune{}
	fromRunes := mapValues(m, fromElts)
	toRunes := mapValues(m, toElts)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	// indices into res of the deletes not yet paired with an insert
	var dels []int
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Path: sub(path, fi), Op: Delete, From: fromElts[fi]})
				dels = append(dels, len(res)-1)
				fi++
			}
		case diffpatch.DiffEqual:
			dels = dels[:0]
			for range n {
				res = diff(sub(path, fi), fromElts[fi], toElts[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(dels) > 0 {
					ch := &res[dels[0]]
					ch.Op = Replace
					ch.To = toElts[ti]
					dels = dels[1:]
				} else {
					res = append(res, Change{Path: sub(path, fi), Op: Insert, To: toElts[ti]})
				}
				ti++
			}
		}
	}
	return res
}

func sub(path []int, i int) []int {
	res := make([]int, len(path)+1)
	copy(res, path)
	res[len(path)] = i
	return res
}

func mapValues(m map[string]rune, elts []*ir.Node) []rune {
	rs := make([]rune, len(elts))
	for i, v := range elts {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(n *ir.Node) string {
	t := ir.TypeOf(n)
	switch t {
	case ir.NilType, ir.PairType, ir.RawPatternType:
		return t.String()
	case ir.SymbolType, ir.StringType:
		return t.String() + "-" + n.Text
	case ir.IntegerType:
		return t.String() + "-" + strconv.FormatInt(n.Int, 10)
	case ir.RealType:
		return t.String() + "-" + strconv.FormatFloat(n.Float, 'g', -1, 64)
	case ir.BooleanType:
		return t.String() + "-" + strconv.FormatBool(n.Bool)
	case ir.PatternVarType:
		return t.String() + "-" + n.Kind.String()
	default:
		panic("type")
	}
}
