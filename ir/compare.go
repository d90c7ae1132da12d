package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	for {
		if a == b {
			return 0
		}
		if a == nil {
			return -1
		}
		if b == nil {
			return 1
		}
		rankA := rank(a.Type)
		rankB := rank(b.Type)
		if rankA != rankB {
			return cmp.Compare(rankA, rankB)
		}
		if a.Type.IsLeaf() {
			return compareLeaves(a, b)
		}
		if a.Type == PatternVarType {
			return compareVars(a, b)
		}
		if c := Compare(a.Car, b.Car); c != 0 {
			return c
		}
		a, b = a.Cdr, b.Cdr
	}
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Nil < Boolean < Integer < Real < Symbol < String < Pair < RawPattern < PatternVar
func rank(t Type) int {
	switch t {
	case NilType:
		return 0
	case BooleanType:
		return 1
	case IntegerType:
		return 2
	case RealType:
		return 3
	case SymbolType:
		return 4
	case StringType:
		return 5
	case PairType:
		return 6
	case RawPatternType:
		return 7
	case PatternVarType:
		return 8
	}
	return 100
}

func compareLeaves(a, b *Node) int {
	switch a.Type {
	case BooleanType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerType:
		return cmp.Compare(a.Int, b.Int)
	case RealType:
		return cmp.Compare(a.Float, b.Float)
	case SymbolType, StringType:
		return strings.Compare(a.Text, b.Text)
	}
	return 0
}

func compareVars(a, b *Node) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Slot, b.Slot); c != 0 {
		return c
	}
	return Compare(a.Alts, b.Alts)
}
