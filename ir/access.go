package ir

import "fmt"

// The accessors below panic with a *TypeMismatchError when n is not of the
// requested type. Use TypeOf first when the type is not known.

func (n *Node) Integer() int64 {
	mustBe(n, "Integer", IntegerType)
	return n.Int
}

func (n *Node) RealValue() float64 {
	mustBe(n, "RealValue", RealType)
	return n.Float
}

func (n *Node) SymbolName() string {
	mustBe(n, "SymbolName", SymbolType)
	return n.Text
}

func (n *Node) StringValue() string {
	mustBe(n, "StringValue", StringType)
	return n.Text
}

func (n *Node) Boolean() bool {
	mustBe(n, "Boolean", BooleanType)
	return n.Bool
}

// First returns the car of a pair or raw pattern cell.
func (n *Node) First() *Node {
	mustBe(n, "First", PairType, RawPatternType)
	return n.Car
}

// Rest returns the cdr of a pair or raw pattern cell.
func (n *Node) Rest() *Node {
	mustBe(n, "Rest", PairType, RawPatternType)
	return n.Cdr
}

// Len returns the number of elements of the proper list n. It panics if n
// is not a list or ends in a dotted tail.
func (n *Node) Len() int {
	res := 0
	for c := n; c != nil; c = c.Cdr {
		if !c.Type.IsCell() {
			if c == n {
				mustBe(n, "Len", NilType, PairType, RawPatternType)
			}
			panic(fmt.Errorf("%w: Len reached a %s tail", ErrImproperList, c.Type))
		}
		res++
	}
	return res
}

// Nth returns element i of the list n.
func (n *Node) Nth(i int) *Node {
	if i < 0 {
		panic(fmt.Errorf("%w: %d", ErrIndex, i))
	}
	c := n
	for j := 0; j <= i; j++ {
		if c == nil {
			panic(fmt.Errorf("%w: %d", ErrIndex, i))
		}
		mustBe(c, "Nth", PairType, RawPatternType)
		if j == i {
			break
		}
		c = c.Cdr
	}
	return c.Car
}

// Slice returns the elements of the list n and its final cdr, nil for a
// proper list.
func (n *Node) Slice() (elts []*Node, tail *Node) {
	c := n
	for c != nil && c.Type.IsCell() {
		elts = append(elts, c.Car)
		c = c.Cdr
	}
	return elts, c
}
