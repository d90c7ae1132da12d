package ir

// Node is a single S-expression value. The empty list is the nil *Node.
//
// Which fields are meaningful depends on Type:
//
//   - SymbolType, StringType: Text
//   - IntegerType: Int
//   - RealType: Float
//   - BooleanType: Bool
//   - PairType, RawPatternType: Car, Cdr
//   - PatternVarType: Kind, Slot, Alts
type Node struct {
	Type Type

	Car *Node
	Cdr *Node

	Text  string
	Int   int64
	Float float64
	Bool  bool

	Kind PatternKind
	Slot int
	Alts *Node
}

func Symbol(s string) *Node {
	return SymbolAt(&Node{}, s)
}

func SymbolAt(n *Node, s string) *Node {
	n.Type = SymbolType
	n.Text = s
	return n
}

func String(s string) *Node {
	return StringAt(&Node{}, s)
}

func StringAt(n *Node, s string) *Node {
	n.Type = StringType
	n.Text = s
	return n
}

func Int(v int64) *Node {
	return &Node{
		Type: IntegerType,
		Int:  v,
	}
}

func Real(f float64) *Node {
	return &Node{
		Type:  RealType,
		Float: f,
	}
}

func Bool(v bool) *Node {
	return &Node{
		Type: BooleanType,
		Bool: v,
	}
}

func Cons(car, cdr *Node) *Node {
	return &Node{
		Type: PairType,
		Car:  car,
		Cdr:  cdr,
	}
}

// List builds a proper list of vs. List() is nil.
func List(vs ...*Node) *Node {
	return DottedList(nil, vs...)
}

// DottedList builds a list of vs whose final cdr is tail. With a non-pair
// tail the result is an improper list.
func DottedList(tail *Node, vs ...*Node) *Node {
	res := tail
	for i := len(vs) - 1; i >= 0; i-- {
		res = Cons(vs[i], res)
	}
	return res
}

// TypeOf returns the type of n, NilType for the empty list.
func TypeOf(n *Node) Type {
	if n == nil {
		return NilType
	}
	return n.Type
}

// IsList reports whether n is nil or a chain of pairs ending in nil.
func (n *Node) IsList() bool {
	for n != nil {
		if n.Type != PairType && n.Type != RawPatternType {
			return false
		}
		n = n.Cdr
	}
	return true
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{}
	n.CloneTo(res)
	return res
}

// CloneTo deep copies n into dst and returns dst. The cdr chain is copied
// iteratively.
func (n *Node) CloneTo(dst *Node) *Node {
	src, out := n, dst
	for {
		*out = *src
		out.Car = src.Car.Clone()
		out.Alts = src.Alts.Clone()
		if src.Cdr == nil || !src.Type.IsCell() {
			out.Cdr = src.Cdr.Clone()
			return dst
		}
		next := &Node{}
		out.Cdr = next
		src, out = src.Cdr, next
	}
}
