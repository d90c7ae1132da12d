package ir

import "fmt"

// PatternKind is the constraint carried by a compiled pattern variable.
type PatternKind int

const (
	KindAny PatternKind = iota + 1
	KindSymbol
	KindString
	KindInteger
	KindReal
	KindBoolean
	KindList
	KindOr
)

var kindNames = map[PatternKind]string{
	KindAny:     "any",
	KindSymbol:  "symbol",
	KindString:  "string",
	KindInteger: "integer",
	KindReal:    "real",
	KindBoolean: "boolean",
	KindList:    "list",
	KindOr:      "or",
}

var kindsByName = func() map[string]PatternKind {
	res := make(map[string]PatternKind, len(kindNames))
	for k, name := range kindNames {
		res[name] = k
	}
	return res
}()

func (k PatternKind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

// ParseKind looks name up in the fixed kind table.
func ParseKind(name string) (PatternKind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns every pattern kind in table order.
func Kinds() []PatternKind {
	return []PatternKind{
		KindAny,
		KindSymbol,
		KindString,
		KindInteger,
		KindReal,
		KindBoolean,
		KindList,
		KindOr,
	}
}

// Accepts reports whether a value of type t satisfies the kind on its own.
// KindOr depends on its alternatives and never accepts by type.
func (k PatternKind) Accepts(t Type) bool {
	switch k {
	case KindAny:
		return true
	case KindSymbol:
		return t == SymbolType
	case KindString:
		return t == StringType
	case KindInteger:
		return t == IntegerType
	case KindReal:
		return t == RealType
	case KindBoolean:
		return t == BooleanType
	case KindList:
		return t == PairType
	}
	return false
}
