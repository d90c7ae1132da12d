package ir

import "fmt"

type Type int

const (
	NilType Type = iota
	SymbolType
	StringType
	IntegerType
	RealType
	BooleanType
	PairType
	RawPatternType
	PatternVarType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NilType:        "Nil",
		SymbolType:     "Symbol",
		StringType:     "String",
		IntegerType:    "Integer",
		RealType:       "Real",
		BooleanType:    "Boolean",
		PairType:       "Pair",
		RawPatternType: "RawPattern",
		PatternVarType: "PatternVar",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Nil":        NilType,
		"Symbol":     SymbolType,
		"String":     StringType,
		"Integer":    IntegerType,
		"Real":       RealType,
		"Boolean":    BooleanType,
		"Pair":       PairType,
		"RawPattern": RawPatternType,
		"PatternVar": PatternVarType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NilType,
		SymbolType,
		StringType,
		IntegerType,
		RealType,
		BooleanType,
		PairType,
		RawPatternType,
		PatternVarType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case PairType, RawPatternType, PatternVarType:
		return false
	default:
		return true
	}
}

// IsCell reports whether nodes of type t carry Car and Cdr.
func (t Type) IsCell() bool {
	return t == PairType || t == RawPatternType
}

// IsPattern reports whether t only occurs in raw or compiled pattern trees.
func (t Type) IsPattern() bool {
	return t == RawPatternType || t == PatternVarType
}
