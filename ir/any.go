package ir

// ToAny converts a value tree to plain Go values: symbols and strings
// become string, integers int64, reals float64, booleans bool and proper
// lists []any. An improper list becomes a map with keys "list" (the
// elements) and "tail" (the final cdr). The conversion is lossy: symbols
// and strings are not distinguished.
func ToAny(n *Node) any {
	if n == nil {
		return []any{}
	}
	switch n.Type {
	case SymbolType, StringType:
		return n.Text
	case IntegerType:
		return n.Int
	case RealType:
		return n.Float
	case BooleanType:
		return n.Bool
	case PairType, RawPatternType:
		elts, tail := n.Slice()
		res := make([]any, len(elts))
		for i, e := range elts {
			res[i] = ToAny(e)
		}
		if tail == nil {
			return res
		}
		return map[string]any{
			"list": res,
			"tail": ToAny(tail),
		}
	case PatternVarType:
		res := map[string]any{
			"pattern": n.Kind.String(),
			"slot":    n.Slot,
		}
		if n.Alts != nil {
			res["alternatives"] = ToAny(n.Alts)
		}
		return res
	}
	return nil
}
