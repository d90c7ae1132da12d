package token

type TokenType int

const (
	TOpen TokenType = iota
	TClose
	TPatternOpen
	TSymbol
	TString
	TInteger
	TReal
	TDot
	TTrue
	TFalse
)

func (t TokenType) String() string {
	switch t {
	case TOpen:
		return "("
	case TClose:
		return ")"
	case TPatternOpen:
		return "#?("
	case TSymbol:
		return "symbol"
	case TString:
		return "string"
	case TInteger:
		return "integer"
	case TReal:
		return "real"
	case TDot:
		return "."
	case TTrue:
		return "#t"
	case TFalse:
		return "#f"
	default:
		return "<unknown>"
	}
}

// Token is a lexical token. For strings, Bytes holds the unescaped text.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDelim(c byte) bool {
	switch c {
	case '(', ')', '"':
		return true
	}
	return isSpace(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
