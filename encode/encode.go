package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/sexp/format"
	"github.com/signadot/sexp/ir"
)

var (
	ErrPatternNode = errors.New("cannot encode pattern node")
	ErrNonFinite   = errors.New("cannot encode non-finite real")
	ErrBadNode     = errors.New("bad node type")
)

type EncState struct {
	patterns bool
	format   format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. In the default S-expression format no trailing
// newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat, format.YAMLFormat:
		return encodeData(node, w, es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return es.write(w, ir.NilType, ValueColor, "()")
	}
	if node.Type.IsPattern() && !es.patterns {
		return ErrPatternNode
	}
	switch node.Type {
	case ir.SymbolType:
		return es.write(w, node.Type, ValueColor, node.Text)
	case ir.StringType:
		return es.write(w, node.Type, ValueColor, Quote(node.Text))
	case ir.IntegerType:
		return es.write(w, node.Type, ValueColor, strconv.FormatInt(node.Int, 10))
	case ir.RealType:
		s, err := FormatReal(node.Float)
		if err != nil {
			return err
		}
		return es.write(w, node.Type, ValueColor, s)
	case ir.BooleanType:
		s := "#f"
		if node.Bool {
			s = "#t"
		}
		return es.write(w, node.Type, ValueColor, s)
	case ir.PairType:
		return encodeList(node, w, es, "(")
	case ir.RawPatternType:
		return encodeList(node, w, es, "#?(")
	case ir.PatternVarType:
		return encodeVar(node, w, es)
	}
	return fmt.Errorf("%w: %d", ErrBadNode, node.Type)
}

// encodeList writes the cells of a list. The cdr chain is walked in a
// loop; a cdr which is not a cell of the same type is written as a dotted
// tail.
func encodeList(node *ir.Node, w io.Writer, es *EncState, open string) error {
	if err := es.write(w, node.Type, SepColor, open); err != nil {
		return err
	}
	for c := node; ; {
		if err := encode(c.Car, w, es); err != nil {
			return err
		}
		next := c.Cdr
		if next == nil {
			break
		}
		if next.Type != node.Type {
			if err := es.write(w, node.Type, SepColor, " . "); err != nil {
				return err
			}
			if err := encode(next, w, es); err != nil {
				return err
			}
			break
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		c = next
	}
	return es.write(w, node.Type, SepColor, ")")
}

func encodeVar(node *ir.Node, w io.Writer, es *EncState) error {
	if err := es.write(w, node.Type, SepColor, "#?("); err != nil {
		return err
	}
	if err := es.write(w, node.Type, KindColor, node.Kind.String()); err != nil {
		return err
	}
	for c := node.Alts; c != nil; c = c.Cdr {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encode(c.Car, w, es); err != nil {
			return err
		}
	}
	return es.write(w, node.Type, SepColor, ")")
}

// FormatReal renders f so that it reads back as a real.
func FormatReal(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrNonFinite, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

// Quote double quotes s, escaping only '"' and '\'.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

func (es *EncState) write(w io.Writer, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
