package encode_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/format"
	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/parse"
	"github.com/signadot/sexp/pattern"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		node *ir.Node
		want string
	}{
		{nil, "()"},
		{ir.Int(-42), "-42"},
		{ir.Real(1), "1.0"},
		{ir.Real(-0.5), "-0.5"},
		{ir.Real(1e6), "1e+06"},
		{ir.Real(1.5e-7), "1.5e-07"},
		{ir.Symbol("foo"), "foo"},
		{ir.String(`a"b\c`), `"a\"b\\c"`},
		{ir.String("line\nnext"), "\"line\nnext\""},
		{ir.Bool(true), "#t"},
		{ir.Bool(false), "#f"},
		{ir.List(ir.Symbol("a"), ir.Symbol("b"), ir.Symbol("c")), "(a b c)"},
		{ir.DottedList(ir.Symbol("c"), ir.Symbol("a"), ir.Symbol("b")), "(a b . c)"},
		{ir.Cons(ir.Int(1), ir.Int(2)), "(1 . 2)"},
		{ir.List(nil, ir.List(ir.Int(1))), "(() (1))"},
	}
	for _, c := range cases {
		got := encode.MustString(c.node)
		if got != c.want {
			t.Errorf("got %q want %q", got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{
		`()`,
		`(1 . 2)`,
		`(define (f x) (+ x 1.25) "doc \"q\"" #t #f)`,
		`((a . b) (c d . e) ())`,
		`(-0.0 1e+21 3.0 -17 .foo ... 12abc)`,
		`"multi
line"`,
	}
	for _, src := range srcs {
		v, err := parse.Parse([]byte(src))
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		out := encode.MustString(v)
		back, err := parse.Parse([]byte(out))
		if err != nil {
			t.Fatalf("%q re-read %q: %v", src, out, err)
		}
		if !ir.Equal(v, back) {
			t.Errorf("%q: round trip through %q changed the value", src, out)
		}
	}
}

func TestLongListRoundTrip(t *testing.T) {
	vs := make([]*ir.Node, 100000)
	for i := range vs {
		vs[i] = ir.Int(int64(i))
	}
	l := ir.List(vs...)
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(l, buf); err != nil {
		t.Fatal(err)
	}
	back, err := parse.Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(l, back) {
		t.Error("long list round trip mismatch")
	}
}

func TestEncodeErrors(t *testing.T) {
	raw, err := parse.ReadString("(a #?(integer))")
	if err != nil {
		t.Fatal(err)
	}
	if err := encode.Encode(raw, &bytes.Buffer{}); !errors.Is(err, encode.ErrPatternNode) {
		t.Errorf("raw pattern: got %v", err)
	}
	p := pattern.MustCompile("(a #?(integer))")
	if err := encode.Encode(p.Node(), &bytes.Buffer{}); !errors.Is(err, encode.ErrPatternNode) {
		t.Errorf("compiled pattern: got %v", err)
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := encode.Encode(ir.Real(f), &bytes.Buffer{}); !errors.Is(err, encode.ErrNonFinite) {
			t.Errorf("%v: got %v", f, err)
		}
	}
}

func TestEncodePatterns(t *testing.T) {
	raw, err := parse.ReadString("(a #?(or #?(integer) (b #?(any))))")
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(raw, encode.EncodePatterns(true))
	if want := "(a #?(or #?(integer) (b #?(any))))"; got != want {
		t.Errorf("raw: got %q want %q", got, want)
	}
	p := pattern.MustCompile("(a #?(or #?(integer) (b #?(any))))")
	got = encode.MustString(p.Node(), encode.EncodePatterns(true))
	if want := "(a #?(or #?(integer) (b #?(any))))"; got != want {
		t.Errorf("compiled: got %q want %q", got, want)
	}
}

func TestEncodeJSON(t *testing.T) {
	v, err := parse.ReadString(`(1 "a" (b . c) #t 2.5 ())`)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	var got any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%q: %v", buf.String(), err)
	}
	want := []any{
		float64(1),
		"a",
		map[string]any{"list": []any{"b"}, "tail": "c"},
		true,
		2.5,
		[]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	v, err := parse.ReadString(`(name "x" (b . c))`)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"- name", "- x", "tail: c"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml %q does not contain %q", out, want)
		}
	}
	raw, _ := parse.ReadString("#?(any)")
	if err := encode.Encode(raw, buf, encode.EncodeFormat(format.YAMLFormat)); !errors.Is(err, encode.ErrPatternNode) {
		t.Errorf("got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := encode.NewColors()
	got := colors.Color(ir.SymbolType, encode.ValueColor, "abc")
	if !strings.Contains(got, "abc") {
		t.Errorf("got %q", got)
	}
	plain := encode.NewColors()
	plain.Map = nil
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(ir.List(ir.Symbol("a")), buf, encode.EncodeColors(plain)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(a)" {
		t.Errorf("got %q", buf.String())
	}
}
