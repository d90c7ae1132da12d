package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`()`,
		`a`,
		`42`,
		`-1.5e3`,
		`"hello"`,
		`"esc \" \\ \n"`,
		`#t`,
		`(a b c)`,
		`(a . b)`,
		`((a) (b . c) ())`,
		`#?(or #?(integer) (x #?(any)))`,
		`(1 . )`,
		`)`,
		`"unterminated`,
		`#x`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		v, err := Parse(d)
		if err != nil {
			return
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(v, buf, encode.EncodePatterns(true)); err != nil {
			return
		}
		back, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("re-parse %q of %q: %v", buf.String(), d, err)
		}
		if !ir.Equal(v, back) {
			t.Fatalf("round trip of %q through %q changed the value", d, buf.String())
		}
	})
}
