package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sexp/parse"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func TestDiff(t *testing.T) {
	cases := []struct {
		from, to string
		want     []string
	}{
		{"(a b c)", "(a b c)", nil},
		{"1", "2", []string{"[] replace 1 2"}},
		{"(a b c)", "(a c)", []string{"[1] delete b"}},
		{"(a c)", "(a b c)", []string{"[1] insert b"}},
		{"(a b c)", "(a x c)", []string{"[1] replace b x"}},
		{"(a (b 1) c)", "(a (b 2) c)", []string{"[1 1] replace 1 2"}},
		{"(a . b)", "(a . c)", []string{"[] replace (a . b) (a . c)"}},
		{"()", "(a)", []string{"[0] insert a"}},
		{"(a)", "()", []string{"[0] delete a"}},
		{`("x" 1.5 #t)`, `("y" 1.5 #f)`, []string{`[0] replace "x" "y"`, "[2] replace #t #f"}},
		{`(a "hello" 2)`, `(a "help" 3)`, []string{`[1] replace "hello" "help"`, "[2] replace 2 3"}},
		{"(a b c d)", "(a x)", []string{"[1] replace b x", "[2] delete c", "[3] delete d"}},
		{"(a b)", "(a x y z)", []string{"[1] replace b x", "[2] insert y", "[2] insert z"}},
	}
	for _, c := range cases {
		from, err := parse.Parse([]byte(c.from))
		if err != nil {
			t.Fatal(err)
		}
		to, err := parse.Parse([]byte(c.to))
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, ch := range Diff(from, to) {
			got = append(got, ch.String())
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s -> %s (-want +got)\n%s", c.from, c.to, diff)
		}
	}
}

func TestDiffText(t *testing.T) {
	got := DiffText("hello world", "hello there", nil)
	if got != "hello [-world-]{+there+}" {
		t.Errorf("got %q", got)
	}
	got = DiffText("abc", "abc", nil)
	if got != "abc" {
		t.Errorf("got %q", got)
	}
	marked := DiffText("a", "b", func(op diffpatch.Operation, s string) string {
		return op.String() + s
	})
	if marked != "Delete[-a-]Insert{+b+}" {
		t.Errorf("got %q", marked)
	}
}
