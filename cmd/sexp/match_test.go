package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
	"github.com/signadot/sexp/parse"
)

func TestGetPattern(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib.toml")
	if err := os.WriteFile(lib, []byte("[patterns]\nadder = \"(+ #?(integer) #?(integer))\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	pf := filepath.Join(dir, "pat.sexp")
	if err := os.WriteFile(pf, []byte("(+ #?(integer) #?(integer))\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		cfg  *MatchConfig
		args []string
		rest int
	}{
		{"arg", &MatchConfig{}, []string{"(+ #?(integer) #?(integer))", "a", "b"}, 2},
		{"file", &MatchConfig{File: pf}, []string{"a"}, 1},
		{"lib", &MatchConfig{Lib: lib, Name: "adder"}, nil, 0},
	}
	v, err := parse.ReadString("(+ 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cases {
		p, rest, err := getPattern(c.cfg, c.args)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if len(rest) != c.rest {
			t.Errorf("%s: got rest %v", c.name, rest)
		}
		if _, ok := p.Match(v); !ok {
			t.Errorf("%s: pattern %s did not match", c.name, p)
		}
	}

	usage := []*MatchConfig{
		{Lib: lib},
		{Lib: lib, File: pf},
		{Lib: lib, Name: "nope"},
		{},
	}
	for i, cfg := range usage {
		if _, _, err := getPattern(cfg, nil); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("case %d: got %v", i, err)
		}
	}
	if _, _, err := getPattern(&MatchConfig{}, []string{"#?(bogus)"}); err == nil {
		t.Error("expected compile error")
	}
}

func TestRunFilter(t *testing.T) {
	v, err := parse.ReadString(`(+ 40 2 "x")`)
	if err != nil {
		t.Fatal(err)
	}
	p, _, err := getPattern(&MatchConfig{}, []string{"(+ #?(integer) #?(integer) #?(string))"})
	if err != nil {
		t.Fatal(err)
	}
	captured, ok := p.Match(v)
	if !ok {
		t.Fatal("no match")
	}
	cases := []struct {
		src  string
		want bool
	}{
		{"caps[0] + caps[1] == 42", true},
		{"caps[0] > caps[1]", true},
		{`caps[2] == "y"`, false},
		{"len(value) == 4", true},
	}
	for _, c := range cases {
		prg, err := expr.Compile(c.src, expr.Env(matchEnv{}), expr.AsBool())
		if err != nil {
			t.Fatalf("%s: %v", c.src, err)
		}
		got, err := runFilter(prg, captured, v)
		if err != nil {
			t.Fatalf("%s: %v", c.src, err)
		}
		if got != c.want {
			t.Errorf("%s: got %t", c.src, got)
		}
	}
}
