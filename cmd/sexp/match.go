package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/sexp/debug"
	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/pattern"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

type matchEnv struct {
	Caps  []any `expr:"caps"`
	Value any   `expr:"value"`
}

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	pat, args, err := getPattern(cfg, args)
	if err != nil {
		return err
	}
	var filter *vm.Program
	if cfg.If != "" {
		filter, err = expr.Compile(cfg.If, expr.Env(matchEnv{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -if expression: %w", cli.ErrUsage, err)
		}
	}
	encOpts := cfg.encOpts(cc.Out)
	return eachValue(cc, args, nil, func(file string, v *ir.Node) error {
		caps, ok := pat.Match(v)
		if !ok {
			return nil
		}
		if filter != nil {
			keep, err := runFilter(filter, caps, v)
			if err != nil {
				return fmt.Errorf("error evaluating -if on value from %s: %w", file, err)
			}
			if !keep {
				return nil
			}
		}
		if !cfg.Captures {
			return encodeLine(cc.Out, v, encOpts)
		}
		for _, c := range caps {
			if err := encodeLine(cc.Out, c, encOpts); err != nil {
				return err
			}
		}
		return nil
	})
}

func encodeLine(w io.Writer, v *ir.Node, opts []encode.EncodeOption) error {
	if err := encode.Encode(v, w, opts...); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return writeLine(w, "")
}

func runFilter(prg *vm.Program, caps []*ir.Node, v *ir.Node) (bool, error) {
	env := matchEnv{Caps: make([]any, len(caps)), Value: ir.ToAny(v)}
	for i, c := range caps {
		env.Caps[i] = ir.ToAny(c)
	}
	if debug.Match() {
		debug.LogAny(env)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, _ := res.(bool)
	return b, nil
}

// getPattern returns the pattern selected by the options and the
// remaining file arguments.
func getPattern(cfg *MatchConfig, args []string) (*pattern.Pattern, []string, error) {
	switch {
	case cfg.Lib != "" && cfg.File != "":
		return nil, nil, fmt.Errorf("%w: only one of -f, -lib may be specified", cli.ErrUsage)
	case cfg.Lib != "":
		if cfg.Name == "" {
			return nil, nil, fmt.Errorf("%w: -lib requires -p", cli.ErrUsage)
		}
		lib, err := pattern.LoadLibraryFile(cfg.Lib)
		if err != nil {
			return nil, nil, err
		}
		p, ok := lib.Get(cfg.Name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: no pattern %q in %s (have %v)", cli.ErrUsage, cfg.Name, cfg.Lib, lib.Names())
		}
		return p, args, nil
	case cfg.File != "":
		d, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading pattern: %w", err)
		}
		p, err := pattern.CompilePattern(string(d))
		if err != nil {
			return nil, nil, fmt.Errorf("error compiling pattern from %s: %w", cfg.File, err)
		}
		return p, args, nil
	}
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: match requires a pattern argument", cli.ErrUsage)
	}
	p, err := pattern.CompilePattern(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("error compiling pattern: %w", err)
	}
	return p, args[1:], nil
}
