package main

import (
	"fmt"

	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/parse"

	"github.com/scott-cotton/cli"
)

func cat(cfg *CatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cat.Parse(cc, args)
	if err != nil {
		cfg.Cat.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	arena := ir.NewArena(0)
	opts := []parse.ParseOption{parse.WithAllocator(arena)}
	encOpts := cfg.encOpts(cc.Out)
	err = eachValue(cc, args, opts, func(_ string, v *ir.Node) error {
		defer arena.Reset()
		if cfg.Check {
			return nil
		}
		if err := encode.Encode(v, cc.Out, encOpts...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		return writeLine(cc.Out, "")
	})
	if err != nil {
		fmt.Fprintf(cc.Err, "sexp: %v\n", err)
		return cli.ExitCodeErr(1)
	}
	return nil
}
