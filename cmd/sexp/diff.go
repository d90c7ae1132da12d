package main

import (
	"fmt"

	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := readAll(cc, args[0])
	if err != nil {
		return err
	}
	to, err := readAll(cc, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(ir.List(from...), ir.List(to...))
	if len(changes) == 0 {
		return nil
	}
	var mark func(diffpatch.Operation, string) string
	if cfg.colors(cc.Out) != nil {
		mark = markColor
	}
	for i := range changes {
		ch := &changes[i]
		line := ch.String()
		if ch.Op == libdiff.Replace && ir.TypeOf(ch.From) == ir.StringType && ir.TypeOf(ch.To) == ir.StringType {
			line = fmt.Sprintf("%v replace %s", ch.Path, libdiff.DiffText(encode.Quote(ch.From.Text), encode.Quote(ch.To.Text), mark))
		}
		if err := writeLine(cc.Out, line); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func markColor(op diffpatch.Operation, s string) string {
	switch op {
	case diffpatch.DiffDelete:
		return color.RedString("%s", s)
	case diffpatch.DiffInsert:
		return color.GreenString("%s", s)
	}
	return s
}
