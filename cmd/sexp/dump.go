package main

import (
	"fmt"

	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/format"
	"github.com/signadot/sexp/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	f := format.SexpFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	encOpts := []encode.EncodeOption{encode.EncodeFormat(f)}
	if f.IsSexp() {
		encOpts = append(encOpts, cfg.encOpts(cc.Out)...)
	}
	i := 0
	return eachValue(cc, args, nil, func(file string, v *ir.Node) error {
		if i > 0 && f.IsYAML() {
			if err := writeLine(cc.Out, "---"); err != nil {
				return err
			}
		}
		i++
		if err := encode.Encode(v, cc.Out, encOpts...); err != nil {
			return fmt.Errorf("error encoding value from %s: %w", file, err)
		}
		if f.IsSexp() {
			return writeLine(cc.Out, "")
		}
		return nil
	})
}
