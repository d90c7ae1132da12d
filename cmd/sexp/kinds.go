package main

import (
	"fmt"

	"github.com/signadot/sexp/ir"

	"github.com/scott-cotton/cli"
)

func kinds(cfg *KindsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Kinds.Parse(cc, args); err != nil {
		cfg.Kinds.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintf(cc.Out, "available pattern kinds:\n")
	for _, k := range ir.Kinds() {
		fmt.Fprintf(cc.Out, "\t- #?(%s)\n", k)
	}
	return nil
}
