package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sexp").
		WithSynopsis("sexp [opts] command [opts]").
		WithDescription("sexp reads, matches and compares S-expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sexpMain(cfg, cc, args)
		}).
		WithSubs(
			CatCommand(cfg),
			MatchCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg),
			KindsCommand(cfg))
}

func CatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CatConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cat, "cat").
		WithAliases("c").
		WithSynopsis("cat [-n] [files]").
		WithDescription("read values and write each back on its own line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cat(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [-f file | -lib file -p name] [-if expr] [-c] <pattern> [files]").
		WithDescription("print the values which match a pattern").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: sexp/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-O format] [files]").
		WithDescription("re-encode values as S-expressions, JSON or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("compare the values of two files, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func KindsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KindsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Kinds, "kinds").
		WithSynopsis("kinds").
		WithDescription("list the pattern kinds").
		WithRun(func(cc *cli.Context, args []string) error {
			return kinds(cfg, cc, args)
		})
}
