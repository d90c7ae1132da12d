package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/sexp/encode"
	"github.com/signadot/sexp/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) colorsSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.colorsSet() {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return []encode.EncodeOption{encode.EncodeColors(cfg.colors(w))}
}

type CatConfig struct {
	*MainConfig
	Check bool `cli:"name=n desc='only check that the input reads'"`

	Cat *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	File     string `cli:"name=f desc='read the pattern from a file'"`
	Lib      string `cli:"name=lib desc='pattern library file (toml)'"`
	Name     string `cli:"name=p desc='name of the library pattern to use'"`
	If       string `cli:"name=if desc='expression over caps and value which must hold'"`
	Captures bool   `cli:"name=c desc='print captures instead of matching values'"`
}

type DumpConfig struct {
	*MainConfig
	OutFormat *format.Format

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type KindsConfig struct {
	*MainConfig

	Kinds *cli.Command
}
