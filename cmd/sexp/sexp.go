package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/sexp/ir"
	"github.com/signadot/sexp/parse"
	"github.com/signadot/sexp/token"

	"github.com/scott-cotton/cli"
)

func sexpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// eachValue calls fn on every value of every file, or of cc.In when no
// files are given. "-" names cc.In as well.
func eachValue(cc *cli.Context, files []string, opts []parse.ParseOption, fn func(file string, v *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := eachReaderValue(cc, file, opts, fn); err != nil {
			return err
		}
	}
	return nil
}

func eachReaderValue(cc *cli.Context, file string, opts []parse.ParseOption, fn func(file string, v *ir.Node) error) error {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	rd := parse.NewReader(token.NewReaderStream(r), opts...)
	for {
		v, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		if err := fn(file, v); err != nil {
			return err
		}
	}
}

func readAll(cc *cli.Context, file string) ([]*ir.Node, error) {
	var res []*ir.Node
	err := eachReaderValue(cc, file, nil, func(_ string, v *ir.Node) error {
		res = append(res, v)
		return nil
	})
	return res, err
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
