package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/jolicitron"
	"github.com/signadot/jolicitron/diag"
	"github.com/signadot/jolicitron/encode"
	"github.com/signadot/jolicitron/ir"
	"github.com/signadot/jolicitron/libdiff"
	"github.com/signadot/jolicitron/schema"
)

func jolicitronMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color {
		color.NoColor = false
	}
	if len(args) != 0 {
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
	if cfg.Input == "" || cfg.Schema == "" || cfg.Output == "" {
		return fmt.Errorf("%w: -input, -schema and -output are required", cli.ErrUsage)
	}
	res, err := run(cfg)
	if err != nil {
		return report(cfg, cc, err)
	}
	if cfg.Output == "-" {
		return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return report(cfg, cc, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(res, buf, cfg.encOpts(f)...); err != nil {
		f.Close()
		return report(cfg, cc, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return report(cfg, cc, err)
	}
	return f.Close()
}

func run(cfg *MainConfig) (*ir.Node, error) {
	res, err := parseFile(cfg.Schema, cfg.Input, cfg.parseOpts()...)
	if err != nil {
		return nil, err
	}
	if cfg.Patch != "" {
		d, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return nil, err
		}
		p, err := libdiff.DecodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Patch, err)
		}
		res, err = p.Apply(res)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Get != "" {
		v, err := res.GetPath(cfg.Get)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("no value at %s", cfg.Get)
		}
		res = v
	}
	return res, nil
}

func parseFile(schemaPath, inputPath string, opts ...jolicitron.ParseOption) (*ir.Node, error) {
	p, err := jolicitron.LoadSchema(schemaPath)
	if err != nil {
		return nil, err
	}
	input, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}
	res, err := p.Parse(input, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}
	return res, nil
}

// report prints err to cc.Err and returns the exit error.  Schema shape
// errors get their diagnostic stack colored on terminals.
func report(cfg *MainConfig, cc *cli.Context, err error) error {
	colored := cfg.colorsFor(cc.Err)
	msg := err.Error()
	var se *schema.ShapeError
	if colored && errors.As(err, &se) {
		msg = diag.FormatErrorColors(se.Mismatch, se.Root, diag.NewColors())
	}
	prefix := "error: "
	if colored {
		prefix = color.New(color.FgRed, color.Bold).Sprint(prefix)
	}
	fmt.Fprintf(cc.Err, "%s%s\n", prefix, msg)
	return cli.ExitCodeErr(1)
}
