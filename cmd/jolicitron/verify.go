package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/jolicitron"
	"github.com/signadot/jolicitron/encode"
	"github.com/signadot/jolicitron/ir"
	"github.com/signadot/jolicitron/libdiff"
)

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Input == "" || cfg.Schema == "" || cfg.Expected == "" {
		return fmt.Errorf("%w: -input, -schema and -expected are required", cli.ErrUsage)
	}
	res, err := parseFile(cfg.Schema, cfg.Input, jolicitron.Strict(cfg.Parent.Strict))
	if err != nil {
		return report(cfg.Parent, cc, err)
	}
	want, err := os.ReadFile(cfg.Expected)
	if err != nil {
		return report(cfg.Parent, cc, err)
	}
	got := encode.MustString(res) + "\n"
	diffs := libdiff.DiffLines(canonical(want), got)
	if libdiff.Equal(diffs) {
		fmt.Fprintf(cc.Out, "%s: %s\n", cfg.Input, color.GreenString("ok"))
		return nil
	}
	var colors *libdiff.Colors
	if cfg.Parent.colorsFor(cc.Out) {
		colors = libdiff.NewColors()
	}
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", cfg.Expected, cfg.Input)
	fmt.Fprint(cc.Out, libdiff.Format(diffs, colors))
	return cli.ExitCodeErr(1)
}

// canonical re-encodes expected json in the layout Encode produces, so
// verification ignores formatting but not field order.  Documents outside
// the parse result model are compared as written.
func canonical(d []byte) string {
	y, err := ir.FromJSON(d)
	if err != nil {
		return string(bytes.TrimRight(d, "\n")) + "\n"
	}
	return encode.MustString(y) + "\n"
}
