package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/jolicitron"
	"github.com/signadot/jolicitron/format"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one schema file", cli.ErrUsage)
	}
	f := format.JSONFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	failed := false
	for _, file := range args {
		p, err := jolicitron.LoadSchema(file)
		if err != nil {
			report(cfg.MainConfig, cc, err)
			failed = true
			continue
		}
		var d []byte
		if f.IsJSON() {
			d, err = json.MarshalIndent(p.Schema(), "", "  ")
			d = append(d, '\n')
		} else {
			d, err = yaml.Marshal(p.Schema().Raw())
		}
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
