package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/jolicitron"
	"github.com/signadot/jolicitron/encode"
	"github.com/signadot/jolicitron/format"
)

type MainConfig struct {
	Input  string `cli:"name=input aliases=i desc='path to the input file'"`
	Schema string `cli:"name=schema aliases=s desc='path to the schema file (json or yaml)'"`
	Output string `cli:"name=output aliases=o desc='path to the output file, - for stdout'"`
	Strict bool   `cli:"name=strict desc='fail when input remains after the parsed value'"`
	Color  bool   `cli:"name=color desc='encode and report errors with color'"`
	Patch  string `cli:"name=patch desc='json patch (RFC 6902) file applied to the result'"`
	Get    string `cli:"name=get desc='output only the value at this path, e.g. $.items[0]'"`

	OutFormat *format.Format

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

func (cfg *MainConfig) parseOpts() []jolicitron.ParseOption {
	return []jolicitron.ParseOption{jolicitron.Strict(cfg.Strict)}
}

// colorsFor reports whether output to w should be colored: -color forces
// it, otherwise terminals get color.
func (cfg *MainConfig) colorsFor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := format.JSONFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	} else if cfg.Output != "" && cfg.Output != "-" {
		f = format.FromPath(cfg.Output)
	}
	res := []encode.EncodeOption{encode.EncodeFormat(f)}
	if cfg.colorsFor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type VerifyConfig struct {
	Input    string `cli:"name=input aliases=i desc='path to the input file'"`
	Schema   string `cli:"name=schema aliases=s desc='path to the schema file (json or yaml)'"`
	Expected string `cli:"name=expected aliases=e desc='path to the expected json output'"`

	Parent *MainConfig
	Verify *cli.Command
}
