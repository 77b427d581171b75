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
	opts := append(sOpts, &cli.Opt{
		Name:        "format",
		Aliases:     []string{"f"},
		Description: "output format: json/j, yaml/y (default from -output suffix, else json)",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jolicitron").
		WithSynopsis("jolicitron -input <file> -schema <file> -output <file> [opts] | jolicitron <command> [opts]").
		WithDescription("jolicitron parses whitespace separated text into json described by a schema.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jolicitronMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			VerifyCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check <schema-file>...").
		WithDescription("validate schemas and print their canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{Parent: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithAliases("v").
		WithSynopsis("verify -input <file> -schema <file> -expected <file>").
		WithDescription("parse input and compare the json result with an expected output").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return verify(cfg, cc, args)
		})
}
