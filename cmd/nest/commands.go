package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/nest/doc"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Env: doc.Env{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "e",
			Description: "set an expression variable",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nest").
		WithSynopsis("nest [opts] command [opts]").
		WithDescription("nest renders element tree documents as XML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nestMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			TraceCommand(cfg),
			CheckCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render [files]").
		WithDescription("render documents as XML").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func TraceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TraceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("trace").
		WithAliases("t").
		WithOpts(opts...).
		WithSynopsis("trace [files]").
		WithDescription("show the open and close calls a document makes").
		WithRun(func(cc *cli.Context, args []string) error {
			return traceDocs(cfg, cc, args)
		})
	cfg.Trace = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check <doc> <expected>").
		WithDescription("render a document and compare it with expected output").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
