package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"handrank.hcl" help:"Path to HCL configuration file"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Rank    RankCmd    `cmd:"" help:"Rank a hand of five or more cards"`
	Compare CompareCmd `cmd:"" help:"Compare two hands"`
	Hunt    HuntCmd    `cmd:"" help:"Deal random hands until one reaches a category"`
	Survey  SurveyCmd  `cmd:"" help:"Rank many random hands and report category frequencies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Rank poker hands and explore category frequencies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(sigCtx, &cli.Globals, os.Stdout, os.Stderr, quartz.NewReal())
	ctx.FatalIfErrorf(err)

	err = ctx.Run(a)
	ctx.FatalIfErrorf(err)
}
