//go:build fyne

package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-invoicegen/internal/bootstrap"
	"github.com/goliatone/go-invoicegen/internal/logging"
	"github.com/goliatone/go-invoicegen/pkg/collector/gui"
	"github.com/goliatone/go-invoicegen/pkg/generate"
)

func main() {
	cliApp := &cli.App{
		Name:  "invoicegen-gui",
		Usage: "fill in an invoice in a desktop window and save it as a PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"INVOICEGEN_CONFIG"}},
			&cli.StringFlag{Name: "log-level"},
			&cli.StringFlag{Name: "log-file"},
		},
		Action: run,
	}
	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	env, err := bootstrap.Load(bootstrap.Flags{
		ConfigPath: c.String("config"),
		LogLevel:   c.String("log-level"),
		LogFile:    c.String("log-file"),
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fyneApp := app.New()
	collector := gui.New(fyneApp, env.Form)
	gen := generate.New(collector, env.Renderer, collector,
		generate.WithSuggestedPath(env.Config.Output.Filename),
	)

	collector.OnGenerate(func() {
		if _, err := gen.Run(context.Background()); err != nil {
			logging.Error("invoice run failed", "error", err)
			dialog.ShowError(err, collector.Window())
		}
	})

	logging.Info("starting desktop collector")
	collector.Window().ShowAndRun()
	return nil
}
