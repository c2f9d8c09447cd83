package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-invoicegen/internal/bootstrap"
	"github.com/goliatone/go-invoicegen/pkg/collector/tui"
	"github.com/goliatone/go-invoicegen/pkg/generate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "invoicegen",
		Usage:     "fill in an invoice and save it as a PDF",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with form defaults, fonts and logging settings",
				EnvVars: []string{"INVOICEGEN_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the PDF here instead of asking for a destination",
			},
			&cli.BoolFlag{
				Name:    "accept-defaults",
				Aliases: []string{"y"},
				Usage:   "skip the prompts and use the configured defaults",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "also write logs to this rotated file",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	env, err := bootstrap.Load(bootstrap.Flags{
		ConfigPath: c.String("config"),
		LogLevel:   c.String("log-level"),
		LogFile:    c.String("log-file"),
		Console:    c.App.ErrWriter,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	opts := []tui.Option{tui.WithTheme(tui.Theme{InfoPrefix: "Success: ", ErrorPrefix: "Error: "})}
	if c.Bool("accept-defaults") {
		opts = append(opts, tui.WithPromptDriver(tui.NewDefaultsDriver(c.App.Writer)))
	}
	collector := tui.New(env.Form, opts...)

	gen := generate.New(collector, env.Renderer, collector,
		generate.WithOutput(c.String("output")),
		generate.WithSuggestedPath(env.Config.Output.Filename),
	)
	_, err = gen.Run(c.Context)
	return err
}
