package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/3-lines-studio/duoserve"
	clioutput "github.com/3-lines-studio/duoserve/internal/adapters/cli"
	"github.com/3-lines-studio/duoserve/internal/adapters/env"
	"github.com/3-lines-studio/duoserve/internal/config"
	"github.com/3-lines-studio/duoserve/internal/core"
	"github.com/3-lines-studio/duoserve/internal/initcmd"
	"github.com/3-lines-studio/duoserve/internal/logger"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	output := clioutput.NewOutput(stdout, stderr)

	return &cli.App{
		Name:      "duoserve",
		Usage:     "Serve and build a single page from js and css entry files",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultFile,
				Usage:   "path to the project file",
				EnvVars: []string{"DUOSERVE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{"DUOSERVE_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "log format (text, json)",
			},
		},
		Before: func(c *cli.Context) error {
			return env.LoadDotenv()
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Create a new project",
				ArgsUsage: "[dir]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "template",
						Aliases: []string{"t"},
						Value:   "starter",
						Usage:   "project template (starter, library)",
					},
				},
				Action: func(c *cli.Context) error {
					dir := c.Args().First()
					if dir == "" {
						dir = "."
					}
					if err := initcmd.Run(dir, c.String("template"), output); err != nil {
						output.PrintError("%v", err)
						return err
					}
					return nil
				},
			},
			{
				Name:      "serve",
				Usage:     "Start the development server",
				ArgsUsage: "[entries...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Value: ":3000",
						Usage: "address to listen on",
					},
				},
				Action: func(c *cli.Context) error {
					return runServe(c, output, stderr)
				},
			},
			{
				Name:      "build",
				Usage:     "Write the page and its entries to a directory",
				ArgsUsage: "[entries...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "output directory (default from project file, else build)",
					},
				},
				Action: func(c *cli.Context) error {
					return runBuild(c, output, stderr)
				},
			},
		},
	}
}

// setup builds the logger and a server configured from the project file
// and the positional entries.
func setup(c *cli.Context, stderr io.Writer) (*duoserve.Server, *config.Config, *slog.Logger, error) {
	log, err := logger.New(c.String("log-level"), c.String("log-format"), stderr)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}

	server := cfg.Apply(duoserve.New("", duoserve.WithLogger(log)))
	if c.Args().Len() > 0 {
		server.Entry(c.Args().Slice()...)
	}
	return server, cfg, log, nil
}

func runServe(c *cli.Context, output *clioutput.Output, stderr io.Writer) error {
	server, _, log, err := setup(c, stderr)
	if err != nil {
		output.PrintError("%v", err)
		return err
	}

	log.Debug("entries registered", "entries", server.Entries())
	if err := server.ListenAndServe(c.Context, c.String("addr")); err != nil {
		output.PrintError("%v", err)
		return err
	}
	return nil
}

func runBuild(c *cli.Context, output *clioutput.Output, stderr io.Writer) error {
	output.PrintHeader("duoserve build")

	server, cfg, _, err := setup(c, stderr)
	if err != nil {
		output.PrintError("%v", err)
		return err
	}

	out := c.String("out")
	if out == "" {
		out = cfg.OutDir()
	}

	entries := server.Entries()
	report := clioutput.NewBuildReport(output, core.ResolvePath(server.Settings().Root, out))
	report.SetEntryCount(len(entries["js"]) + len(entries["css"]))

	files, err := server.BuildTo(c.Context, out)
	if err != nil {
		report.Fail(err)
	}
	report.SetFiles(files)
	report.Render()

	if report.HasFailures() {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}
