// Command maskctl applies input masks and date layouts from the shell.
//
//	maskctl apply --pattern 0000-00-00 12345678
//	echo 3.7.2024 | maskctl date --layout dd.MM.yyyy
//	maskctl pattern --layout M/d/yyyy
//
// Values come from the arguments, or one per line from stdin when none are
// given. Flags fall back to MASKCTL_* environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env holds what every command shares: the logger and its level switch.
type env struct {
	level  *slog.LevelVar
	logger *slog.Logger
}

// newApp builds the command tree over the given streams.
func newApp(in io.Reader, out, errOut io.Writer) *cli.Command {
	e := &env{level: new(slog.LevelVar)}
	e.level.Set(slog.LevelWarn)
	e.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: e.level}))

	return &cli.Command{
		Name:      "maskctl",
		Usage:     "Format values with input masks and date layouts",
		Version:   "1.0.0",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log debug output, including mask chunk traces",
				Sources: cli.EnvVars("MASKCTL_VERBOSE"),
			},
		},

		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if c.Bool("verbose") {
				e.level.Set(slog.LevelDebug)
			}
			return ctx, nil
		},

		Commands: []*cli.Command{
			applyCommand(e),
			dateCommand(e),
			patternCommand(e),
		},
	}
}
