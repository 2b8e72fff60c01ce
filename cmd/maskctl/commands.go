package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/inputmask/datefmt"
	"github.com/katalvlaran/inputmask/mask"
	"github.com/urfave/cli/v3"
)

// errInvalid is returned after all values were printed when at least one of
// them could not be parsed.
var errInvalid = errors.New("some values are invalid")

// maskLine is the --json form of one apply/date result.
type maskLine struct {
	Value    string `json:"value"`
	Text     string `json:"text"`
	Complete bool   `json:"complete"`
	Date     string `json:"date,omitempty"`
	Error    string `json:"error,omitempty"`
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Print one JSON object per value",
	}
}

// applyCommand masks values with a pattern.
func applyCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Mask values with a pattern",
		ArgsUsage: "[VALUE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pattern",
				Aliases:  []string{"p"},
				Usage:    "Mask pattern: 0 digit, # optional digit, anything else literal",
				Sources:  cli.EnvVars("MASKCTL_PATTERN"),
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "quoted",
				Usage: `Read --pattern as a Go-quoted string, so "\x00" and "\x01" escapes can be passed`,
			},
			&cli.BoolFlag{
				Name:  "no-prediction",
				Usage: "Do not append literals past the typed input",
			},
			&cli.BoolFlag{
				Name:  "no-lazy",
				Usage: "Do not zero-pad runs closed early by a separator",
			},
			jsonFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			src := c.String("pattern")
			if c.Bool("quoted") {
				unq, err := strconv.Unquote(src)
				if err != nil {
					return fmt.Errorf("--pattern %s: %w", src, err)
				}
				src = unq
			}
			p := mask.Compile(src)
			opts := []mask.Option{
				mask.WithPrediction(!c.Bool("no-prediction")),
				mask.WithLazy(!c.Bool("no-lazy")),
				mask.WithLogger(e.logger),
			}
			w := c.Root().Writer

			return eachValue(c, func(v string) error {
				res := p.Apply(v, opts...)
				e.logger.Debug("masked", slog.String("value", v), slog.String("text", res.Text), slog.Bool("complete", res.Complete))
				if c.Bool("json") {
					return writeJSON(w, maskLine{Value: v, Text: res.Text, Complete: res.Complete})
				}
				_, err := fmt.Fprintf(w, "%s\t%s\n", res.Text, state(res.Complete))
				return err
			})
		},
	}
}

// dateCommand masks values with a layout's pattern and parses complete ones.
func dateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "date",
		Usage:     "Mask and parse dates with a layout such as dd.MM.yyyy",
		ArgsUsage: "[VALUE...]",
		Flags: []cli.Flag{
			layoutFlag(),
			jsonFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			layout := c.String("layout")
			w := c.Root().Writer
			invalid := 0

			err := eachValue(c, func(v string) error {
				t, res, err := datefmt.Complete(v, layout,
					datefmt.WithMaskOptions(mask.WithLogger(e.logger)))
				line := maskLine{Value: v, Text: res.Text, Complete: res.Complete}
				switch {
				case err == nil:
					line.Date = t.Format(time.RFC3339)
				case errors.Is(err, datefmt.ErrIncomplete):
				case errors.Is(err, datefmt.ErrNotMaskable), errors.Is(err, datefmt.ErrEmptyLayout):
					return err
				default:
					invalid++
					line.Error = err.Error()
					e.logger.Warn("invalid date", slog.String("value", v), slog.Any("err", err))
				}

				if c.Bool("json") {
					return writeJSON(w, line)
				}
				switch {
				case line.Date != "":
					_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", datefmt.Format(t, layout), line.Date, state(true))
				case line.Error != "":
					_, err = fmt.Fprintf(w, "%s\tinvalid\n", res.Text)
				default:
					_, err = fmt.Fprintf(w, "%s\t%s\n", res.Text, state(false))
				}
				return err
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of the values: %w", invalid, errInvalid)
			}
			return nil
		},
	}
}

// patternCommand prints the mask pattern of a layout.
func patternCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "pattern",
		Usage: "Print the mask pattern for a date layout, Go-quoted (see apply --quoted)",
		Flags: []cli.Flag{layoutFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			pattern, err := datefmt.MaskPattern(c.String("layout"))
			if err != nil {
				return err
			}
			e.logger.Debug("pattern", slog.String("layout", c.String("layout")), slog.String("pattern", pattern))
			// Escapes are control characters, which no argv can carry raw.
			_, err = fmt.Fprintln(c.Root().Writer, strconv.Quote(pattern))
			return err
		},
	}
}

func layoutFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "layout",
		Aliases:  []string{"l"},
		Usage:    "Date layout, e.g. yyyy-MM-dd or M/d/yyyy HH:mm",
		Sources:  cli.EnvVars("MASKCTL_LAYOUT"),
		Required: true,
	}
}

// eachValue calls fn for every argument, or for every stdin line when there
// are no arguments.
func eachValue(c *cli.Command, fn func(string) error) error {
	if c.Args().Len() > 0 {
		for _, v := range c.Args().Slice() {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}

	in := c.Root().Reader
	if in == nil {
		return nil
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := fn(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return err
		}
	}

	return sc.Err()
}

func writeJSON(w io.Writer, v maskLine) error {
	return json.NewEncoder(w).Encode(v)
}

func state(complete bool) string {
	if complete {
		return "complete"
	}

	return "partial"
}
