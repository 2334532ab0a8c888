package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/pcomb/combinator"
	"github.com/dhamidi/pcomb/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var errNoMatch = errors.New("no match")

func newMatchCmd(opts *options) *cobra.Command {
	var filename string
	var complete bool
	var lines bool

	cmd := &cobra.Command{
		Use:   "match [input]",
		Short: "Match input against the start production",
		Long: `Match input against the start production and print the matched fragments.

The input is taken from the argument, from --file, or from standard input.
With --lines every line is matched on its own, in parallel.
The command exits with a non-zero status if any input does not match.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.matcher()
			if err != nil {
				return err
			}

			label, input, err := readInput(cmd, args, filename)
			if err != nil {
				return err
			}

			var outcomes []format.Outcome
			if lines {
				outcomes, err = matchLines(cmd, m, input, complete, opts.cfg.Parallelism)
				if err != nil {
					return err
				}
			} else {
				outcomes = []format.Outcome{matchOne(m, label, input, complete)}
			}

			enc, err := format.NewEncoder(opts.cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := enc.Encode(outcomes...); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			failed := 0
			for _, o := range outcomes {
				if !o.Matched {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d inputs", errNoMatch, failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filename, "file", "", "read input from file")
	cmd.Flags().BoolVar(&complete, "complete", false, "require the whole input to be consumed")
	cmd.Flags().BoolVar(&lines, "lines", false, "match each input line separately")

	return cmd
}

func readInput(cmd *cobra.Command, args []string, filename string) (string, string, error) {
	switch {
	case len(args) == 1 && filename != "":
		return "", "", fmt.Errorf("give either an input argument or --file, not both")
	case len(args) == 1:
		return "argument", args[0], nil
	case filename != "":
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", "", fmt.Errorf("read input: %w", err)
		}
		return filename, string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}
}

func matchOne(m combinator.Matcher, label, input string, complete bool) format.Outcome {
	var res combinator.Result
	var ok bool
	if complete {
		res, ok = combinator.Complete(m, input)
	} else {
		res, ok = combinator.Parse(m, input)
	}
	return format.NewOutcome(label, input, res, ok)
}

// matchLines matches every line concurrently. The matcher tree is shared;
// each goroutine works on its own cursor.
func matchLines(cmd *cobra.Command, m combinator.Matcher, input string, complete bool, parallelism int) ([]format.Outcome, error) {
	log := commonlog.GetLogger("pcomb.match")

	input = strings.TrimSuffix(input, "\n")
	var split []string
	if input != "" {
		split = strings.Split(input, "\n")
	}
	outcomes := make([]format.Outcome, len(split))

	g, ctx := errgroup.WithContext(cmd.Context())
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, line := range split {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = matchOne(m, fmt.Sprintf("line %d", i+1), strings.TrimSuffix(line, "\r"), complete)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debugf("matched %d lines with parallelism %d", len(split), parallelism)
	return outcomes, nil
}
