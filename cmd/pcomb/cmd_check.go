package main

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dhamidi/pcomb/combinator"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Build the grammar and print the resulting matcher tree",
		Long: `Build the grammar and print the resulting matcher tree.

Without a start production every production is built and printed.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd, opts, verify)
			if err != nil {
				printErrors(cmd, err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "also check that every production is defined and reachable from --start")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *options, verify bool) error {
	g, err := opts.loadGrammar()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	start := opts.cfg.Start
	if verify {
		if start == "" {
			return fmt.Errorf("--verify needs a start production")
		}
		if err := g.Verify(start); err != nil {
			return err
		}
	}

	names := g.Productions()
	if start != "" {
		names = []string{start}
	}

	failed := 0
	for _, name := range names {
		m, err := g.Build(name)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "%s = %s\n", name, combinator.Describe(m))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d productions could not be built", failed, len(names))
	}
	return nil
}

// printErrors prints each error of an error list on its own line.
func printErrors(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(out, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(out, err)
}
