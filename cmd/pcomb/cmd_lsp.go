package main

import (
	"github.com/dhamidi/pcomb/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server that checks documents against the start production",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.matcher()
			if err != nil {
				return err
			}
			server := lsp.NewServer(m, opts.cfg.Start, version)
			return server.RunStdio()
		},
	}
}
