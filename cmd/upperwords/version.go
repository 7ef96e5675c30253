package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/pollkit/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return version.GetVersionInfo().Fprint(cmd.OutOrStdout(), serviceName)
		},
	}
}
