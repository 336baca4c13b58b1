package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j39m/naklo"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := naklo.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "naklo %s (commit %s, built %s, %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		},
	}
}
