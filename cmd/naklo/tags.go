package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j39m/naklo"
)

func newTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tag names control files may use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for name := range naklo.TagNames() {
				fmt.Fprintln(out, name)
			}
			fmt.Fprintf(out, "%s (reserved)\n%s (reserved)\n", naklo.TagTrackNumber, naklo.TagTrackTotal)
		},
	}
}
