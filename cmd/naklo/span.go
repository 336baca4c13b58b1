package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/j39m/naklo"
)

func newSpanCommand() *cobra.Command {
	var tracks int

	cmd := &cobra.Command{
		Use:   "span SPEC...",
		Short: "Print the track numbers a span selects",
		Example: `  naklo span "1 3 5-8 11"
  naklo span '*' --tracks 6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkTrackCount(tracks); err != nil {
				return err
			}
			spec := strings.Join(args, " ")
			if tracks > 0 {
				s, err := naklo.ParseSpan(spec)
				if err != nil {
					return err
				}
				if i, outside := s.Outside(tracks); outside {
					return &naklo.ControlError{Kind: naklo.KindOverwideSpan, Span: spec, Index: i, TrackCount: tracks}
				}
			}
			indices, err := naklo.ResolveSpan(spec, tracks)
			if err != nil {
				return err
			}

			parts := make([]string, len(indices))
			for i, n := range indices {
				parts[i] = fmt.Sprint(n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}

	cmd.Flags().IntVar(&tracks, "tracks", 0, "Track count; expands '*' and bounds-checks the result")
	return cmd
}
