package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/j39m/naklo"
)

type planOptions struct {
	inputOptions
	Tracks int
	Dump   bool
}

func newPlanCommand(app *appContext) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan [FILES...]",
		Short: "Print the tags control files resolve to, without touching any file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkTrackCount(opts.Tracks); err != nil {
				return err
			}
			paths, err := opts.trackPaths(args)
			if err != nil {
				return err
			}
			count := len(paths)
			if count == 0 {
				count = opts.Tracks
			} else if opts.Tracks != 0 && opts.Tracks != count {
				return fmt.Errorf("--tracks %d disagrees with %d track paths", opts.Tracks, count)
			}
			if count == 0 {
				return errors.New("no tracks given: name files or pass --tracks")
			}

			c := naklo.NewController(make([]naklo.Track, count), naklo.WithLogger(app.Logger))
			if err := opts.ingest(app, c); err != nil {
				return err
			}

			plan := c.Plan()
			out := cmd.OutOrStdout()
			if opts.Dump {
				spew.Fdump(out, plan)
				return nil
			}
			for _, a := range plan {
				label := fmt.Sprint(a.Track)
				if len(paths) > 0 {
					label = paths[a.Track-1]
				}
				fmt.Fprintf(out, "%s\t%s=%s\n", label, a.Tag, a.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Controls, "control", "c", nil, "Control file; repeat to apply several in order")
	cmd.Flags().StringVarP(&opts.Listing, "listing", "l", "", "File listing one track path per line")
	cmd.Flags().StringVarP(&opts.Titles, "titles", "t", "", "File with one title per line")
	cmd.Flags().IntVar(&opts.Tracks, "tracks", 0, "Number of tracks when no files are named")
	cmd.Flags().BoolVar(&opts.Dump, "dump", false, "Dump the plan as Go values")
	return cmd
}
