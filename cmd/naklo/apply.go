package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j39m/naklo"
)

type applyOptions struct {
	inputOptions
	DryRun        bool
	Backup        string
	KeepExisting  bool
	PreserveMTime bool
	Validate      bool
}

func newApplyCommand(app *appContext) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply [FILES...]",
		Short: "Write tags from control files to audio files",
		Long: `Apply resolves the control files against the given tracks, in order,
and writes the result. Track N is the Nth file named on the command line,
followed by the files of the listing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := opts.trackPaths(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.New("no tracks given")
			}
			if problems := naklo.CheckListing(paths); len(problems) > 0 {
				for _, p := range problems {
					app.Logger.Error("bad track", "error", p)
				}
				return fmt.Errorf("%d of %d tracks unusable", len(problems), len(paths))
			}

			if opts.DryRun {
				recs := make([]*naklo.Recorder, len(paths))
				for i, p := range paths {
					recs[i] = naklo.NewRecorder(p)
				}
				c := naklo.NewController(naklo.Tracks(recs), naklo.WithLogger(app.Logger))
				if err := opts.ingest(app, c); err != nil {
					return err
				}
				c.ApplyTags()
				for _, r := range recs {
					if _, err := r.WriteTo(cmd.OutOrStdout()); err != nil {
						return err
					}
				}
				return nil
			}

			files, err := naklo.OpenMany(cmd.Context(), paths...)
			if err != nil {
				return err
			}
			c := naklo.NewController(naklo.Tracks(files), naklo.WithLogger(app.Logger))
			if err := opts.ingest(app, c); err != nil {
				return err
			}
			c.ApplyTags()

			if err := naklo.SaveMany(cmd.Context(), files, opts.saveOptions()...); err != nil {
				return err
			}
			app.Logger.Info("tagged tracks", "count", len(files))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Controls, "control", "c", nil, "Control file; repeat to apply several in order")
	cmd.Flags().StringVarP(&opts.Listing, "listing", "l", "", "File listing one track path per line")
	cmd.Flags().StringVarP(&opts.Titles, "titles", "t", "", "File with one title per line")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print the tags instead of writing them")
	cmd.Flags().StringVar(&opts.Backup, "backup", "", "Keep originals with this suffix appended (e.g. .bak)")
	cmd.Flags().BoolVar(&opts.KeepExisting, "keep-existing", false, "Add to the files' current tags instead of replacing them")
	cmd.Flags().BoolVar(&opts.PreserveMTime, "preserve-mtime", false, "Keep the files' modification times")
	cmd.Flags().BoolVar(&opts.Validate, "validate", false, "Read tags back after writing and verify them")
	return cmd
}

func (o *applyOptions) saveOptions() []naklo.SaveOption {
	var opts []naklo.SaveOption
	if o.Backup != "" {
		opts = append(opts, naklo.WithBackup(o.Backup))
	}
	if o.KeepExisting {
		opts = append(opts, naklo.WithKeepExisting())
	}
	if o.PreserveMTime {
		opts = append(opts, naklo.WithPreserveModTime())
	}
	if o.Validate {
		opts = append(opts, naklo.WithValidation())
	}
	return opts
}
