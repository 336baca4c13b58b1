// Command naklo tags albums from control files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/j39m/naklo"
)

// appContext is shared by all subcommands.
type appContext struct {
	Verbose bool
	Logger  *slog.Logger
}

func main() {
	cmd := newRootCommand(&appContext{})
	if err := cmd.Execute(); err != nil {
		report(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func newRootCommand(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "naklo",
		Short:         "Tag FLAC and MP3 albums from declarative control files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if app.Verbose {
				level = slog.LevelDebug
			}
			app.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log debug details to stderr")

	cmd.AddCommand(
		newApplyCommand(app),
		newPlanCommand(app),
		newSpanCommand(),
		newTagsCommand(),
		newVersionCommand(),
	)
	return cmd
}

// report prints err, adding the control data position when known.
func report(w io.Writer, err error) {
	var ce *naklo.ControlError
	if errors.As(err, &ce) && ce.Where() != "" {
		fmt.Fprintf(w, "naklo: %v (%s)\n", err, ce.Where())
		return
	}
	fmt.Fprintf(w, "naklo: %v\n", err)
}
