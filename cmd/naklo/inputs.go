package main

import (
	"fmt"
	"os"

	"github.com/j39m/naklo"
)

// inputOptions are the flags shared by apply and plan.
type inputOptions struct {
	Controls []string
	Listing  string
	Titles   string
}

// trackPaths returns args followed by the entries of the listing file.
func (o *inputOptions) trackPaths(args []string) ([]string, error) {
	paths := append([]string(nil), args...)
	if o.Listing == "" {
		return paths, nil
	}

	f, err := os.Open(o.Listing)
	if err != nil {
		return nil, fmt.Errorf("open listing: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only

	listed, err := naklo.ReadListing(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.Listing, err)
	}
	return append(paths, listed...), nil
}

// ingest feeds control files and the title file to c. Without either,
// the control file is looked up in the working directory.
func (o *inputOptions) ingest(app *appContext, c *naklo.Controller) error {
	controls := o.Controls
	if len(controls) == 0 && o.Titles == "" {
		path, err := naklo.FindControlFile(".")
		if err != nil {
			return err
		}
		app.Logger.Debug("using control file", "path", path)
		controls = []string{path}
	}

	for _, path := range controls {
		doc, err := naklo.LoadControl(path)
		if err != nil {
			return err
		}
		if err := c.AddTagBlocks(doc); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		app.Logger.Debug("loaded control file", "path", path, "blocks", len(doc))
	}

	if o.Titles == "" {
		return nil
	}
	f, err := os.Open(o.Titles)
	if err != nil {
		return fmt.Errorf("open titles: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only

	titles, err := naklo.ReadTitles(f)
	if err != nil {
		return fmt.Errorf("%s: %w", o.Titles, err)
	}
	if err := c.AddTitles(titles); err != nil {
		return fmt.Errorf("%s: %w", o.Titles, err)
	}
	return nil
}

func checkTrackCount(n int) error {
	if n < 0 {
		return fmt.Errorf("--tracks must not be negative, got %d", n)
	}
	return nil
}
