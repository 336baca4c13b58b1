package naklo

import (
	"log/slog"
	"maps"
)

// Option configures a Controller.
//
// Example:
//
//	c := naklo.NewController(tracks,
//	    naklo.WithLogger(slog.Default()),
//	    naklo.WithBlockAliases(map[string]naklo.Shape{"titles": naklo.ShapeTitle}),
//	)
type Option func(*controllerOptions)

type controllerOptions struct {
	logger *slog.Logger
	shapes map[string]Shape
}

func defaultOptions() *controllerOptions {
	return &controllerOptions{
		logger: slog.New(slog.DiscardHandler),
		shapes: maps.Clone(blockNames),
	}
}

// WithLogger sets the logger for block ingestion and tag application.
// Everything is logged at debug level. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *controllerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBlockAliases registers additional block names. Built-in names
// cannot be remapped; aliases for them are skipped.
func WithBlockAliases(aliases map[string]Shape) Option {
	return func(o *controllerOptions) {
		for name, shape := range aliases {
			if _, builtin := blockNames[name]; builtin {
				continue
			}
			o.shapes[name] = shape
		}
	}
}
