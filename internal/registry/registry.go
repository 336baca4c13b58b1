// Package registry manages format-specific tag writers.
package registry

import (
	"sync"

	"github.com/j39m/naklo/internal/types"
)

// WriteOptions controls how a writer treats tags already in the file.
type WriteOptions struct {
	// KeepExisting appends the new fields to the file's current tags
	// instead of replacing them.
	KeepExisting bool
}

// FormatWriter is the interface format writers implement.
type FormatWriter interface {
	// Write stores fields in the file at path, in order, editing it in
	// place. Multiple fields with the same name are all kept.
	Write(path string, fields []types.Field, opts WriteOptions) error

	// Read returns the naklo-vocabulary fields currently stored in the
	// file at path. Fields the writer cannot map back are skipped.
	Read(path string) ([]types.Field, error)
}

var (
	mu      sync.RWMutex
	writers = make(map[types.Format]FormatWriter)
)

// RegisterWriter registers a writer for a format.
// This is called by format packages during initialization (init functions).
func RegisterWriter(format types.Format, writer FormatWriter) {
	mu.Lock()
	defer mu.Unlock()
	writers[format] = writer
}

// GetWriter returns the writer for a given format.
// Returns nil if no writer is registered for the format.
func GetWriter(format types.Format) FormatWriter {
	mu.RLock()
	defer mu.RUnlock()
	return writers[format]
}
