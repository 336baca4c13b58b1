package naklo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	// Register the format writers.
	_ "github.com/j39m/naklo/internal/flac"
	_ "github.com/j39m/naklo/internal/mp3"
	"github.com/j39m/naklo/internal/registry"
	"github.com/j39m/naklo/internal/types"
)

// Save writes the queued tags back to the original file.
//
// This is an atomic operation: the file is copied to a temporary file,
// tags are written there, and the copy is renamed over the original. If
// any step fails, the original file remains unchanged.
//
//	err := file.Save(
//	    naklo.WithBackup(".bak"),
//	    naklo.WithValidation(),
//	)
//
// Returns UnsupportedWriteError if no writer is registered for the format.
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the file with the queued tags to outputPath. The source
// file at f.Path is left untouched unless outputPath is f.Path.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	writer, err := writerFor(f.Format)
	if err != nil {
		return err
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(f.Path); err == nil {
			origInfo = info
		}
	}

	// Temp file in the output directory so the final rename is atomic.
	tempFile, err := os.CreateTemp(filepath.Dir(outputPath), ".naklo-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if err := copyFrom(tempFile, f.Path); err != nil {
		return err
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	wopts := registry.WriteOptions{KeepExisting: options.keepExisting}
	if err := writer.Write(tempPath, f.fields, wopts); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if options.backupSuffix != "" {
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, outputPath+options.backupSuffix); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	if options.validate {
		if err := f.validateWrittenFile(writer, outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

func copyFrom(dst io.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close() //nolint:errcheck // Read-only

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy source: %w", err)
	}
	return nil
}

// validateWrittenFile reads the tags back and checks that every queued
// tag is present.
func (f *File) validateWrittenFile(writer FormatWriter, path string) error {
	written, err := writer.Read(path)
	if err != nil {
		return fmt.Errorf("re-read: %w", err)
	}

	have := make(map[Field]int, len(written))
	for _, field := range written {
		have[field]++
	}
	for _, field := range f.fields {
		if have[field] == 0 {
			return fmt.Errorf("missing %s", field)
		}
		have[field]--
	}
	return nil
}

// SaveMany saves files concurrently with up to runtime.NumCPU()
// goroutines. The first error cancels files not yet started; files
// already saved stay saved.
func SaveMany(ctx context.Context, files []*File, opts ...SaveOption) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := file.Save(opts...); err != nil {
				return fmt.Errorf("%s: %w", file.Path, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func writerFor(format Format) (FormatWriter, error) {
	writer := registry.GetWriter(format)
	if writer == nil {
		return nil, &types.UnsupportedWriteError{
			Format: format,
			Reason: "no writer registered",
		}
	}
	return writer, nil
}

// FormatWriter is an alias to registry.FormatWriter.
type FormatWriter = registry.FormatWriter

// WriteOptions is an alias to registry.WriteOptions.
type WriteOptions = registry.WriteOptions

// RegisterWriter registers a writer for a format, replacing any writer
// already registered. FLAC and MP3 writers are registered by default.
func RegisterWriter(format Format, writer FormatWriter) {
	registry.RegisterWriter(format, writer)
}
