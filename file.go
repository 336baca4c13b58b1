package naklo

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// File is an audio file that collects tags to be written by Save.
//
// Open only detects the format; no tags are read. Tags pushed with
// AddTag replace the file's existing text tags when saved, unless
// WithKeepExisting is given to Save.
//
//	file, err := naklo.Open("01.flac")
//	if err != nil {
//		return err
//	}
//	file.AddTag("artist", "Rafał Blechacz")
//	err = file.Save(naklo.WithBackup(".bak"))
type File struct {
	// Path to the audio file
	Path string

	// Detected format
	Format Format

	// File size in bytes at Open
	Size int64

	fields []Field
}

// Open detects the format of the file at path.
//
// Returns UnsupportedFormatError for directories and for files that are
// neither FLAC nor MP3.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if !stat.Mode().IsRegular() {
		return nil, &UnsupportedFormatError{Path: path, Reason: "not a regular file"}
	}

	format, err := DetectFormat(f, stat.Size(), path)
	if err != nil {
		return nil, err
	}

	return &File{
		Path:   path,
		Format: format,
		Size:   stat.Size(),
	}, nil
}

// AddTag queues a tag for the next Save.
func (f *File) AddTag(name, value string) {
	f.fields = append(f.fields, Field{Name: name, Value: value})
}

// Fields returns the queued tags in the order they were added.
func (f *File) Fields() []Field {
	return slices.Clone(f.fields)
}

// ReadTags returns the tags currently stored in the file.
func (f *File) ReadTags() ([]Field, error) {
	w, err := writerFor(f.Format)
	if err != nil {
		return nil, err
	}
	fields, err := w.Read(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s tags: %w", f.Format, err)
	}
	return fields, nil
}

// OpenMany opens multiple audio files concurrently.
//
// Files are opened in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, no files are returned.
//
//	files, err := naklo.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Tracks converts a slice of files or recorders for NewController. Nil
// items become nil placeholders, which ApplyTags skips.
func Tracks[T Track](items []T) []Track {
	out := make([]Track, len(items))
	for i, item := range items {
		if isNil(item) {
			continue
		}
		out[i] = item
	}
	return out
}

// isNil reports whether t is nil or holds a nil pointer, map, slice,
// func or channel.
func isNil(t Track) bool {
	if t == nil {
		return true
	}
	switch v := reflect.ValueOf(t); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
