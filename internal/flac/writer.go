// Package flac writes naklo tags into FLAC Vorbis comment blocks.
package flac

import (
	"fmt"
	"os"
	"path/filepath"

	goflac "github.com/go-flac/go-flac"
	"github.com/go-flac/flacvorbis"

	"github.com/j39m/naklo/internal/registry"
	"github.com/j39m/naklo/internal/types"
	"github.com/j39m/naklo/internal/vorbis"
)

// vendor is used when a file has no Vorbis comment block yet.
const vendor = "naklo"

// writer implements registry.FormatWriter for FLAC files.
type writer struct{}

// Write replaces (or extends) the file's VORBIS_COMMENT block with one
// comment per field, in field order. All other metadata blocks and the
// audio frames are carried over untouched.
func (w *writer) Write(path string, fields []types.Field, opts registry.WriteOptions) error {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse FLAC: %w", err)
	}

	cmt, idx, err := findComments(f)
	if err != nil {
		return err
	}
	if cmt == nil {
		cmt = flacvorbis.New()
		cmt.Vendor = vendor
	} else if !opts.KeepExisting {
		cmt.Comments = nil
	}

	for _, field := range fields {
		if err := cmt.Add(vorbis.FieldName(field.Name), field.Value); err != nil {
			return fmt.Errorf("add %s: %w", field.Name, err)
		}
	}

	block := cmt.Marshal()
	if idx >= 0 {
		f.Meta[idx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	// Save into a sibling file first: the parsed file may still be
	// backed by path.
	part := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".part")
	if err := f.Save(part); err != nil {
		_ = os.Remove(part) //nolint:errcheck // Best effort cleanup
		return fmt.Errorf("save FLAC: %w", err)
	}
	if err := os.Rename(part, path); err != nil {
		_ = os.Remove(part) //nolint:errcheck // Best effort cleanup
		return fmt.Errorf("replace FLAC: %w", err)
	}
	return nil
}

// Read returns the naklo fields stored in the file's Vorbis comments.
func (w *writer) Read(path string) ([]types.Field, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse FLAC: %w", err)
	}

	cmt, _, err := findComments(f)
	if err != nil || cmt == nil {
		return nil, err
	}
	return vorbis.Fields(cmt.Comments), nil
}

// findComments returns the first VORBIS_COMMENT block and its index in
// f.Meta, or nil and -1 if there is none.
func findComments(f *goflac.File) (*flacvorbis.MetaDataBlockVorbisComment, int, error) {
	for i, block := range f.Meta {
		if block.Type != goflac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return nil, -1, fmt.Errorf("parse Vorbis comments: %w", err)
		}
		return cmt, i, nil
	}
	return nil, -1, nil
}

func init() {
	registry.RegisterWriter(types.FormatFLAC, &writer{})
}
