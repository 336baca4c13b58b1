package types

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a taggable audio container.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatFLAC represents FLAC audio files.
	FormatFLAC
	// FormatMP3 represents MP3 audio files.
	FormatMP3
)

func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "FLAC"
	case FormatMP3:
		return "MP3"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatFLAC:
		return []string{".flac"}
	case FormatMP3:
		return []string{".mp3"}
	default:
		return nil
	}
}

// DetectFormat determines the container from its leading bytes, falling
// back to the file extension when the header is inconclusive (for
// example an MP3 that starts with junk before the first frame).
//
// Only the first four bytes are examined; the audio stream itself is
// never read.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size >= 4 {
		magic := make([]byte, 4)
		if _, err := r.ReadAt(magic, 0); err != nil && err != io.EOF {
			return FormatUnknown, &UnsupportedFormatError{
				Path:   path,
				Reason: "failed to read file header",
			}
		}

		switch {
		case bytes.Equal(magic, []byte("fLaC")):
			return FormatFLAC, nil
		case bytes.Equal(magic[:3], []byte("ID3")):
			return FormatMP3, nil
		case magic[0] == 0xFF && (magic[1]&0xE0) == 0xE0:
			// MPEG frame sync without an ID3 header
			return FormatMP3, nil
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []Format{FormatFLAC, FormatMP3} {
		for _, e := range f.Extensions() {
			if ext == e {
				return f, nil
			}
		}
	}

	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}
	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "unsupported file format",
	}
}
