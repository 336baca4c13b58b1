package naklo

import (
	"io"

	"github.com/j39m/naklo/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Formats naklo can tag.
const (
	FormatUnknown = types.FormatUnknown
	FormatFLAC    = types.FormatFLAC
	FormatMP3     = types.FormatMP3
)

// DetectFormat is a wrapper around types.DetectFormat.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
