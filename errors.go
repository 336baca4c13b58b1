package naklo

import (
	"github.com/j39m/naklo/internal/types"
)

// ControlError is an alias to types.ControlError.
// Re-exporting from internal/types to keep a single public error type.
type ControlError = types.ControlError

// ErrorKind is an alias to types.ErrorKind.
type ErrorKind = types.ErrorKind

// Error kinds reported by span parsing and block interpretation.
const (
	KindUnknown                 = types.KindUnknown
	KindMalformedSpan           = types.KindMalformedSpan
	KindInvalidSpanToken        = types.KindInvalidSpanToken
	KindOverwideSpan            = types.KindOverwideSpan
	KindUnrecognizedBlock       = types.KindUnrecognizedBlock
	KindInvalidTagName          = types.KindInvalidTagName
	KindUnexpectedTagValue      = types.KindUnexpectedTagValue
	KindMalformedBlockStructure = types.KindMalformedBlockStructure
)

// Sentinels for errors.Is. Each matches any *ControlError of its kind:
//
//	if errors.Is(err, naklo.ErrInvalidTagName) {
//		var ce *naklo.ControlError
//		errors.As(err, &ce)
//		fmt.Println("bad tag:", ce.Tag)
//	}
var (
	ErrMalformedSpan           error = &ControlError{Kind: KindMalformedSpan}
	ErrInvalidSpanToken        error = &ControlError{Kind: KindInvalidSpanToken}
	ErrOverwideSpan            error = &ControlError{Kind: KindOverwideSpan}
	ErrUnrecognizedBlock       error = &ControlError{Kind: KindUnrecognizedBlock}
	ErrInvalidTagName          error = &ControlError{Kind: KindInvalidTagName}
	ErrUnexpectedTagValue      error = &ControlError{Kind: KindUnexpectedTagValue}
	ErrMalformedBlockStructure error = &ControlError{Kind: KindMalformedBlockStructure}
)

// KindOf returns the kind of the first *ControlError in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	return types.KindOf(err)
}

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// UnsupportedWriteError is an alias to types.UnsupportedWriteError.
type UnsupportedWriteError = types.UnsupportedWriteError
