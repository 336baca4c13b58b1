package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a control data failure.
type ErrorKind uint8

const (
	// KindUnknown is the zero value and never produced by naklo itself.
	KindUnknown ErrorKind = iota
	// KindMalformedSpan means a span specification has an unexpected shape.
	KindMalformedSpan
	// KindInvalidSpanToken means a range token is not of the form low-high
	// with 1 <= low < high.
	KindInvalidSpanToken
	// KindOverwideSpan means a resolved index falls outside [1, track count].
	KindOverwideSpan
	// KindUnrecognizedBlock means a top-level block name is unknown.
	KindUnrecognizedBlock
	// KindInvalidTagName means a tag key is not in the vocabulary.
	KindInvalidTagName
	// KindUnexpectedTagValue means a leaf value is neither a string nor a
	// flat list of strings.
	KindUnexpectedTagValue
	// KindMalformedBlockStructure means a block body does not have the
	// nesting its block shape requires.
	KindMalformedBlockStructure
)

var kindNames = [...]string{
	KindUnknown:                 "unknown error",
	KindMalformedSpan:           "malformed span",
	KindInvalidSpanToken:        "invalid span token",
	KindOverwideSpan:            "overwide span",
	KindUnrecognizedBlock:       "unrecognized block identifier",
	KindInvalidTagName:          "invalid tag name",
	KindUnexpectedTagValue:      "unexpected tag value",
	KindMalformedBlockStructure: "malformed block structure",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ControlError is returned for every problem found while interpreting
// control data. Kind identifies the failure; the remaining fields carry
// whatever context was known at the point of detection and are left
// zero otherwise.
type ControlError struct {
	// Block is the top-level block name being processed.
	Block string
	// Tag is the offending or enclosing tag name.
	Tag string
	// Span is the span specification as authored.
	Span string
	// Value is a rendering of the offending value.
	Value string
	// Reason adds detail that doesn't fit the fields above.
	Reason string
	// Index is the out-of-range track index (OverwideSpan only).
	Index int
	// TrackCount is the number of known tracks (OverwideSpan only).
	TrackCount int
	// Line is the 1-based source line, 0 when unknown.
	Line int
	Kind ErrorKind
}

func (e *ControlError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")

	switch e.Kind {
	case KindMalformedSpan:
		fmt.Fprintf(&b, "``%s''", e.Value)
	case KindInvalidSpanToken:
		fmt.Fprintf(&b, "``%s''", e.Value)
		if e.Span != "" && e.Span != e.Value {
			fmt.Fprintf(&b, " in span ``%s''", e.Span)
		}
	case KindOverwideSpan:
		fmt.Fprintf(&b, "track %d of %d", e.Index, e.TrackCount)
		if e.Span != "" {
			fmt.Fprintf(&b, " (span ``%s'')", e.Span)
		}
	case KindUnrecognizedBlock:
		fmt.Fprintf(&b, "``%s''", e.Block)
	case KindInvalidTagName:
		fmt.Fprintf(&b, "``%s''", e.Tag)
	case KindUnexpectedTagValue:
		fmt.Fprintf(&b, "%s for ``%s''", e.Value, e.Tag)
	default:
		b.WriteString(e.Value)
	}

	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	return b.String()
}

// Where describes the position of the failure in the control data, such
// as "block classic-tag-block, line 4". It is empty when nothing is known.
func (e *ControlError) Where() string {
	var parts []string
	if e.Block != "" {
		parts = append(parts, "block "+e.Block)
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	return strings.Join(parts, ", ")
}

// Is reports whether target is a *ControlError of the same kind. Only
// the kind takes part in the comparison, so the package-level sentinels
// match any error of their kind.
func (e *ControlError) Is(target error) bool {
	t, ok := target.(*ControlError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *ControlError in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var ce *ControlError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// UnsupportedFormatError is returned when a file is not a format naklo can tag.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// UnsupportedWriteError indicates write is not supported for this format.
type UnsupportedWriteError struct {
	Reason string
	Format Format
}

func (e *UnsupportedWriteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("write not supported for %s: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("write not supported for %s", e.Format)
}
