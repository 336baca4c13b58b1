package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestControlError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ControlError
		contains []string
	}{
		{
			name:     "overwide span",
			err:      &ControlError{Kind: KindOverwideSpan, Block: "classic-tag-block", Span: "1", Index: 1, TrackCount: 0},
			contains: []string{"overwide span:", "track 1 of 0", "span ``1''"},
		},
		{
			name:     "invalid tag name",
			err:      &ControlError{Kind: KindInvalidTagName, Tag: "general"},
			contains: []string{"invalid tag name: ``general''"},
		},
		{
			name:     "unrecognized block",
			err:      &ControlError{Kind: KindUnrecognizedBlock, Block: "unknowable-tag-block"},
			contains: []string{"unrecognized block identifier: ``unknowable-tag-block''"},
		},
		{
			name:     "unexpected tag value",
			err:      &ControlError{Kind: KindUnexpectedTagValue, Tag: "artist", Value: "mapping", Block: "inverted-tag-block", Line: 7},
			contains: []string{"unexpected tag value: mapping for ``artist''"},
		},
		{
			name:     "invalid span token",
			err:      &ControlError{Kind: KindInvalidSpanToken, Value: "5-3", Span: "1 5-3", Reason: "high must exceed low"},
			contains: []string{"``5-3''", "in span ``1 5-3''", "high must exceed low"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestControlError_Where(t *testing.T) {
	tests := []struct {
		err  *ControlError
		want string
	}{
		{&ControlError{Block: "title-block", Line: 3}, "block title-block, line 3"},
		{&ControlError{Block: "title-block"}, "block title-block"},
		{&ControlError{Line: 9}, "line 9"},
		{&ControlError{}, ""},
	}
	for _, tt := range tests {
		if got := tt.err.Where(); got != tt.want {
			t.Errorf("Where() = %q, want %q", got, tt.want)
		}
	}
}

func TestControlError_MessageHasNoLocation(t *testing.T) {
	err := &ControlError{Kind: KindInvalidTagName, Tag: "general", Block: "classic-tag-block", Line: 4}
	if got := err.Error(); got != "invalid tag name: ``general''" {
		t.Errorf("Error() = %q", got)
	}
}

func TestControlError_Is(t *testing.T) {
	err := fmt.Errorf("load control: %w", &ControlError{Kind: KindInvalidTagName, Tag: "general"})

	if !errors.Is(err, &ControlError{Kind: KindInvalidTagName}) {
		t.Error("errors.Is should match on kind")
	}
	if errors.Is(err, &ControlError{Kind: KindOverwideSpan}) {
		t.Error("errors.Is should not match a different kind")
	}
	if errors.Is(err, errors.New("invalid tag name")) {
		t.Error("errors.Is should not match a plain error")
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &ControlError{Kind: KindMalformedSpan})
	if got := KindOf(wrapped); got != KindMalformedSpan {
		t.Errorf("KindOf() = %v, want %v", got, KindMalformedSpan)
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want KindUnknown", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want KindUnknown", got)
	}
}

func TestErrorKind_String(t *testing.T) {
	if got := KindMalformedBlockStructure.String(); got != "malformed block structure" {
		t.Errorf("String() = %q", got)
	}
	if got := ErrorKind(200).String(); got != "ErrorKind(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestUnsupportedWriteError_Error(t *testing.T) {
	err := &UnsupportedWriteError{Format: FormatMP3, Reason: "no writer registered"}
	if got := err.Error(); got != "write not supported for MP3: no writer registered" {
		t.Errorf("Error() = %q", got)
	}
	err = &UnsupportedWriteError{Format: FormatUnknown}
	if got := err.Error(); got != "write not supported for Unknown" {
		t.Errorf("Error() = %q", got)
	}
}
