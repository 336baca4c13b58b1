package naklo

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinels(t *testing.T) {
	sentinels := map[ErrorKind]error{
		KindMalformedSpan:           ErrMalformedSpan,
		KindInvalidSpanToken:        ErrInvalidSpanToken,
		KindOverwideSpan:            ErrOverwideSpan,
		KindUnrecognizedBlock:       ErrUnrecognizedBlock,
		KindInvalidTagName:          ErrInvalidTagName,
		KindUnexpectedTagValue:      ErrUnexpectedTagValue,
		KindMalformedBlockStructure: ErrMalformedBlockStructure,
	}

	for kind, sentinel := range sentinels {
		err := fmt.Errorf("wrapped: %w", &ControlError{Kind: kind, Tag: "general"})
		for other, s := range sentinels {
			if got := errors.Is(err, s); got != (other == kind) {
				t.Errorf("errors.Is(%v, sentinel %v) = %v", kind, other, got)
			}
		}
		if KindOf(err) != kind {
			t.Errorf("KindOf() = %v, want %v", KindOf(err), kind)
		}
		if KindOf(sentinel) != kind {
			t.Errorf("sentinel %v has kind %v", kind, KindOf(sentinel))
		}
	}
}

func TestKindOf_NonControlError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf() = %v, want KindUnknown", got)
	}
}
