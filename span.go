package naklo

import "github.com/j39m/naklo/internal/span"

// Span is an alias to span.Span.
type Span = span.Span

// MaxSpanIndex is the largest position ResolveSpan will expand.
const MaxSpanIndex = 1 << 16

// ParseSpan parses a span specification: an integer, a string such as
// "3", "*" or "1 3 5-8 11", or a list of those.
func ParseSpan(spec any) (Span, error) {
	return span.Parse(spec)
}

// ResolveSpan parses spec and expands it for trackCount tracks. The
// upper bound is not checked against trackCount; ResolveSpan("1-2", 1)
// returns [1 2]. Positions above MaxSpanIndex are an OverwideSpan error.
func ResolveSpan(spec any, trackCount int) ([]int, error) {
	s, err := span.Parse(spec)
	if err != nil {
		return nil, err
	}
	for _, r := range s.Runs {
		if r.High > MaxSpanIndex {
			return nil, &ControlError{
				Kind:       KindOverwideSpan,
				Span:       s.String(),
				Index:      max(r.Low, MaxSpanIndex+1),
				TrackCount: trackCount,
				Reason:     "span too large to expand",
			}
		}
	}
	return s.Expand(trackCount), nil
}
