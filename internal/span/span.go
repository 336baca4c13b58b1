// Package span parses naklo span specifications.
//
// A span names a set of 1-based track positions. It is written as a
// bare integer ("3"), a wildcard ("*"), or whitespace-separated tokens
// where each token is an integer or an inclusive range ("1 3 5-8 11").
package span

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/j39m/naklo/internal/types"
)

// Wildcard selects every track.
const Wildcard = "*"

// Run is an inclusive range of positions. A single index is a Run with
// Low equal to High.
type Run struct {
	Low, High int
}

// Len returns the number of positions in r.
func (r Run) Len() int {
	return r.High - r.Low + 1
}

func (r Run) String() string {
	if r.Low == r.High {
		return strconv.Itoa(r.Low)
	}
	return strconv.Itoa(r.Low) + "-" + strconv.Itoa(r.High)
}

// Span is a parsed span specification. The zero value is an empty,
// non-wildcard span.
//
// Ranges are kept as runs and only expanded by Expand, so a span naming
// a huge range costs nothing until it is bounds-checked.
type Span struct {
	// Runs are the positions in authored order, duplicates kept.
	// Nil when All is set.
	Runs []Run
	// All marks the wildcard span.
	All bool
}

// Of returns the span of the given single indices.
func Of(indices ...int) Span {
	runs := make([]Run, len(indices))
	for i, n := range indices {
		runs[i] = Run{n, n}
	}
	return Span{Runs: runs}
}

// IsAll reports whether s is the wildcard span.
func (s Span) IsAll() bool {
	return s.All
}

// Outside returns the first position of s, in authored order, that lies
// outside [1, limit]. The wildcard is never outside.
func (s Span) Outside(limit int) (int, bool) {
	if s.All {
		return 0, false
	}
	for _, r := range s.Runs {
		switch {
		case r.Low < 1:
			return r.Low, true
		case r.High > limit:
			return max(r.Low, limit+1), true
		}
	}
	return 0, false
}

// Expand returns the concrete positions of s for a collection of
// trackCount tracks. The wildcard yields nothing for trackCount <= 0.
//
// Runs are expanded as written with no bound check, so callers must
// check Outside first when the span comes from untrusted input.
func (s Span) Expand(trackCount int) []int {
	if s.All {
		if trackCount <= 0 {
			return nil
		}
		out := make([]int, trackCount)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}

	var out []int
	for _, r := range s.Runs {
		for n := r.Low; n <= r.High; n++ {
			out = append(out, n)
		}
	}
	return out
}

func (s Span) String() string {
	if s.All {
		return Wildcard
	}
	parts := make([]string, len(s.Runs))
	for i, r := range s.Runs {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// Parse resolves a span specification. spec may be any integer type, a
// string, or a slice of either; anything else is a MalformedSpan error.
func Parse(spec any) (Span, error) {
	switch v := spec.(type) {
	case int:
		return Of(v), nil
	case int8:
		return Of(int(v)), nil
	case int16:
		return Of(int(v)), nil
	case int32:
		return Of(int(v)), nil
	case int64:
		return Of(int(v)), nil
	case uint:
		return unsigned(uint64(v))
	case uint8:
		return Of(int(v)), nil
	case uint16:
		return Of(int(v)), nil
	case uint32:
		return unsigned(uint64(v))
	case uint64:
		return unsigned(v)
	case string:
		return parseString(v)
	case []int:
		items := make([]any, len(v))
		for i, n := range v {
			items[i] = n
		}
		return parseList(spec, items)
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return parseList(spec, items)
	case []any:
		return parseList(spec, v)
	default:
		return Span{}, malformed(spec, "")
	}
}

func unsigned(v uint64) (Span, error) {
	if v > math.MaxInt {
		return Span{}, invalidToken(strconv.FormatUint(v, 10), "index out of range")
	}
	return Of(int(v)), nil
}

func parseString(spec string) (Span, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return Span{}, malformed(spec, "empty span")
	}
	if trimmed == Wildcard {
		return Span{All: true}, nil
	}

	var runs []Run
	for _, token := range strings.Fields(trimmed) {
		r, err := parseToken(token)
		if err != nil {
			err.Span = spec
			return Span{}, err
		}
		runs = append(runs, r)
	}
	return Span{Runs: runs}, nil
}

// parseToken reads a single integer or low-high token.
func parseToken(token string) (Run, *types.ControlError) {
	n, err := strconv.Atoi(token)
	if err == nil {
		return Run{n, n}, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return Run{}, invalidToken(token, "index out of range")
	}

	sides := strings.Split(token, "-")
	if len(sides) != 2 {
		return Run{}, invalidToken(token, "expected a single low-high range")
	}
	low, err := bound(sides[0])
	if err != nil {
		return Run{}, invalidToken(token, err.Error())
	}
	high, err := bound(sides[1])
	if err != nil {
		return Run{}, invalidToken(token, err.Error())
	}
	if low < 1 {
		return Run{}, invalidToken(token, "range must start at 1 or above")
	}
	if high <= low {
		return Run{}, invalidToken(token, "high must exceed low")
	}
	return Run{low, high}, nil
}

func bound(side string) (int, error) {
	n, err := strconv.Atoi(side)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, errors.New("index out of range")
	case err != nil:
		return 0, errors.New("range bounds must be integers")
	}
	return n, nil
}

func parseList(spec any, items []any) (Span, error) {
	if len(items) == 0 {
		return Span{}, malformed(spec, "empty span")
	}

	var out Span
	for _, item := range items {
		switch item.(type) {
		case []any, []int, []string:
			return Span{}, malformed(spec, "nested list")
		}
		s, err := Parse(item)
		if err != nil {
			return Span{}, err
		}
		if s.All {
			out.All = true
			continue
		}
		out.Runs = append(out.Runs, s.Runs...)
	}
	if out.All {
		out.Runs = nil
	}
	return out, nil
}

func malformed(spec any, reason string) *types.ControlError {
	return &types.ControlError{
		Kind:   types.KindMalformedSpan,
		Value:  fmt.Sprintf("%v", spec),
		Reason: reason,
	}
}

func invalidToken(token, reason string) *types.ControlError {
	return &types.ControlError{
		Kind:   types.KindInvalidSpanToken,
		Value:  token,
		Reason: reason,
	}
}
