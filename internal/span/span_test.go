package span

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/j39m/naklo/internal/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec any
		want []int
	}{
		{"bare int", 3, []int{3}},
		{"bare int64", int64(7), []int{7}},
		{"bare uint8", uint8(2), []int{2}},
		{"numeric string", "4", []int{4}},
		{"numeric string padded", "  12 ", []int{12}},
		{"range", "1-5", []int{1, 2, 3, 4, 5}},
		{"mixed tokens", "1 3 5-8 11", []int{1, 3, 5, 6, 7, 8, 11}},
		{"two singles", "7 8", []int{7, 8}},
		{"tabs and newlines", "1\t2\n3", []int{1, 2, 3}},
		{"duplicates kept", "1-3 2", []int{1, 2, 3, 2}},
		{"negative single", "-3", []int{-3}},
		{"zero single", 0, []int{0}},
		{"int list", []int{2, 4}, []int{2, 4}},
		{"string list", []string{"1-2", "5"}, []int{1, 2, 5}},
		{"any list", []any{1, "3-4"}, []int{1, 3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.spec)
			if err != nil {
				t.Fatalf("Parse(%v) error = %v", tc.spec, err)
			}
			if got.All {
				t.Fatalf("Parse(%v) = wildcard, want %v", tc.spec, tc.want)
			}
			if got := got.Expand(0); !slices.Equal(got, tc.want) {
				t.Errorf("Parse(%v) = %v, want %v", tc.spec, got, tc.want)
			}
		})
	}
}

func TestParse_Wildcard(t *testing.T) {
	for _, spec := range []any{"*", " * ", []any{1, "*"}, []string{"*"}} {
		got, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%v) error = %v", spec, err)
		}
		if !got.IsAll() {
			t.Errorf("Parse(%v) = %v, want wildcard", spec, got)
		}
		if got.Runs != nil {
			t.Errorf("Parse(%v).Runs = %v, want nil", spec, got.Runs)
		}
	}
}

func TestParse_InvalidToken(t *testing.T) {
	tests := []struct {
		spec  string
		token string
	}{
		{"not-a-span", "not-a-span"},
		{"abc", "abc"},
		{"5-5", "5-5"},
		{"5-3", "5-3"},
		{"0-3", "0-3"},
		{"1 2-", "2-"},
		{"1-2-3", "1-2-3"},
		{"1 x-4 6", "x-4"},
		{"* 2", "*"},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			_, err := Parse(tc.spec)
			var ce *types.ControlError
			if !errors.As(err, &ce) {
				t.Fatalf("Parse(%q) error = %v, want *ControlError", tc.spec, err)
			}
			if ce.Kind != types.KindInvalidSpanToken {
				t.Errorf("Kind = %v, want %v", ce.Kind, types.KindInvalidSpanToken)
			}
			if ce.Value != tc.token {
				t.Errorf("Value = %q, want %q", ce.Value, tc.token)
			}
			if ce.Span != tc.spec {
				t.Errorf("Span = %q, want %q", ce.Span, tc.spec)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		spec any
	}{
		{"nil", nil},
		{"float", 1.5},
		{"bool", true},
		{"map", map[string]any{"1": "x"}},
		{"empty string", ""},
		{"blank string", "   "},
		{"empty list", []any{}},
		{"nested list", []any{[]any{1}}},
		{"list with map", []any{1, map[string]any{}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.spec)
			if types.KindOf(err) != types.KindMalformedSpan {
				t.Errorf("Parse(%v) error = %v, want malformed span", tc.spec, err)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	first, err := Parse("1 3 5-8 11")
	if err != nil {
		t.Fatal(err)
	}
	first.Runs[0].Low = 99

	second, err := Parse("1 3 5-8 11")
	if err != nil {
		t.Fatal(err)
	}
	if got := second.Expand(0); !slices.Equal(got, []int{1, 3, 5, 6, 7, 8, 11}) {
		t.Errorf("second Parse() = %v, mutation leaked between calls", got)
	}
}

func TestSpan_Expand(t *testing.T) {
	all := Span{All: true}
	if got := all.Expand(4); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("Expand(4) = %v", got)
	}
	for _, n := range []int{0, -1} {
		if got := all.Expand(n); got != nil {
			t.Errorf("Expand(%d) = %v, want nil", n, got)
		}
	}

	s := Span{Runs: []Run{{1, 2}}}
	if got := s.Expand(1); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Expand(1) = %v, want [1 2] (no bound check)", got)
	}
}

func TestParse_HugeRangeStaysUnexpanded(t *testing.T) {
	for _, spec := range []string{"1-9223372036854775807", "1-100000000000"} {
		s, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", spec, err)
		}
		if len(s.Runs) != 1 || s.Runs[0].Low != 1 {
			t.Errorf("Parse(%q).Runs = %v, want one run from 1", spec, s.Runs)
		}
		if i, outside := s.Outside(2); !outside || i != 3 {
			t.Errorf("Outside(2) = %d, %v, want 3, true", i, outside)
		}
	}
}

func TestParse_IndexOutOfRange(t *testing.T) {
	for _, spec := range []any{"99999999999999999999", "1-99999999999999999999", uint64(math.MaxUint64)} {
		_, err := Parse(spec)
		var ce *types.ControlError
		if !errors.As(err, &ce) {
			t.Fatalf("Parse(%v) error = %v, want *ControlError", spec, err)
		}
		if ce.Kind != types.KindInvalidSpanToken || ce.Reason != "index out of range" {
			t.Errorf("Parse(%v) = %v, want invalid span token: index out of range", spec, err)
		}
	}
}

func TestSpan_Outside(t *testing.T) {
	tests := []struct {
		spec    string
		limit   int
		want    int
		outside bool
	}{
		{"1-5", 5, 0, false},
		{"1-5", 4, 5, true},
		{"3 8-10", 4, 8, true},
		{"0", 4, 0, true},
		{"2 -1", 4, -1, true},
		{"1", 0, 1, true},
		{"*", 0, 0, false},
	}

	for _, tc := range tests {
		s, err := Parse(tc.spec)
		if err != nil {
			t.Fatal(err)
		}
		got, outside := s.Outside(tc.limit)
		if got != tc.want || outside != tc.outside {
			t.Errorf("Parse(%q).Outside(%d) = %d, %v, want %d, %v", tc.spec, tc.limit, got, outside, tc.want, tc.outside)
		}
	}
}

func TestSpan_String(t *testing.T) {
	if got := (Span{All: true}).String(); got != "*" {
		t.Errorf("String() = %q", got)
	}
	if got := Of(1, 3, 4).String(); got != "1 3 4" {
		t.Errorf("String() = %q", got)
	}
	if got := (Span{Runs: []Run{{1, 1}, {5, 8}}}).String(); got != "1 5-8" {
		t.Errorf("String() = %q", got)
	}
}
