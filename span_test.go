package naklo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j39m/naklo"
)

func TestResolveSpan(t *testing.T) {
	tests := []struct {
		spec       any
		trackCount int
		want       []int
	}{
		{"1-5", 5, []int{1, 2, 3, 4, 5}},
		{"1 3 5-8 11", 11, []int{1, 3, 5, 6, 7, 8, 11}},
		{"1-2", 1, []int{1, 2}},
		{"*", 3, []int{1, 2, 3}},
		{7, 3, []int{7}},
		{[]any{"1-2", 4}, 4, []int{1, 2, 4}},
	}
	for _, tt := range tests {
		got, err := naklo.ResolveSpan(tt.spec, tt.trackCount)
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.want, got, tt.spec)
	}
}

func TestResolveSpan_Idempotent(t *testing.T) {
	first, err := naklo.ResolveSpan("1 3 5-8 11", 11)
	require.NoError(t, err)
	second, err := naklo.ResolveSpan("1 3 5-8 11", 11)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveSpan_Errors(t *testing.T) {
	_, err := naklo.ResolveSpan("1-2-3", 5)
	assert.ErrorIs(t, err, naklo.ErrInvalidSpanToken)

	_, err = naklo.ResolveSpan(map[string]int{"a": 1}, 5)
	assert.ErrorIs(t, err, naklo.ErrMalformedSpan)
}

func TestResolveSpan_TooLarge(t *testing.T) {
	for _, spec := range []string{"1-9223372036854775807", "3 1-100000000000"} {
		got, err := naklo.ResolveSpan(spec, 4)
		require.ErrorIs(t, err, naklo.ErrOverwideSpan, spec)
		assert.Nil(t, got)

		var ce *naklo.ControlError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, naklo.MaxSpanIndex+1, ce.Index)
	}

	got, err := naklo.ResolveSpan("65530-65536", 0)
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestResolveSpan_NegativeTrackCount(t *testing.T) {
	got, err := naklo.ResolveSpan("*", -1)
	require.NoError(t, err)
	assert.Empty(t, got)
}
