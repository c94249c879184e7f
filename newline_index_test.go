package textrope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newlineIndexOf(s string) NewlineIndex {
	return ComputeNewlineIndex(SliceString(s))
}

func TestNewlineIndexEmpty(t *testing.T) {
	idx := newlineIndexOf("")
	assert.Equal(t, 0, idx.Count())
	assert.Equal(t, -1, idx.Position(0))
}

func TestNewlineIndexNoNewlines(t *testing.T) {
	idx := newlineIndexOf("hello world")
	assert.Equal(t, 0, idx.Count())
	assert.Equal(t, -1, idx.LastNewlinePosition())
}

func TestNewlineIndexInlinePositions(t *testing.T) {
	idx := newlineIndexOf("a\nb\nc\nd\ne")

	assert.Equal(t, 4, idx.Count())
	for i, exp := range []int{1, 3, 5, 7} {
		assert.Equal(t, exp, idx.Position(i), "position %d", i)
	}
	assert.Equal(t, -1, idx.Position(4))
	assert.Equal(t, -1, idx.Position(-1))
}

func TestNewlineIndexSpillsPastInline(t *testing.T) {
	// More than maxInlineNewlines (4) forces the heap slice.
	idx := newlineIndexOf("a\nb\nc\nd\ne\nf\ng")

	assert.Equal(t, 6, idx.Count())
	for i, exp := range []int{1, 3, 5, 7, 9, 11} {
		assert.Equal(t, exp, idx.Position(i), "position %d", i)
	}
}

func TestNewlineIndexFindNthNewline(t *testing.T) {
	idx := newlineIndexOf("abc\ndef\nghi\njkl")

	tests := []struct {
		n        int
		expected int
	}{
		{0, -1}, // 1-indexed
		{1, 3},
		{2, 7},
		{3, 11},
		{4, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, idx.FindNthNewline(tt.n), "n=%d", tt.n)
	}
}

func TestNewlineIndexSearchLine(t *testing.T) {
	idx := newlineIndexOf("abc\ndef\nghi")

	tests := []struct {
		line     int
		expected int
	}{
		{0, 0},
		{1, 4},
		{2, 8},
		{3, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, idx.SearchLine(tt.line), "line=%d", tt.line)
	}
}

func TestNewlineIndexBeforeAfter(t *testing.T) {
	idx := newlineIndexOf("abc\ndef\nghi")

	before := []struct {
		offset   int
		expected int
	}{
		{0, -1}, {3, -1}, {4, 3}, {7, 3}, {8, 7}, {100, 7},
	}
	for _, tt := range before {
		assert.Equal(t, tt.expected, idx.NewlineBefore(tt.offset), "before %d", tt.offset)
	}

	after := []struct {
		offset   int
		expected int
	}{
		{0, 3}, {3, 3}, {4, 7}, {7, 7}, {8, -1}, {100, -1},
	}
	for _, tt := range after {
		assert.Equal(t, tt.expected, idx.NewlineAfter(tt.offset), "after %d", tt.offset)
	}
}

// Binary search kicks in above 8 entries and must agree with the linear
// scan results.
func TestNewlineIndexBinarySearchPath(t *testing.T) {
	idx := newlineIndexOf("a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl")

	assert.Equal(t, 11, idx.Count())
	assert.Equal(t, 21, idx.NewlineBefore(100))
	assert.Equal(t, -1, idx.NewlineBefore(0))
	assert.Equal(t, 9, idx.NewlineBefore(11))
	assert.Equal(t, 1, idx.NewlineAfter(0))
	assert.Equal(t, 11, idx.NewlineAfter(10))
	assert.Equal(t, 21, idx.NewlineAfter(20))
	assert.Equal(t, -1, idx.NewlineAfter(22))
}

func TestNewlineIndexContains(t *testing.T) {
	idx := newlineIndexOf("a\nb\nc\nd")

	assert.True(t, idx.Contains(0))
	assert.True(t, idx.Contains(3))
	assert.False(t, idx.Contains(4))
}

func TestNewlineIndexMatchesSummary(t *testing.T) {
	for _, s := range []string{"", "abc", "a\nb", "x\n\n\ny\n", "é\nö\n"} {
		idx := newlineIndexOf(s)
		sum := SliceString(s).Summarize()
		assert.Equal(t, sum.LineBreaks, idx.Count(), "text %q", s)
	}
}
