package textrope

import (
	"unicode/utf8"

	"github.com/dshills/textrope/internal/invariants"
)

// Slice is a borrowed, read-only view over a contiguous run of valid UTF-8
// bytes. It carries no ownership: the view is only valid while the buffer
// it borrows from is alive and unmodified. Slices are constructed through
// validating factories (NewSlice, SliceString) or by sub-slicing an
// existing view at codepoint boundaries, never by reinterpreting arbitrary
// memory.
type Slice struct {
	b []byte
}

// NewSlice borrows b as a text view. b must be valid UTF-8 and must not be
// modified while the view is in use; validity is checked only under the
// invariants build tag.
func NewSlice(b []byte) Slice {
	if invariants.Enabled && !utf8.Valid(b) {
		panic("textrope: slice bytes are not valid UTF-8")
	}
	return Slice{b: b}
}

// SliceString copies s into a new text view. Go strings are not guaranteed
// to hold UTF-8, so the same validity contract as NewSlice applies.
func SliceString(s string) Slice {
	return NewSlice([]byte(s))
}

// Len returns the view's length in bytes.
func (s Slice) Len() int {
	return len(s.b)
}

// IsEmpty returns true if the view contains no bytes.
func (s Slice) IsEmpty() bool {
	return len(s.b) == 0
}

// String returns a copy of the viewed text.
func (s Slice) String() string {
	return string(s.b)
}

// Bytes returns the underlying bytes. The returned slice must not be
// modified.
func (s Slice) Bytes() []byte {
	return s.b
}

// Slice returns the sub-view [start, end). Both offsets must lie on
// codepoint boundaries; checked only under the invariants build tag.
func (s Slice) Slice(start, end int) Slice {
	if invariants.Enabled {
		if start < 0 || end < start || end > len(s.b) {
			panic("textrope: slice range out of bounds")
		}
		if !isCharBoundary(s.b, start) || !isCharBoundary(s.b, end) {
			panic("textrope: slice range splits a codepoint")
		}
	}
	return Slice{b: s.b[start:end]}
}

// Summarize computes the view's metrics with a single linear scan.
func (s Slice) Summarize() Summary {
	return Summary{Bytes: len(s.b), LineBreaks: countBreaks(s.b)}
}

// ToChunk copies the view into an owned chunk with capacity reserved per
// the given profile.
func (s Slice) ToChunk(l Limits) Chunk {
	c := newChunkWithCap(l, len(s.b))
	c.text = append(c.text, s.b...)
	return c
}
