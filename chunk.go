package textrope

import (
	"github.com/dshills/textrope/internal/invariants"
)

// Chunk is an exclusively owned, growable UTF-8 buffer: the payload of a
// single leaf in the owning tree. Length stays in [ChunkMin, ChunkMax]
// except transiently inside a structural operation, and no operation ever
// splits a codepoint.
//
// Capacity is pre-reserved on construction so normal edits never
// reallocate. The summary for a chunk is carried alongside it by the owning
// tree, not embedded here; Summarize rederives it on demand.
type Chunk struct {
	text []byte
}

// NewChunk returns an empty chunk with capacity reserved per the profile.
func NewChunk(l Limits) Chunk {
	return Chunk{text: make([]byte, 0, l.ChunkMax())}
}

// newChunkWithCap reserves at least n bytes, or the profile's hard cap if
// that is larger.
func newChunkWithCap(l Limits, n int) Chunk {
	if m := l.ChunkMax(); m > n {
		n = m
	}
	return Chunk{text: make([]byte, 0, n)}
}

// Len returns the chunk's length in bytes.
func (c *Chunk) Len() int {
	return len(c.text)
}

// IsEmpty returns true if the chunk contains no text.
func (c *Chunk) IsEmpty() bool {
	return len(c.text) == 0
}

// String returns a copy of the chunk's text.
func (c *Chunk) String() string {
	return string(c.text)
}

// Borrow returns a zero-copy view of the chunk's text. The view is
// invalidated by any subsequent mutation of the chunk.
func (c *Chunk) Borrow() Slice {
	return Slice{b: c.text}
}

// Summarize computes the chunk's metrics with a single linear scan.
func (c *Chunk) Summarize() Summary {
	return Summary{Bytes: len(c.text), LineBreaks: countBreaks(c.text)}
}

// assertBoundary aborts instrumented builds when offset is not a codepoint
// boundary of the chunk.
func (c *Chunk) assertBoundary(offset int) {
	if invariants.Enabled && !isCharBoundary(c.text, offset) {
		panic("textrope: chunk offset splits a codepoint")
	}
}

// splitOff removes and returns everything after offset. The remainder takes
// ownership of its own storage; the receiver keeps its capacity. offset
// must be a codepoint boundary.
func (c *Chunk) splitOff(offset int) Chunk {
	c.assertBoundary(offset)
	rest := make([]byte, len(c.text)-offset)
	copy(rest, c.text[offset:])
	c.text = c.text[:offset]
	return Chunk{text: rest}
}

// truncate drops all bytes after offset, keeping capacity. offset must be a
// codepoint boundary.
func (c *Chunk) truncate(offset int) {
	c.assertBoundary(offset)
	c.text = c.text[:offset]
}

// dropPrefix removes the first n bytes, keeping capacity. n must be a
// codepoint boundary.
func (c *Chunk) dropPrefix(n int) {
	c.assertBoundary(n)
	kept := copy(c.text, c.text[n:])
	c.text = c.text[:kept]
}

// push appends the viewed bytes. The view must not alias the chunk's own
// buffer.
func (c *Chunk) push(s Slice) {
	c.text = append(c.text, s.b...)
}

// replaceRange splices s over the byte range [start, end). Both offsets
// must be codepoint boundaries. When the result fits in the existing
// capacity the splice is done in place.
func (c *Chunk) replaceRange(start, end int, s Slice) {
	c.assertBoundary(start)
	c.assertBoundary(end)
	if invariants.Enabled && (start < 0 || end < start || end > len(c.text)) {
		panic("textrope: replace range out of bounds")
	}

	oldLen := len(c.text)
	newLen := oldLen - (end - start) + len(s.b)

	if newLen <= cap(c.text) {
		c.text = c.text[:newLen]
		copy(c.text[start+len(s.b):], c.text[end:oldLen])
		copy(c.text[start:], s.b)
		return
	}

	out := make([]byte, 0, newLen)
	out = append(out, c.text[:start]...)
	out = append(out, s.b...)
	out = append(out, c.text[end:oldLen]...)
	c.text = out
}
