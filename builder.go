package textrope

import (
	"io"
	"unicode/utf8"

	"github.com/dshills/textrope/internal/invariants"
)

// Builder accumulates text and emits it as a sequence of compliant chunks,
// the bulk-load path for the owning tree. Full chunks are carved eagerly
// while writing so the pending buffer stays small on large inputs.
type Builder struct {
	limits   Limits
	chunks   []Chunk
	pending  []byte
	totalLen int
}

// NewBuilder creates a builder for the given profile.
func NewBuilder(l Limits) *Builder {
	return &Builder{
		limits: l,
		chunks: make([]Chunk, 0, 16),
	}
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) {
	if len(s) == 0 {
		return
	}
	b.totalLen += len(s)
	b.pending = append(b.pending, s...)
	b.carve()
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	b.totalLen += len(p)
	b.pending = append(b.pending, p...)
	b.carve()
	return len(p), nil
}

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	b.totalLen++
	b.pending = append(b.pending, c)
	b.carve()
	return nil
}

// WriteRune appends a single rune.
func (b *Builder) WriteRune(r rune) (int, error) {
	before := len(b.pending)
	b.pending = utf8.AppendRune(b.pending, r)
	n := len(b.pending) - before
	b.totalLen += n
	b.carve()
	return n, nil
}

// ReadFrom implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var total int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			b.totalLen += n
			b.pending = append(b.pending, buf[:n]...)
			b.carve()
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// carve emits max-sized chunks while at least two chunks' worth of text is
// pending. The remainder after such a cut stays at or above MaxBytes-3, so
// a non-final chunk below the hard minimum can never be stranded.
func (b *Builder) carve() {
	for len(b.pending) >= 2*b.limits.MaxBytes() {
		n := adjustSplitForward(b.pending, b.limits.MaxBytes())
		c := NewChunk(b.limits)
		c.push(Slice{b: b.pending[:n]})
		b.chunks = append(b.chunks, c)

		kept := copy(b.pending, b.pending[n:])
		b.pending = b.pending[:kept]
	}
}

// Len returns the total number of bytes written.
func (b *Builder) Len() int {
	return b.totalLen
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.chunks = b.chunks[:0]
	b.pending = b.pending[:0]
	b.totalLen = 0
}

// Build returns the accumulated text as chunks and resets the builder.
// Every chunk except possibly the last satisfies the minimum size bound.
// The written bytes must form valid UTF-8 by the time Build is called.
func (b *Builder) Build() []Chunk {
	if invariants.Enabled && !utf8.Valid(b.pending) {
		panic("textrope: builder holds invalid UTF-8")
	}

	out := b.chunks
	it := NewChunker(Slice{b: b.pending}, b.limits)
	for it.Next() {
		out = append(out, it.Chunk().ToChunk(b.limits))
	}

	b.chunks = nil
	b.Reset()
	return out
}
