package textrope

import (
	"github.com/dshills/textrope/internal/invariants"
)

// Chunker is a forward-only iterator that carves a text buffer into
// codepoint-safe, appropriately sized cuts. It is used to bulk-load a
// document and to materialize the extra leaves of an overflowing replace.
//
// Every cut except possibly the final one is at least MinBytes long; the
// final cut may be smaller because the minimum size invariant only applies
// to chunks with a later sibling.
type Chunker struct {
	text    Slice
	limits  Limits
	yielded int
	cur     Slice
}

// NewChunker returns an iterator over text using the given profile.
func NewChunker(text Slice, l Limits) *Chunker {
	return &Chunker{text: text, limits: l}
}

// Next advances to the next cut. It returns false when the text is
// exhausted.
func (it *Chunker) Next() bool {
	remaining := it.text.Len() - it.yielded
	if remaining == 0 {
		return false
	}

	n := remaining
	if remaining > it.limits.MaxBytes() {
		n = adjustSplitForward(it.text.b[it.yielded:], cutLen(it.limits, remaining))
	} else if invariants.Enabled && it.yielded > 0 && remaining < it.limits.ChunkMin() {
		panic("textrope: undersized non-initial cut")
	}

	it.cur = it.text.Slice(it.yielded, it.yielded+n)
	it.yielded += n
	return true
}

// Chunk returns the cut produced by the last call to Next. The view
// borrows from the iterator's source text.
func (it *Chunker) Chunk() Slice {
	return it.cur
}

// SizeHint returns lower and upper bounds on the number of cuts left.
func (it *Chunker) SizeHint() (int, int) {
	lo := (it.text.Len() - it.yielded) / it.limits.MaxBytes()
	return lo, lo + 1
}

// cutLen returns the byte length of the next chunk to carve from a run of
// remaining bytes: up to MaxBytes, shrunk when taking the full amount
// would strand a remainder below MinBytes.
func cutLen(l Limits, remaining int) int {
	if remaining <= l.MaxBytes() {
		return remaining
	}
	n := l.MaxBytes()
	if rest := remaining - n; rest < l.MinBytes() {
		n -= l.MinBytes() - rest
	}
	return n
}

// redistribute packages a sequence of text pieces into owned chunks that
// each satisfy the size bounds, reading across piece boundaries. Piece
// edges are codepoint boundaries already, so only cuts inside a piece need
// forward adjustment.
func redistribute(l Limits, pieces ...Slice) []Chunk {
	total := 0
	for _, p := range pieces {
		total += p.Len()
	}
	if total == 0 {
		return nil
	}

	out := make([]Chunk, 0, total/l.MaxBytes()+1)

	pi, off := 0, 0
	for remaining := total; remaining > 0; {
		n := cutLen(l, remaining)
		c := NewChunk(l)

		for filled := 0; filled < n; {
			p := pieces[pi]
			avail := p.Len() - off
			if avail == 0 {
				pi++
				off = 0
				continue
			}

			take := n - filled
			if take >= avail {
				take = avail
			} else {
				take = adjustSplitForward(p.b[off:], take)
			}

			c.push(p.Slice(off, off+take))
			off += take
			filled += take
		}

		if invariants.Enabled {
			assertChunkBounds(l, &c)
		}

		remaining -= c.Len()
		out = append(out, c)
	}

	return out
}
