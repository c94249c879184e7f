package textrope

import (
	"github.com/dshills/textrope/internal/invariants"
)

// BalanceSlices restores the two-sided minimum size invariant for a pair of
// adjacent leaves in one pass. Policy, in priority order: keep both sides
// when they already meet the minimum, merge when the pair fits in a single
// chunk, otherwise shift bytes toward the undersized side. A shift whose
// rounded cut would drain the donor side merges instead of producing an
// empty chunk.
//
// The returned right chunk is nil only when the sides were merged; its
// summary is zero in that case.
func (o LeafOps) BalanceSlices(left Slice, leftSum Summary, right Slice, rightSum Summary) (Chunk, Summary, *Chunk, Summary) {
	l := o.Limits
	if invariants.Enabled && !l.valid() {
		panic("textrope: LeafOps with zero Limits")
	}

	switch {
	case left.Len() >= l.MinBytes() && right.Len() >= l.MinBytes():
		rc := right.ToChunk(l)
		return left.ToChunk(l), leftSum, &rc, rightSum

	case left.Len()+right.Len() <= l.MaxBytes():
		merged := left.ToChunk(l)
		merged.push(right)
		return merged, leftSum.Add(rightSum), nil, Summary{}

	case left.Len() < l.MinBytes():
		if invariants.Enabled && right.Len() <= l.MinBytes() {
			panic("textrope: both balance sides undersized with combined overflow")
		}
		return o.balanceLeftWithRight(left, leftSum, right, rightSum)

	default:
		if invariants.Enabled && (right.Len() >= l.MinBytes() || left.Len() <= l.MinBytes()) {
			panic("textrope: unexpected balance case")
		}
		return o.balanceRightWithLeft(left, leftSum, right, rightSum)
	}
}

// balanceLeftWithRight grows an undersized left side with bytes pulled from
// the front of the right side.
func (o LeafOps) balanceLeftWithRight(left Slice, leftSum Summary, right Slice, rightSum Summary) (Chunk, Summary, *Chunk, Summary) {
	l := o.Limits

	missing := l.MinBytes() - left.Len()
	take := adjustSplitForward(right.b, missing)

	if take == right.Len() {
		// Rounding forward drained the whole right side. That bounds the
		// combined length by MaxBytes+2, so the pair fits one chunk.
		merged := left.ToChunk(l)
		merged.push(right)
		return merged, leftSum.Add(rightSum), nil, Summary{}
	}

	moved := right.Slice(0, take).Summarize()

	newLeft := left.ToChunk(l)
	newLeft.push(right.Slice(0, take))

	newRight := right.Slice(take, right.Len()).ToChunk(l)

	if invariants.Enabled {
		assertChunkBounds(l, &newLeft)
		assertChunkBounds(l, &newRight)
	}

	return newLeft, leftSum.Add(moved), &newRight, rightSum.Sub(moved)
}

// balanceRightWithLeft grows an undersized right side with bytes pulled
// from the tail of the left side.
func (o LeafOps) balanceRightWithLeft(left Slice, leftSum Summary, right Slice, rightSum Summary) (Chunk, Summary, *Chunk, Summary) {
	l := o.Limits

	missing := l.MinBytes() - right.Len()
	keep := adjustSplitForward(left.b, left.Len()-missing)

	if keep == left.Len() {
		// Rounding forward moved nothing; cut at the start of the trailing
		// codepoint instead. The cut stays within the slack on both sides.
		keep = adjustSplitBackward(left.b, left.Len()-missing)
		if keep == 0 {
			// The left side is a single codepoint, so the pair fits one
			// chunk.
			merged := left.ToChunk(l)
			merged.push(right)
			return merged, leftSum.Add(rightSum), nil, Summary{}
		}
	}

	moved := left.Slice(keep, left.Len()).Summarize()

	newLeft := left.Slice(0, keep).ToChunk(l)

	newRight := newChunkWithCap(l, left.Len()-keep+right.Len())
	newRight.push(left.Slice(keep, left.Len()))
	newRight.push(right)

	if invariants.Enabled {
		assertChunkBounds(l, &newLeft)
		assertChunkBounds(l, &newRight)
	}

	return newLeft, leftSum.Sub(moved), &newRight, rightSum.Add(moved)
}

// assertChunkBounds aborts instrumented builds when a produced chunk falls
// outside the profile's hard bounds.
func assertChunkBounds(l Limits, c *Chunk) {
	if c.Len() < l.ChunkMin() || c.Len() > l.ChunkMax() {
		panic("textrope: chunk size out of bounds")
	}
}
