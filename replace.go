package textrope

import (
	"github.com/dshills/textrope/internal/invariants"
)

// Replace splices repl over the byte range [start, end) of c and updates
// sum in place.
//
// When the result fits under the profile's maximum the edit happens in
// place and nil is returned. Otherwise the content that no longer fits is
// redistributed into one or more extra chunks, returned in document order
// for the owning tree to insert as siblings immediately after c. In both
// cases c concatenated with the returned chunks reproduces
// before[:start] + repl + before[end:].
//
// start and end must be codepoint boundaries within c; violating that is a
// caller bug, checked only under the invariants build tag.
func (o LeafOps) Replace(c *Chunk, sum *Summary, start, end int, repl Slice) []Chunk {
	l := o.Limits
	if invariants.Enabled {
		if !l.valid() {
			panic("textrope: LeafOps with zero Limits")
		}
		if start < 0 || end < start || end > c.Len() {
			panic("textrope: replace range out of bounds")
		}
		c.assertBoundary(start)
		c.assertBoundary(end)
	}

	if c.Len()-(end-start)+repl.Len() <= l.MaxBytes() {
		o.replaceInPlace(c, sum, start, end, repl)
		return nil
	}

	// Overflow: carve the chunk into the kept prefix, the replaced range
	// (dropped), and the tail after the edit.
	last := c.splitOff(end)
	c.truncate(start)

	var first *Chunk

	if c.Len() < l.MinBytes() {
		// The kept prefix is undersized: pull bytes from the front of the
		// replacement, then from the tail if that was not enough.
		missing := l.MinBytes() - c.Len()

		takeFromRepl := repl.Len()
		if missing <= takeFromRepl {
			takeFromRepl = adjustSplitForward(repl.b, missing)
		}
		c.push(repl.Slice(0, takeFromRepl))
		repl = repl.Slice(takeFromRepl, repl.Len())

		if missing > takeFromRepl {
			missing -= takeFromRepl
			takeFromLast := adjustSplitForward(last.text, missing)
			c.push(last.Borrow().Slice(0, takeFromLast))
			last.dropPrefix(takeFromLast)
		}
	} else if repl.Len()+last.Len() < l.MinBytes() {
		// The leftover content is undersized. The kept prefix is provably
		// over the minimum here (prefix + repl + tail > max = 2*min and
		// repl + tail < min), so shift its tail into a new first extra
		// chunk.
		missing := l.MinBytes() - (repl.Len() + last.Len())
		keep := adjustSplitForward(c.text, c.Len()-missing)
		f := c.splitOff(keep)
		first = &f
	}

	// Too many pieces moved for incremental tracking to be worth it.
	*sum = c.Summarize()

	if invariants.Enabled {
		assertChunkBounds(l, c)
		total := repl.Len() + last.Len()
		if first != nil {
			total += first.Len()
		}
		// total can be zero when a boundary-rounded pull moved everything
		// into the kept chunk; no extras are produced then.
		if total > 0 && total < l.ChunkMin() {
			panic("textrope: extra leaf content undersized")
		}
	}

	pieces := make([]Slice, 0, 3)
	if first != nil {
		pieces = append(pieces, first.Borrow())
	}
	pieces = append(pieces, repl, last.Borrow())

	return redistribute(l, pieces...)
}

// replaceInPlace performs the non-overflowing edit, maintaining sum
// incrementally. The summary of the removed range is computed directly or
// by subtracting the surrounding ranges, whichever scans fewer bytes.
func (o LeafOps) replaceInPlace(c *Chunk, sum *Summary, start, end int, repl Slice) {
	if end > start {
		var removed Summary
		if end-start < c.Len()/2 {
			removed = c.Borrow().Slice(start, end).Summarize()
		} else {
			prefix := c.Borrow().Slice(0, start).Summarize()
			suffix := c.Borrow().Slice(end, c.Len()).Summarize()
			removed = sum.Sub(prefix.Add(suffix))
		}
		*sum = sum.Sub(removed).Add(repl.Summarize())
	} else {
		*sum = sum.Add(repl.Summarize())
	}
	c.replaceRange(start, end, repl)
}
