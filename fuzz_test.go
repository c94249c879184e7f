package textrope

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzReplace checks the replace round-trip: the kept chunk concatenated
// with the extra leaves must reproduce the edited text exactly, the tracked
// summary must stay exact, and every produced chunk must satisfy the size
// bounds.
func FuzzReplace(f *testing.F) {
	f.Add("abcd", 1, 3, "XY")
	f.Add("abcd", 2, 2, "0123456789")
	f.Add("", 0, 0, "hello")
	f.Add("héllo", 1, 3, "wörld")
	f.Add("a\nb\nc", 0, 3, "\n\n")
	f.Add("abcdefg", 0, 0, "")
	f.Add("日本語テスト", 3, 9, "x")

	f.Fuzz(func(t *testing.T, initial string, start, end int, repl string) {
		if !utf8.ValidString(initial) || !utf8.ValidString(repl) {
			return
		}

		// The input chunk must honor the hard size cap; oversized chunks
		// violate the caller contract.
		if max := NewLimits(4).ChunkMax(); len(initial) > max {
			initial = initial[:adjustSplitBackward([]byte(initial), max)]
		}

		// Clamp the range to valid codepoint boundaries.
		if start < 0 {
			start = 0
		}
		if start > len(initial) {
			start = len(initial)
		}
		if end < start {
			end = start
		}
		if end > len(initial) {
			end = len(initial)
		}
		start = adjustSplitForward([]byte(initial), start)
		end = adjustSplitForward([]byte(initial), end)
		if end < start {
			end = start
		}

		ops := NewLeafOps(NewLimits(4))
		c := SliceString(initial).ToChunk(ops.Limits)
		sum := c.Summarize()

		extras := ops.Replace(&c, &sum, start, end, SliceString(repl))

		expected := initial[:start] + repl + initial[end:]

		var sb strings.Builder
		sb.WriteString(c.String())
		for i := range extras {
			sb.WriteString(extras[i].String())
		}
		if got := sb.String(); got != expected {
			t.Fatalf("round-trip mismatch: got %q, want %q", got, expected)
		}

		if sum != c.Summarize() {
			t.Errorf("tracked summary %+v, want %+v", sum, c.Summarize())
		}

		if len(extras) > 0 {
			l := ops.Limits
			if c.Len() < l.ChunkMin() || c.Len() > l.ChunkMax() {
				t.Errorf("kept chunk size %d out of bounds", c.Len())
			}
			for i := range extras {
				if n := extras[i].Len(); n < l.ChunkMin() || n > l.ChunkMax() {
					t.Errorf("extra %d size %d out of bounds", i, n)
				}
				if !utf8.ValidString(extras[i].String()) {
					t.Errorf("extra %d splits a codepoint", i)
				}
			}
		}
	})
}

// FuzzChunker checks that chunking loses no bytes, never splits a
// codepoint, and keeps every cut except the final one above the minimum.
func FuzzChunker(f *testing.F) {
	f.Add("")
	f.Add("abcdef")
	f.Add("héllo wörld")
	f.Add("😀😀😀")
	f.Add(strings.Repeat("a\né", 40))

	f.Fuzz(func(t *testing.T, text string) {
		if !utf8.ValidString(text) {
			return
		}

		l := NewLimits(4)
		it := NewChunker(SliceString(text), l)

		var sb strings.Builder
		var cuts []string
		for it.Next() {
			cut := it.Chunk().String()
			cuts = append(cuts, cut)
			sb.WriteString(cut)
		}

		if sb.String() != text {
			t.Fatalf("cuts lose bytes: got %q, want %q", sb.String(), text)
		}

		for i, cut := range cuts {
			if !utf8.ValidString(cut) {
				t.Errorf("cut %d splits a codepoint", i)
			}
			if len(cut) > l.ChunkMax() {
				t.Errorf("cut %d size %d exceeds hard max", i, len(cut))
			}
			if i < len(cuts)-1 && len(cut) < l.MinBytes() {
				t.Errorf("non-final cut %d size %d below minimum", i, len(cut))
			}
		}
	})
}

// FuzzBalance checks that rebalancing preserves content and keeps
// summaries exact, and that already compliant pairs pass through
// unchanged.
func FuzzBalance(f *testing.F) {
	f.Add("a", "bcde")
	f.Add("abcd", "e")
	f.Add("", "xy")
	f.Add("hé", "llo")
	f.Add("\n", "\n\nab")
	f.Add("", "b😀")
	f.Add("é😀", "")
	f.Add("😀", "x")

	f.Fuzz(func(t *testing.T, left, right string) {
		if !utf8.ValidString(left) || !utf8.ValidString(right) {
			return
		}

		// Balance operates on leaf slices, which honor the hard size cap.
		if max := NewLimits(4).ChunkMax(); len(left) > max {
			left = left[:adjustSplitBackward([]byte(left), max)]
		}
		if max := NewLimits(4).ChunkMax(); len(right) > max {
			right = right[:adjustSplitBackward([]byte(right), max)]
		}

		ops := NewLeafOps(NewLimits(4))
		ls, rs := SliceString(left), SliceString(right)

		lc, lsum, rc, rsum := ops.BalanceSlices(ls, ls.Summarize(), rs, rs.Summarize())

		got := lc.String()
		if rc != nil {
			got += rc.String()
		}
		if got != left+right {
			t.Fatalf("balance loses bytes: got %q, want %q", got, left+right)
		}

		if lsum != lc.Summarize() {
			t.Errorf("left summary %+v, want %+v", lsum, lc.Summarize())
		}
		if rc != nil && rsum != rc.Summarize() {
			t.Errorf("right summary %+v, want %+v", rsum, rc.Summarize())
		}

		// An empty chunk with a sibling is never a valid outcome; the size
		// bounds apply to both sides whenever the pair stays split.
		if rc != nil {
			if n := lc.Len(); n < ops.Limits.ChunkMin() || n > ops.Limits.ChunkMax() {
				t.Errorf("left chunk size %d out of bounds", n)
			}
			if n := rc.Len(); n < ops.Limits.ChunkMin() || n > ops.Limits.ChunkMax() {
				t.Errorf("right chunk size %d out of bounds", n)
			}
		}

		min := ops.Limits.MinBytes()
		if len(left) >= min && len(right) >= min {
			if lc.String() != left || rc == nil || rc.String() != right {
				t.Error("compliant pair was not passed through unchanged")
			}
		}
	})
}
