package textrope

import (
	"github.com/dshills/textrope/internal/invariants"
)

// NewlineIndex provides fast lookup of newline positions within a single
// chunk, letting the owning tree answer line queries without rescanning
// leaf text. Chunks rarely hold more than a handful of newlines, so small
// counts are stored inline with no allocation and larger counts spill to a
// heap slice.
//
// Positions are chunk-local byte offsets. They fit in uint16 because
// NewLimits caps profiles well below 64 KiB.
type NewlineIndex struct {
	inline    [maxInlineNewlines]uint16
	count     uint16
	positions []uint16 // only allocated when count > maxInlineNewlines
}

// maxInlineNewlines is the number of newline positions stored inline.
const maxInlineNewlines = 4

// ComputeNewlineIndex scans a text view and records every newline position.
// The input must not exceed the largest allowed profile size, or the
// recorded positions would not fit in uint16; checked only under the
// invariants build tag.
func ComputeNewlineIndex(s Slice) NewlineIndex {
	if invariants.Enabled && s.Len() > maxProfileBytes {
		panic("textrope: newline index input exceeds the profile size cap")
	}

	var idx NewlineIndex

	count := countBreaks(s.b)
	if count == 0 {
		return idx
	}
	idx.count = uint16(count)

	if count > maxInlineNewlines {
		idx.positions = make([]uint16, 0, count)
	}

	recorded := 0
	for i := 0; i < len(s.b) && recorded < count; i++ {
		if s.b[i] != '\n' {
			continue
		}
		pos := uint16(i)
		if recorded < maxInlineNewlines {
			idx.inline[recorded] = pos
		}
		if count > maxInlineNewlines {
			idx.positions = append(idx.positions, pos)
		}
		recorded++
	}

	return idx
}

// Count returns the number of newlines in the indexed text.
func (idx *NewlineIndex) Count() int {
	return int(idx.count)
}

// Position returns the byte offset of the nth newline (0-indexed), or -1
// if n is out of range.
func (idx *NewlineIndex) Position(n int) int {
	if n < 0 || n >= int(idx.count) {
		return -1
	}
	if idx.count <= maxInlineNewlines {
		return int(idx.inline[n])
	}
	return int(idx.positions[n])
}

// FindNthNewline returns the byte position of the nth newline (1-indexed),
// or -1 if n is 0 or out of range.
func (idx *NewlineIndex) FindNthNewline(n int) int {
	if n <= 0 || n > int(idx.count) {
		return -1
	}
	return idx.Position(n - 1)
}

// SearchLine returns the chunk-local byte offset where the given line
// starts. Line 0 starts at offset 0; line n starts right after the nth
// newline. Returns -1 when the chunk does not reach that line.
func (idx *NewlineIndex) SearchLine(line int) int {
	if line == 0 {
		return 0
	}
	pos := idx.FindNthNewline(line)
	if pos < 0 {
		return -1
	}
	return pos + 1
}

// Contains returns true if the indexed text has at least lines newlines.
func (idx *NewlineIndex) Contains(lines int) bool {
	return int(idx.count) >= lines
}

// LastNewlinePosition returns the position of the last newline, or -1 if
// there is none.
func (idx *NewlineIndex) LastNewlinePosition() int {
	if idx.count == 0 {
		return -1
	}
	return idx.Position(int(idx.count) - 1)
}

// NewlineBefore returns the position of the last newline strictly before
// offset, or -1 if there is none.
func (idx *NewlineIndex) NewlineBefore(offset int) int {
	positions := idx.allPositions()

	// Linear scan for small counts, usually faster due to cache.
	if len(positions) <= 8 {
		for i := len(positions) - 1; i >= 0; i-- {
			if int(positions[i]) < offset {
				return int(positions[i])
			}
		}
		return -1
	}

	lo, hi := 0, len(positions)-1
	result := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if pos := int(positions[mid]); pos < offset {
			result = pos
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return result
}

// NewlineAfter returns the position of the first newline at or after
// offset, or -1 if there is none.
func (idx *NewlineIndex) NewlineAfter(offset int) int {
	positions := idx.allPositions()

	if len(positions) <= 8 {
		for _, pos := range positions {
			if int(pos) >= offset {
				return int(pos)
			}
		}
		return -1
	}

	lo, hi := 0, len(positions)-1
	result := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if pos := int(positions[mid]); pos >= offset {
			result = pos
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return result
}

// allPositions returns every recorded position, inline or spilled.
func (idx *NewlineIndex) allPositions() []uint16 {
	if idx.count <= maxInlineNewlines {
		return idx.inline[:idx.count]
	}
	return idx.positions
}
