package textrope

// isCharBoundary reports whether offset falls on a UTF-8 codepoint boundary
// of b. Both ends of the buffer are boundaries. Continuation bytes are
// 10xxxxxx, so any other byte value starts a codepoint.
func isCharBoundary(b []byte, offset int) bool {
	if offset == 0 || offset == len(b) {
		return true
	}
	if offset < 0 || offset > len(b) {
		return false
	}
	return b[offset]&0xC0 != 0x80
}

// adjustSplitForward moves candidate forward to the nearest codepoint
// boundary of b. Sizing decisions always round forward (grow rather than
// shrink) so a size floor is never undershot; the ±3 slack in
// Limits.ChunkMax/ChunkMin absorbs the drift.
func adjustSplitForward(b []byte, candidate int) int {
	if candidate <= 0 {
		return 0
	}
	for candidate < len(b) && b[candidate]&0xC0 == 0x80 {
		candidate++
	}
	if candidate > len(b) {
		return len(b)
	}
	return candidate
}

// adjustSplitBackward moves candidate back to the nearest codepoint
// boundary of b.
func adjustSplitBackward(b []byte, candidate int) int {
	if candidate >= len(b) {
		return len(b)
	}
	for candidate > 0 && b[candidate]&0xC0 == 0x80 {
		candidate--
	}
	return candidate
}
