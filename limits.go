package textrope

// Limits is the chunk size profile threaded through every sizing decision.
//
// Chunks aim to stay within [MinBytes, MaxBytes] but are allowed a 3-byte
// slack on either side (ChunkMin, ChunkMax): a size-based cut may land one
// byte after the start of a 4-byte codepoint, and the algorithms round the
// cut forward rather than rescanning.
//
// The zero value is not a valid profile; use NewLimits or DefaultLimits.
type Limits struct {
	maxBytes int
}

// DefaultLimits is the production profile. Tests use tiny profiles
// (NewLimits(4)) so short strings exercise every splitting edge case.
var DefaultLimits = NewLimits(1024)

// maxProfileBytes keeps chunk-local offsets within uint16 range for
// NewlineIndex.
const maxProfileBytes = 32 << 10

// NewLimits returns a profile where chunks aim to hold at most maxBytes
// bytes and at least maxBytes/2. Panics if maxBytes is out of range.
func NewLimits(maxBytes int) Limits {
	if maxBytes < 4 {
		panic("textrope: chunk max bytes must be at least 4")
	}
	if maxBytes > maxProfileBytes {
		panic("textrope: chunk max bytes too large")
	}
	return Limits{maxBytes: maxBytes}
}

// MaxBytes is the size chunks aim to stay under.
func (l Limits) MaxBytes() int {
	return l.maxBytes
}

// MinBytes is the size chunks aim to stay over.
func (l Limits) MinBytes() int {
	return l.maxBytes / 2
}

// ChunkMax is the hard upper bound on chunk length.
func (l Limits) ChunkMax() int {
	return l.maxBytes + 3
}

// ChunkMin is the hard lower bound on the length of a chunk that has a
// later sibling.
func (l Limits) ChunkMin() int {
	if m := l.MinBytes() - 3; m >= 1 {
		return m
	}
	return 1
}

func (l Limits) valid() bool {
	return l.maxBytes >= 4
}
