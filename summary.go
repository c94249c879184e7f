package textrope

import (
	"bytes"

	"github.com/dshills/textrope/internal/invariants"
)

// Summary holds aggregated metrics for a run of text: its byte length and
// the number of line feeds in it. Summaries form a group under Add/Sub,
// letting the owning tree maintain document totals without rescanning.
//
// Only '\n' counts as a line break; no other line-ending convention is
// recognized at this layer.
type Summary struct {
	Bytes      int
	LineBreaks int
}

// Add combines two summaries componentwise.
func (s Summary) Add(other Summary) Summary {
	s.Bytes += other.Bytes
	s.LineBreaks += other.LineBreaks
	return s
}

// Sub removes other from s componentwise. The caller guarantees that other
// was derived from a sub-range of the text s describes; underflow is a
// contract violation, not a recoverable condition.
func (s Summary) Sub(other Summary) Summary {
	if invariants.Enabled && (other.Bytes > s.Bytes || other.LineBreaks > s.LineBreaks) {
		panic("textrope: summary subtraction underflow")
	}
	s.Bytes -= other.Bytes
	s.LineBreaks -= other.LineBreaks
	return s
}

// IsZero returns true if the summary describes empty text.
func (s Summary) IsZero() bool {
	return s.Bytes == 0 && s.LineBreaks == 0
}

// countBreaks returns the number of line feeds in b.
func countBreaks(b []byte) int {
	breaks := 0
	for {
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			return breaks
		}
		breaks++
		b = b[i+1:]
	}
}
