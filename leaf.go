package textrope

// Summarizable is any text value whose metrics can be derived exactly with
// a single scan.
type Summarizable interface {
	Summarize() Summary
}

// Leaf is the balancing contract the owning tree uses on sibling leaves.
type Leaf interface {
	// IsBigEnough reports whether a leaf with the given summary satisfies
	// the minimum size invariant.
	IsBigEnough(sum Summary) bool

	// BalanceSlices rebalances two adjacent leaves given as borrowed views
	// with their summaries. It always produces an owned left chunk; the
	// right chunk is nil when both sides were merged into one. The outputs
	// never alias the inputs.
	BalanceSlices(left Slice, leftSum Summary, right Slice, rightSum Summary) (Chunk, Summary, *Chunk, Summary)
}

// ReplaceableLeaf is the editing contract the owning tree uses when an edit
// is contained within a single leaf. Offsets are byte positions.
type ReplaceableLeaf interface {
	Leaf

	// Replace splices repl over the byte range [start, end) of c, updating
	// sum in place. When the result overflows the profile's maximum it
	// returns extra chunks, in document order, that the tree must insert as
	// siblings immediately after c.
	Replace(c *Chunk, sum *Summary, start, end int, repl Slice) []Chunk
}

// LeafOps implements the leaf contracts for one size profile.
type LeafOps struct {
	Limits Limits
}

// NewLeafOps returns leaf operations bound to the given profile.
func NewLeafOps(l Limits) LeafOps {
	return LeafOps{Limits: l}
}

// IsBigEnough reports whether the summarized leaf meets the minimum byte
// size.
func (o LeafOps) IsBigEnough(sum Summary) bool {
	return sum.Bytes >= o.Limits.MinBytes()
}

var (
	_ Summarizable    = Slice{}
	_ Summarizable    = (*Chunk)(nil)
	_ ReplaceableLeaf = LeafOps{}
)
