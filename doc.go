// Package textrope provides the leaf layer of a balanced-tree text buffer.
//
// A rope stores a document as a balanced tree whose leaves hold bounded runs
// of UTF-8 text. This package implements those leaves: the Chunk buffer, the
// Summary metrics attached to every chunk, the zero-copy Slice view, and the
// algorithms the owning tree calls to keep leaves within size bounds after
// an edit.
//
// Key pieces:
//   - Chunk: an owned, growable UTF-8 buffer bounded by a Limits profile
//   - Summary: byte and line-break counts, combinable by Add/Sub
//   - Slice: a borrowed, read-only view over validated UTF-8 bytes
//   - LeafOps: the balancing and range-replace algorithms, exposed to the
//     owning tree through the Leaf and ReplaceableLeaf contracts
//   - Chunker and Builder: bulk-load a document into compliant chunks
//
// Basic usage:
//
//	ops := textrope.NewLeafOps(textrope.DefaultLimits)
//	chunk := textrope.SliceString("hello\nworld").ToChunk(ops.Limits)
//	sum := chunk.Summarize()
//	extras := ops.Replace(&chunk, &sum, 0, 5, textrope.SliceString("goodbye"))
//
// Every operation is a pure, synchronous transformation of in-memory
// buffers. Offsets passed in must lie on UTF-8 codepoint boundaries; that
// contract is checked only under the invariants build tag (see
// internal/invariants). The owning tree decides when to rebalance and where
// extra chunks produced by an overflowing replace are spliced in.
package textrope
