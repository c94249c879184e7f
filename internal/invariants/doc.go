// Package invariants gates contract checks behind a build tag.
//
// The chunk layer has no recoverable errors: byte offsets, ranges, and
// codepoint boundaries are caller-established contracts. Violations abort
// only in instrumented builds:
//
//	go test -tags invariants ./...
//
// Regular builds compile the checks out entirely.
package invariants
