// Package search implements binary search over sorted slices.
//
// The core operation is [Index]: given a slice sorted in non-decreasing order
// and a target, it returns the position of an element equal to the target or
// [NotFound]. Absence is a normal outcome, never an error.
//
// # Preconditions
//
// The slice must be sorted by the same ordering used to compare elements with
// the target. Index does not verify this; an unsorted slice yields an
// unspecified result (some index or NotFound), never a panic. Callers that
// cannot trust their input can check it first with [IsSorted] or
// [FirstUnsorted].
//
// # Duplicates
//
// When several elements equal the target, Index returns one of their indices.
// Which one is determined by the probe sequence and is not otherwise
// guaranteed.
//
// # Tracing
//
// [Trace] runs the same loop as Index and additionally returns every probe
// (low, mid, high and the comparison outcome). The harness and the CLI use it
// to show how a lookup converged.
package search
