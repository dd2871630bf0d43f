// Package harness runs conformance scenarios against the binary search.
//
// A scenario names a sorted sequence and a list of lookups with their
// expected outcome. The harness runs every lookup through search.Trace,
// records each probe as a trace event and checks the expectations.
//
// # Scenario Format
//
// Scenarios are YAML files (.yaml, .yml):
//
//	name: odd_numbers
//	description: "Lookups in the odd numbers below 14"
//	kind: int                # int | string | auto (default auto)
//	sequence: [1, 3, 5, 7, 9, 11, 13]
//	run_id: "odd-run-001"    # optional, fixed run id for golden files
//	cases:
//	  - target: 7
//	    expect: { found: true, index: 3 }
//	  - target: 2
//	    expect: { found: false }
//
// or CUE files (.cue) with the same fields, validated against the embedded
// #Scenario schema before decoding.
//
// # Expectations
//
//   - found: false requires the lookup to return search.NotFound
//   - found: true with index requires exactly that index
//   - found: true without index accepts any position holding the target,
//     which is how duplicates are asserted
//
// The sequence must be sorted. An unsorted scenario is rejected with
// ErrUnsorted before any lookup runs; the search itself never checks.
//
// # Deterministic Testing
//
// Trace events carry logical sequence numbers (testutil.LogicalClock) and the
// run id comes from the scenario or a RunIDGenerator, so the same scenario
// always produces the same snapshot. RunWithGolden compares that snapshot
// with testdata/golden/<name>.golden:
//
//	go test ./internal/harness -update
//
// regenerates the golden files.
package harness
