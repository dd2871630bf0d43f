// Package ir provides the element model for sequences that arrive as text:
// command-line arguments and scenario files.
//
// The generic search package works on typed slices. ir sits in front of it,
// turning tokens into a homogeneous [Sequence] of integers or strings and
// producing deterministic JSON for golden traces.
//
// Key design constraints:
//   - Two element kinds only: int64 and string. NO floats
//   - A Sequence never mixes kinds; comparing across kinds is ErrKindMismatch
//   - Strings are NFC normalized at parse time, so canonically equivalent
//     spellings compare equal and sort together
//   - ir imports no other internal package except search
package ir
