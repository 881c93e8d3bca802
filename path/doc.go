// Package path defines the fundamental geometric types shared by every
// stage of the toolpath optimizer: Point, Path, PathSequence, the
// Config record callers supply, and the results each stage hands
// forward.
//
// Design goals, inherited from the optimizer's teacher package:
//   - Mathematical rigor: precise, specialized errors; explicit invariants
//     for sequences.
//   - Determinism: no stage here reads a clock or an RNG.
//   - Zero surprises: sensible defaults via DefaultConfig(), immutable
//     Path values once ingested.
package path
