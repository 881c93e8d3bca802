// Package progress implements a single-producer/single-consumer progress
// bus: an ordered event queue with non-blocking push and a per-kind drop
// policy (coalesce "progress" events, never drop
// "*_result"/"filter_*"/"log"/"complete").
//
// The bfs package expresses similar observability via synchronous
// OnEnqueue/OnDequeue/OnVisit hooks (bfs/types.go); that shape does not fit
// here because the producer (a single CPU-bound goroutine) must never
// block on a slow consumer, so this package is built from scratch in the
// same documented, zero-surprises style: a constructor with sane defaults,
// sentinel-free behavior (there is nothing here that can fail), and an
// explicit, tight contract.
package progress
