// Package twoopt runs first-improvement 2-opt local search over an open,
// oriented path sequence anchored at path.Origin.
//
// This generalizes the closed-tour TwoOpt in tsp/two_opt.go to an open path
// with a fixed, unmoving start point and per-placement flip bits: reversing
// a segment [i..k] inverts the Flipped bit of every placement in that
// segment (traveling the segment in the opposite order means each path in
// it is now entered from what used to be its far end), not just the two
// boundary placements.
package twoopt
