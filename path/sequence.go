// Package path - sequence utilities shared by greedy, twoopt and engine.
//
// This file contains compact, allocation-conscious helpers that operate on
// PathSequence structure (index permutations + flip bits), without
// depending on any particular stage's internal buffers.
package path

import "math"

// roundScale controls final pen-up cost stabilization precision (1e-9),
// matching TourCost's rounding discipline so monotone-history comparisons
// are not defeated by floating-point noise.
const roundScale = 1e9

// Round1e9 returns x rounded to 1e-9 absolute precision.
func Round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// ValidateSequence checks that s is a well-formed permutation of exactly the
// given surviving indices: every element of want appears in s.Order exactly
// once, and s.Order contains nothing else.
//
// Complexity: O(n) time, O(n) space.
func ValidateSequence(s PathSequence, want []int) error {
	if len(s.Order) != len(want) {
		return ErrInternal
	}
	wantSet := make(map[int]struct{}, len(want))
	for _, idx := range want {
		wantSet[idx] = struct{}{}
	}
	seen := make(map[int]struct{}, len(s.Order))
	for _, pl := range s.Order {
		if _, ok := wantSet[pl.OriginalIndex]; !ok {
			return ErrInternal
		}
		if _, dup := seen[pl.OriginalIndex]; dup {
			return ErrInternal
		}
		seen[pl.OriginalIndex] = struct{}{}
	}
	return nil
}

// CopySequence returns an independent copy of s whose Order slice can be
// mutated without affecting the original.
//
// Complexity: O(n).
func CopySequence(s PathSequence) PathSequence {
	out := make([]Placement, len(s.Order))
	copy(out, s.Order)
	return PathSequence{Order: out}
}

// Emit renders the drawn geometry of the i-th placement: paths[idx].Points
// if not flipped, or its reverse if flipped. The returned slice is a fresh
// copy; the original Path is never mutated.
//
// Complexity: O(len(path.Points)).
func Emit(paths []Path, s PathSequence, i int) []Point {
	pl := s.Order[i]
	p := paths[pl.OriginalIndex]
	if !pl.Flipped {
		out := make([]Point, len(p.Points))
		copy(out, p.Points)
		return out
	}
	return p.Reversed()
}
