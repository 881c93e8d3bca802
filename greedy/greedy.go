package greedy

import (
	"github.com/katalvlaran/plotopt/path"
	"github.com/katalvlaran/plotopt/progress"
)

// Order builds an initial PathSequence over the paths named by keptIndices,
// using nearest-neighbor construction: starting at path.Origin, repeatedly
// jump to whichever unused path's nearer endpoint is closest to the current
// head, flipping that path if its far end is the closer one, until every
// kept path has been placed.
//
// Ties (equal distance from head to two distinct candidates, or to both
// ends of the same candidate) are broken by ascending original index; an
// exact start/end tie on the winning candidate keeps it unflipped.
//
// Order reports progress on sink as it goes (phase 1) and finishes with a
// greedy_result event carrying the full placement history and both the
// pre-reorder and post-reorder pen-up distances over the kept paths.
//
// Complexity: O(n^2) time, O(n) space, where n = len(keptIndices).
func Order(paths []path.Path, keptIndices []int, sink progress.Sink) path.PathSequence {
	n := len(keptIndices)
	if n == 0 {
		sink.Push(progress.GreedyResultEvent(0, nil, 0, 0, nil))
		return path.PathSequence{}
	}

	originalDist := path.PenUp(paths, unflippedSequence(keptIndices))

	used := make([]bool, n)
	order := make([]path.Placement, 0, n)
	history := make([]path.PlacementHistoryEntry, 0, n)
	head := path.Origin

	for placed := 0; placed < n; placed++ {
		bestJ := -1
		bestFlip := false
		bestDist := 0.0

		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			p := paths[keptIndices[j]]
			dStart := path.Dist(head, p.Start())
			dEnd := path.Dist(head, p.End())
			flip := dEnd < dStart
			d := dStart
			if flip {
				d = dEnd
			}

			if bestJ == -1 || d < bestDist || (d == bestDist && keptIndices[j] < keptIndices[bestJ]) {
				bestJ = j
				bestFlip = flip
				bestDist = d
			}
		}

		used[bestJ] = true
		placement := path.Placement{OriginalIndex: keptIndices[bestJ], Flipped: bestFlip}
		order = append(order, placement)
		history = append(history, path.PlacementHistoryEntry{OriginalIndex: placement.OriginalIndex, Reversed: placement.Flipped})
		head = paths[keptIndices[bestJ]].EffectiveEnd(bestFlip)

		sink.Push(progress.GreedyProgress(placed+1, n, history[len(history)-1]))
	}

	seq := path.PathSequence{Order: order}
	phase1Dist := path.PenUp(paths, seq)

	sink.Push(progress.GreedyResultEvent(n, history, originalDist, phase1Dist, append([]path.Placement(nil), order...)))

	return seq
}

// unflippedSequence is the pre-reorder baseline: kept paths visited in their
// original relative order, none of them flipped.
func unflippedSequence(keptIndices []int) path.PathSequence {
	order := make([]path.Placement, len(keptIndices))
	for i, idx := range keptIndices {
		order[i] = path.Placement{OriginalIndex: idx}
	}
	return path.PathSequence{Order: order}
}
