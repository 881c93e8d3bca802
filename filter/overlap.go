// Package filter - the overlap filter algorithm itself.
//
// Design:
//   - Deterministic processing order: descending draw length, ties broken
//     by ascending original index, for reproducible output across runs.
//   - No logging, no panics on user input; the filter never fails.
//   - O(N * samples) typical cost, amortized O(1) per spatial query via
//     inkGrid.
package filter

import (
	"math"
	"sort"

	"github.com/katalvlaran/plotopt/path"
)

// minSampleStep is the upper bound on the sampling step along a
// candidate's polyline (step of min(penWidth/4, 0.5mm)).
const minSampleStep = 0.5

// Filter runs the overlap filter over paths using cfg's PenWidth,
// VisibilityThreshold and MergeThreshold. It never fails: a malformed
// path is an ingest error surfaced earlier by the caller, not by Filter.
//
// Complexity: O(n log n) for the length sort, plus O(n * samples) spatial
// queries, each amortized O(1) against the uniform grid.
func Filter(paths []path.Path, cfg path.Config) path.FilterResult {
	n := len(paths)

	// Edge case: pen_width == 0 or visibility_threshold >= 100 disables
	// the stage entirely; every path survives.
	if cfg.PenWidth == 0 || cfg.VisibilityThreshold >= 100 {
		return keepAll(n)
	}

	type indexedLen struct {
		idx    int
		length float64
	}
	order := make([]indexedLen, n)
	for i, p := range paths {
		order[i] = indexedLen{idx: i, length: p.DrawLength()}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].length != order[j].length {
			return order[i].length > order[j].length
		}
		return order[i].idx < order[j].idx
	})

	radius := cfg.PenWidth / 2
	step := math.Min(cfg.PenWidth/4, minSampleStep)
	grid := newInkGrid(math.Max(cfg.PenWidth, 1e-9))
	requiredCoveredFraction := 1 - cfg.VisibilityThreshold/100

	redundant := make([]bool, n)
	for _, e := range order {
		p := paths[e.idx]

		var isRedundant bool
		if e.length < cfg.MergeThreshold {
			// Treated as a point: a single-sample visibility test.
			isRedundant = grid.within(p.Start(), radius)
		} else {
			samples := samplePolyline(p.Points, step)
			covered := 0
			for _, s := range samples {
				if grid.within(s, radius) {
					covered++
				}
			}
			frac := float64(covered) / float64(len(samples))
			isRedundant = frac >= requiredCoveredFraction
		}

		if isRedundant {
			redundant[e.idx] = true
			continue
		}
		for i := 0; i+1 < len(p.Points); i++ {
			grid.insert(p.Points[i], p.Points[i+1])
		}
	}

	kept := make([]int, 0, n)
	removed := make([]int, 0)
	for i := 0; i < n; i++ {
		if redundant[i] {
			removed = append(removed, i)
		} else {
			kept = append(kept, i)
		}
	}
	return path.FilterResult{KeptIndices: kept, RemovedIndices: removed}
}

// keepAll returns a FilterResult that keeps every one of n paths.
func keepAll(n int) path.FilterResult {
	kept := make([]int, n)
	for i := range kept {
		kept[i] = i
	}
	return path.FilterResult{KeptIndices: kept, RemovedIndices: []int{}}
}

// samplePolyline returns points spaced step apart along points' arc length,
// always including the first and last point.
//
// Complexity: O(len(points) + drawLength/step).
func samplePolyline(points []path.Point, step float64) []path.Point {
	if step <= 0 {
		step = minSampleStep
	}
	out := make([]path.Point, 0, len(points))
	out = append(out, points[0])

	var traveled float64
	nextSample := step
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		segLen := path.Dist(a, b)
		if segLen == 0 {
			continue
		}
		for nextSample <= traveled+segLen {
			t := (nextSample - traveled) / segLen
			out = append(out, path.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
			nextSample += step
		}
		traveled += segLen
	}

	last := points[len(points)-1]
	if out[len(out)-1] != last {
		out = append(out, last)
	}
	return out
}
