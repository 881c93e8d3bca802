package filter_test

import (
	"testing"

	"github.com/katalvlaran/plotopt/filter"
	"github.com/katalvlaran/plotopt/path"
	"github.com/stretchr/testify/assert"
)

func TestFilterDisabledWhenPenWidthZero(t *testing.T) {
	paths := []path.Path{
		{Points: []path.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{Points: []path.Point{{X: 0, Y: 0.1}, {X: 10, Y: 0.1}}},
	}
	cfg := path.DefaultConfig() // PenWidth == 0
	res := filter.Filter(paths, cfg)
	assert.Equal(t, []int{0, 1}, res.KeptIndices)
	assert.Empty(t, res.RemovedIndices)
}

func TestFilterDisabledAtFullVisibility(t *testing.T) {
	paths := []path.Path{
		{Points: []path.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{Points: []path.Point{{X: 0, Y: 0.1}, {X: 10, Y: 0.1}}},
	}
	cfg := path.Config{PenWidth: 1.0, VisibilityThreshold: 100}
	res := filter.Filter(paths, cfg)
	assert.Equal(t, []int{0, 1}, res.KeptIndices)
	assert.Empty(t, res.RemovedIndices)
}

// Filter drops a duplicate, near-coincident stroke.
func TestFilterDropsNearDuplicate(t *testing.T) {
	paths := []path.Path{
		{Points: []path.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{Points: []path.Point{{X: 0, Y: 0.1}, {X: 10, Y: 0.1}}},
	}
	cfg := path.Config{PenWidth: 1.0, VisibilityThreshold: 50, MergeThreshold: 0.01}
	res := filter.Filter(paths, cfg)
	assert.Equal(t, []int{0}, res.KeptIndices)
	assert.Equal(t, []int{1}, res.RemovedIndices)
}

func TestFilterKeepsDisjointPaths(t *testing.T) {
	paths := []path.Path{
		{Points: []path.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{Points: []path.Point{{X: 0, Y: 100}, {X: 10, Y: 100}}},
	}
	cfg := path.Config{PenWidth: 1.0, VisibilityThreshold: 50, MergeThreshold: 0.01}
	res := filter.Filter(paths, cfg)
	assert.ElementsMatch(t, []int{0, 1}, res.KeptIndices)
	assert.Empty(t, res.RemovedIndices)
}

func TestFilterKeepOrRemovePartitionIsComplete(t *testing.T) {
	paths := make([]path.Path, 5)
	for i := range paths {
		y := float64(i) * 5
		paths[i] = path.Path{Points: []path.Point{{X: 0, Y: y}, {X: 10, Y: y}}}
	}
	cfg := path.Config{PenWidth: 1.0, VisibilityThreshold: 50, MergeThreshold: 0.01}
	res := filter.Filter(paths, cfg)
	seen := map[int]bool{}
	for _, idx := range append(append([]int{}, res.KeptIndices...), res.RemovedIndices...) {
		assert.False(t, seen[idx], "index %d seen twice", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, 5)
}

func TestFilterIdenticalPathsKeepsFirst(t *testing.T) {
	a := path.Path{Points: []path.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}}
	b := path.Path{Points: []path.Point{{X: 5, Y: 0}, {X: 0, Y: 0}}} // same polyline, reversed
	cfg := path.Config{PenWidth: 1.0, VisibilityThreshold: 50, MergeThreshold: 0.01}
	res := filter.Filter([]path.Path{a, b}, cfg)
	assert.Equal(t, []int{0}, res.KeptIndices)
	assert.Equal(t, []int{1}, res.RemovedIndices)
}

func TestFilterTreatsShortPathAsPoint(t *testing.T) {
	long := path.Path{Points: []path.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	tiny := path.Path{Points: []path.Point{{X: 5, Y: 0.1}, {X: 5.001, Y: 0.1}}} // below merge threshold
	cfg := path.Config{PenWidth: 1.0, VisibilityThreshold: 50, MergeThreshold: 0.01}
	res := filter.Filter([]path.Path{long, tiny}, cfg)
	assert.Equal(t, []int{0}, res.KeptIndices)
	assert.Equal(t, []int{1}, res.RemovedIndices)
}
