// Package path - core types, configuration, and sentinel errors shared by
// filter, greedy, twoopt and engine.
//
// This file declares Point, Path, PathSequence, Config, FilterResult,
// OptimizationResult, and the sentinel errors every stage returns.
//
// Errors:
//
//	ErrEmptyInput     - the caller supplied zero paths.
//	ErrMalformedPath  - a path has fewer than two points or a non-finite coordinate.
//	ErrConfigRange    - a Config field is outside its documented range.
//	ErrCancelled      - the cancellation token tripped mid-run.
//	ErrInternal       - an invariant was violated mid-run; should be unreachable.
package path

import (
	"errors"
	"math"
)

// Sentinel errors surfaced by engine.Optimize. Do not wrap with fmt.Errorf
// where a sentinel suffices.
var (
	// ErrEmptyInput indicates the caller passed zero paths.
	ErrEmptyInput = errors.New("path: empty input")

	// ErrMalformedPath indicates a path with fewer than two points, or a
	// non-finite coordinate.
	ErrMalformedPath = errors.New("path: malformed path")

	// ErrConfigRange indicates a Config field is outside its documented range.
	ErrConfigRange = errors.New("path: config value out of range")

	// ErrCancelled indicates the cancellation token tripped mid-run.
	ErrCancelled = errors.New("path: cancelled")

	// ErrInternal indicates an invariant was violated mid-run. Should be
	// unreachable; a test target, not a user-facing condition.
	ErrInternal = errors.New("path: internal invariant violation")
)

// Point is a pair (X, Y) of finite real numbers in millimetres.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q as a vector.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Finite reports whether both coordinates of p are finite (not NaN, not ±Inf).
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Path is an ordered, non-empty sequence of Points with length >= 2.
// Immutable after ingest; Start, End and DrawLength are derived on demand.
type Path struct {
	// Points is the polyline geometry, in original (unflipped) orientation.
	Points []Point

	// Meta carries caller-supplied, opaque per-path metadata (e.g. G-code
	// layer/tool annotations) round-tripped but never inspected by the core.
	Meta map[string]string
}

// Validate checks the length >= 2 and all-finite invariants for p.
//
// Complexity: O(len(p.Points)).
func (p Path) Validate() error {
	if len(p.Points) < 2 {
		return ErrMalformedPath
	}
	for _, pt := range p.Points {
		if !pt.Finite() {
			return ErrMalformedPath
		}
	}
	return nil
}

// Start returns the first point of p.
func (p Path) Start() Point { return p.Points[0] }

// End returns the last point of p.
func (p Path) End() Point { return p.Points[len(p.Points)-1] }

// DrawLength returns the total polyline length Σ‖p_{k+1}−p_k‖.
//
// Complexity: O(len(p.Points)).
func (p Path) DrawLength() float64 {
	var sum float64
	for i := 0; i+1 < len(p.Points); i++ {
		sum += Dist(p.Points[i], p.Points[i+1])
	}
	return sum
}

// EffectiveStart returns p.Start() unless flipped, in which case it returns
// p.End() — the point at which the path is actually drawn from.
func (p Path) EffectiveStart(flipped bool) Point {
	if flipped {
		return p.End()
	}
	return p.Start()
}

// EffectiveEnd returns p.End() unless flipped, in which case it returns
// p.Start() — the point at which drawing the path actually finishes.
func (p Path) EffectiveEnd(flipped bool) Point {
	if flipped {
		return p.Start()
	}
	return p.End()
}

// Reversed returns the points of p in reverse order — the geometry actually
// drawn when the path's flipped bit is set. The original Path is unchanged.
//
// Complexity: O(len(p.Points)).
func (p Path) Reversed() []Point {
	out := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		out[len(out)-1-i] = pt
	}
	return out
}

// Placement names one element of a PathSequence: a reference to an original
// path index plus the direction it is drawn in.
type Placement struct {
	// OriginalIndex is the index of this path in the caller's input slice
	// (after any filter removal — indices always refer to the original,
	// pre-filter input order).
	OriginalIndex int

	// Flipped, when true, means the path is drawn from End to Start; this
	// changes its effective start/end but never its geometry.
	Flipped bool
}

// PathSequence is an ordered list of Placements: a permutation of the
// surviving-path indices, each tagged with a flip bit.
//
// Invariants:
//   - each OriginalIndex appears at most once across the sequence.
//   - the sequence is a permutation of the surviving-path indices.
type PathSequence struct {
	Order []Placement
}

// Len returns the number of placements in s.
func (s PathSequence) Len() int { return len(s.Order) }

// EffectiveStart returns the point at which the i-th placement starts
// drawing, given the original paths slice.
func (s PathSequence) EffectiveStart(paths []Path, i int) Point {
	pl := s.Order[i]
	return paths[pl.OriginalIndex].EffectiveStart(pl.Flipped)
}

// EffectiveEnd returns the point at which the i-th placement finishes
// drawing, given the original paths slice.
func (s PathSequence) EffectiveEnd(paths []Path, i int) Point {
	pl := s.Order[i]
	return paths[pl.OriginalIndex].EffectiveEnd(pl.Flipped)
}

// Origin is the machine's resting position before the first path is drawn.
var Origin = Point{X: 0, Y: 0}

// PenUp computes the cumulative pen-up travel for s against paths:
//
//	‖Origin − s[0].effective_start‖ + Σ ‖s[i].effective_end − s[i+1].effective_start‖
//
// An empty sequence has pen-up distance 0.
//
// Complexity: O(len(s.Order)).
func PenUp(paths []Path, s PathSequence) float64 {
	if len(s.Order) == 0 {
		return 0
	}
	var sum float64
	sum += Dist(Origin, s.EffectiveStart(paths, 0))
	for i := 0; i+1 < len(s.Order); i++ {
		sum += Dist(s.EffectiveEnd(paths, i), s.EffectiveStart(paths, i+1))
	}
	return sum
}

// FilterResult is a partition of {0,...,N-1}: the indices (in the original
// input order) kept by the overlap filter and those removed.
type FilterResult struct {
	KeptIndices    []int
	RemovedIndices []int
}

// PlacementHistoryEntry records one greedy placement, for progress.GreedyResultEvent.
type PlacementHistoryEntry struct {
	OriginalIndex int
	Reversed      bool
}

// OptimizationResult is the final output of engine.Optimize.
type OptimizationResult struct {
	// Sequence is the final, refined ordering.
	Sequence PathSequence

	// PenUpHistory has one sample per 2-opt pass, starting with the greedy
	// baseline (PenUpHistory[0] == PenUp of the greedy output).
	PenUpHistory []float64

	// Iterations is the number of completed 2-opt improvement passes.
	Iterations int

	// OriginalPenUp is the pen-up distance of the input in its original
	// (pre-filter, pre-reorder) order.
	OriginalPenUp float64

	// GreedyPenUp is the pen-up distance of the greedy baseline
	// (PenUpHistory[0]).
	GreedyPenUp float64

	// FinalPenUp is the pen-up distance of Sequence after 2-opt.
	FinalPenUp float64
}

// Config holds the recognized optimizer options. The core reads only
// PenWidth, VisibilityThreshold, MaxIterations and MergeThreshold; the
// remaining fields are consumed by out-of-core collaborators (G-code
// emission/ingest) and round-tripped unmodified.
type Config struct {
	// PenWidth (mm, >= 0): ink footprint width used by the filter. 0 disables it.
	PenWidth float64 `json:"pen_width" mapstructure:"pen_width"`

	// VisibilityThreshold (0-100 %): minimum fraction of a candidate path's
	// footprint that must remain un-inked for it to survive the filter.
	VisibilityThreshold float64 `json:"visibility_threshold" mapstructure:"visibility_threshold"`

	// MaxIterations caps the number of 2-opt improvement passes. 0 means
	// unbounded (subject only to reaching a local optimum).
	MaxIterations int `json:"max_iterations" mapstructure:"max_iterations"`

	// MergeThreshold (mm, >= 0): length tolerance below which the filter
	// treats a path as a single point (a one-sample visibility test). No
	// stage compares path endpoints against it.
	MergeThreshold float64 `json:"merge_threshold" mapstructure:"merge_threshold"`

	// Fields below are consumed outside the core (G-code emission/ingest);
	// the core never reads them, only round-trips them for callers that
	// carry a Config through the whole pipeline.
	CurveTolerance float64 `json:"curve_tolerance,omitempty" mapstructure:"curve_tolerance"`
	Feedrate       float64 `json:"feedrate,omitempty" mapstructure:"feedrate"`
	TravelSpeed    float64 `json:"travel_speed,omitempty" mapstructure:"travel_speed"`
	ZUp            float64 `json:"z_up,omitempty" mapstructure:"z_up"`
	ZDown          float64 `json:"z_down,omitempty" mapstructure:"z_down"`
	ZSpeed         float64 `json:"z_speed,omitempty" mapstructure:"z_speed"`
	GCodeHeader    string  `json:"gcode_header,omitempty" mapstructure:"gcode_header"`
	GCodeFooter    string  `json:"gcode_footer,omitempty" mapstructure:"gcode_footer"`
}

// DefaultConfig returns a Config with the filter disabled (PenWidth == 0)
// and an unbounded 2-opt iteration cap.
func DefaultConfig() Config {
	return Config{
		PenWidth:            0,
		VisibilityThreshold: 0,
		MaxIterations:       0,
		MergeThreshold:      0.01,
	}
}

// Validate checks Config's core-relevant fields against their documented
// ConfigRange error condition. Fields consumed only outside the core are
// not validated here.
//
// Complexity: O(1).
func (c Config) Validate() error {
	if c.PenWidth < 0 {
		return ErrConfigRange
	}
	if c.VisibilityThreshold < 0 || c.VisibilityThreshold > 100 {
		return ErrConfigRange
	}
	if c.MaxIterations < 0 {
		return ErrConfigRange
	}
	if c.MergeThreshold < 0 {
		return ErrConfigRange
	}
	return nil
}
