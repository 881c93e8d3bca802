package twoopt

import (
	"github.com/katalvlaran/plotopt/path"
	"github.com/katalvlaran/plotopt/progress"
)

// eps is the strict-improvement tolerance (mm) that stops infinite
// oscillation from floating-point rounding noise.
const eps = 1e-6

// buffers holds the six parallel coordinate/identity arrays the resource
// policy calls for: sx, sy, ex, ey (effective start/end per position),
// order (original path index per position) and flipped (orientation bit
// per position). Allocated once; every move reorders them in place.
type buffers struct {
	sx, sy, ex, ey []float64
	order          []int
	flipped        []bool
}

func newBuffers(paths []path.Path, seq path.PathSequence) *buffers {
	n := seq.Len()
	b := &buffers{
		sx:      make([]float64, n),
		sy:      make([]float64, n),
		ex:      make([]float64, n),
		ey:      make([]float64, n),
		order:   make([]int, n),
		flipped: make([]bool, n),
	}
	for i, pl := range seq.Order {
		p := paths[pl.OriginalIndex]
		s := p.EffectiveStart(pl.Flipped)
		e := p.EffectiveEnd(pl.Flipped)
		b.sx[i], b.sy[i] = s.X, s.Y
		b.ex[i], b.ey[i] = e.X, e.Y
		b.order[i] = pl.OriginalIndex
		b.flipped[i] = pl.Flipped
	}
	return b
}

func (b *buffers) start(i int) path.Point { return path.Point{X: b.sx[i], Y: b.sy[i]} }
func (b *buffers) end(i int) path.Point   { return path.Point{X: b.ex[i], Y: b.ey[i]} }

func (b *buffers) len() int { return len(b.order) }

// reverse reverses positions [i..j] and, because each path is oriented,
// toggles the flip bit of and swaps the start/end coordinates for every
// position in that range.
func (b *buffers) reverse(i, j int) {
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		b.swap(lo, hi)
	}
	for k := i; k <= j; k++ {
		b.sx[k], b.ex[k] = b.ex[k], b.sx[k]
		b.sy[k], b.ey[k] = b.ey[k], b.sy[k]
		b.flipped[k] = !b.flipped[k]
	}
}

func (b *buffers) swap(i, j int) {
	b.sx[i], b.sx[j] = b.sx[j], b.sx[i]
	b.sy[i], b.sy[j] = b.sy[j], b.sy[i]
	b.ex[i], b.ex[j] = b.ex[j], b.ex[i]
	b.ey[i], b.ey[j] = b.ey[j], b.ey[i]
	b.order[i], b.order[j] = b.order[j], b.order[i]
	b.flipped[i], b.flipped[j] = b.flipped[j], b.flipped[i]
}

func (b *buffers) sequence() path.PathSequence {
	order := make([]path.Placement, b.len())
	for i := range order {
		order[i] = path.Placement{OriginalIndex: b.order[i], Flipped: b.flipped[i]}
	}
	return path.PathSequence{Order: order}
}

func (b *buffers) penUp() float64 {
	n := b.len()
	if n == 0 {
		return 0
	}
	sum := path.Dist(path.Origin, b.start(0))
	for i := 0; i+1 < n; i++ {
		sum += path.Dist(b.end(i), b.start(i+1))
	}
	return sum
}

// Refine runs first-improvement 2-opt on seq until a pass completes with no
// improving move, max_iterations accepted passes have been applied, or
// cancel fires. It returns the refined sequence, the pen-up history
// (history[0] is pen_up(seq)), and the number of completed improving
// passes.
//
// Cancellation is polled at pass boundaries only: a pass in progress always
// finishes (or, on the first improving move, the pass ends immediately by
// definition of first-improvement).
//
// Complexity: O(n^2) candidate checks per pass, O(n) per accepted move.
func Refine(paths []path.Path, seq path.PathSequence, maxIterations int, sink progress.Sink, cancel <-chan struct{}) (path.PathSequence, []float64, int, error) {
	sink.Push(progress.TwoOptStart())

	want := make([]int, len(seq.Order))
	for i, pl := range seq.Order {
		want[i] = pl.OriginalIndex
	}

	b := newBuffers(paths, seq)
	n := b.len()

	history := []float64{path.Round1e9(b.penUp())}
	iterations := 0

	if n < 2 {
		final := b.sequence()
		if err := path.ValidateSequence(final, want); err != nil {
			return path.PathSequence{}, history, iterations, err
		}
		originalDist := history[0]
		sink.Push(progress.Phase2ResultEvent(history, iterations, history[0], originalDist, placementsOf(b)))
		return final, history, iterations, nil
	}

	for {
		select {
		case <-cancel:
			return path.PathSequence{}, history, iterations, path.ErrCancelled
		default:
		}

		improved := false

		for i := 0; i <= n-2 && !improved; i++ {
			var prev path.Point
			if i > 0 {
				prev = b.end(i - 1)
			} else {
				prev = path.Origin
			}
			bStart := b.start(i)

			for j := i + 1; j <= n-1; j++ {
				hasNext := j < n-1
				var next path.Point
				if hasNext {
					next = b.start(j + 1)
				}
				cEnd := b.end(j)

				currentGap := path.Dist(prev, bStart)
				postGap := path.Dist(prev, cEnd)
				if hasNext {
					currentGap += path.Dist(b.end(j), next)
					postGap += path.Dist(bStart, next)
				}

				if postGap < currentGap-eps {
					b.reverse(i, j)
					improved = true
					break
				}
			}
		}

		if !improved {
			break
		}

		iterations++
		history = append(history, path.Round1e9(b.penUp()))

		if maxIterations > 0 && iterations >= maxIterations {
			break
		}
	}

	finalSeq := b.sequence()
	if err := path.ValidateSequence(finalSeq, want); err != nil {
		return path.PathSequence{}, history, iterations, err
	}

	final := path.Round1e9(history[len(history)-1])
	originalDist := history[0]
	sink.Push(progress.Phase2ResultEvent(history, iterations, final, originalDist, placementsOf(b)))

	return finalSeq, history, iterations, nil
}

func placementsOf(b *buffers) []path.Placement {
	out := make([]path.Placement, b.len())
	for i := range out {
		out[i] = path.Placement{OriginalIndex: b.order[i], Flipped: b.flipped[i]}
	}
	return out
}
