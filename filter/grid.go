package filter

import (
	"math"

	"github.com/katalvlaran/plotopt/path"
)

// segment is one accepted polyline edge, stored for nearest-distance queries.
type segment struct {
	a, b path.Point
}

// cellKey identifies one bucket of the uniform spatial grid.
type cellKey struct {
	cx, cy int
}

// inkGrid is a uniform grid over already-accepted path segments, adapted
// from gridgraph's cell-bucketing idea (bucket 2-D space into cells,
// inspect a cell and its neighbors) — re-keyed here from integer
// land/water cells to float-coordinate buckets of accepted ink segments.
//
// Cell size is chosen ≈ pen width: large enough that most queries touch
// O(1) cells, small enough that a cell holds few segments.
type inkGrid struct {
	cellSize float64
	cells    map[cellKey][]segment
}

// newInkGrid returns an empty grid with the given cell size. cellSize must
// be > 0 (callers only construct an inkGrid when the filter stage is
// active, i.e. PenWidth > 0).
func newInkGrid(cellSize float64) *inkGrid {
	return &inkGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]segment),
	}
}

// keyFor returns the cell containing point p.
func (g *inkGrid) keyFor(p path.Point) cellKey {
	return cellKey{
		cx: int(math.Floor(p.X / g.cellSize)),
		cy: int(math.Floor(p.Y / g.cellSize)),
	}
}

// insert adds segment (a,b) to every cell its bounding box touches, so a
// later query from any of those cells finds it without a full scan.
//
// Complexity: O(cells touched), typically O(1) for segments shorter than
// a cell.
func (g *inkGrid) insert(a, b path.Point) {
	seg := segment{a: a, b: b}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	minCX := int(math.Floor(minX / g.cellSize))
	maxCX := int(math.Floor(maxX / g.cellSize))
	minCY := int(math.Floor(minY / g.cellSize))
	maxCY := int(math.Floor(maxY / g.cellSize))

	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			k := cellKey{cx: cx, cy: cy}
			g.cells[k] = append(g.cells[k], seg)
		}
	}
}

// within reports whether point q lies within radius of any segment
// previously inserted into g, scanning q's cell and its 8 neighbors — the
// same neighbor-offset idea as gridgraph.NeighborOffsets, generalized from
// 4/8-connectivity on a cell grid to "any segment that could be within
// radius given the cell size".
//
// Complexity: O(segments in the 3x3 neighborhood), amortized O(1) when
// cellSize ~= pen width and ink density is bounded.
func (g *inkGrid) within(q path.Point, radius float64) bool {
	center := g.keyFor(q)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			k := cellKey{cx: center.cx + dx, cy: center.cy + dy}
			for _, seg := range g.cells[k] {
				if distPointSegment(q, seg.a, seg.b) <= radius {
					return true
				}
			}
		}
	}
	return false
}

// distPointSegment returns the minimum distance from point p to segment ab.
//
// Complexity: O(1).
func distPointSegment(p, a, b path.Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return path.Dist(p, a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := path.Point{X: a.X + t*abx, Y: a.Y + t*aby}
	return path.Dist(p, proj)
}
