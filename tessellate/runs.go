package tessellate

import (
	"math"

	"github.com/pallosp/contour-plot/core"
)

// Run is one constant-value horizontal segment of a single pixel row,
// spanning [X0, X1) at height Y.
type Run[V comparable] struct {
	X0, X1, Y float64
	Value     V
}

// Span returns the run's horizontal extent and row center in domain units.
func (r Run[V]) Span() (x0, x1, y float64) {
	return r.X0, r.X1, r.Y
}

// Runs extracts the tessellation of state as row-major horizontal runs,
// one row per pixel_size step of the domain's height.
func Runs[V comparable](state *core.State[V]) []Run[V] {
	var out []Run[V]
	if state.Domain.Width == 0 {
		return out
	}
	rows := int(math.Round(state.Domain.Height / state.PixelSize))
	for k := 0; k < rows; k++ {
		y := state.Domain.Y + (float64(k)+0.5)*state.PixelSize
		out = append(out, rowRuns(state, y)...)
	}
	return out
}

// rowRuns walks a single row left to right, merging consecutive leaves of
// equal value into one run. It finds each next leaf via findNode, which
// is the same bottom-up, doubling-size search used to locate the row's
// first leaf: querying the point exactly on a leaf's right edge resolves
// to the leaf immediately to its east, since CellCenter's floor semantics
// treat a boundary coordinate as the start of the next cell.
func rowRuns[V comparable](state *core.State[V], y float64) []Run[V] {
	var out []Run[V]
	limit := state.Domain.Right()

	x0 := state.Domain.X
	leaf := findNode(state, x0+state.PixelSize/2, y)
	value := leaf.Value
	x1 := x0 + leaf.Size

	for x1 < limit-state.PixelSize/2 {
		next := findNode(state, x1, y)
		if next.Value == value {
			x1 += next.Size
			continue
		}
		out = append(out, Run[V]{X0: x0, X1: x1, Y: y, Value: value})
		x0 = x1
		value = next.Value
		x1 = x0 + next.Size
	}
	out = append(out, Run[V]{X0: x0, X1: x1, Y: y, Value: value})
	return out
}

// findNode locates the leaf covering (x, y) by doubling the candidate
// cell size from pixel_size upward until a stored node is found. Every
// finer cell that was never subdivided has no node in the Store, so the
// first hit is guaranteed to be a leaf: had it been split, a finer
// candidate would have matched first.
func findNode[V comparable](state *core.State[V], x, y float64) *core.Node[V] {
	size := state.PixelSize
	for size <= state.SampleSpacing {
		cx := core.CellCenter(x, size)
		cy := core.CellCenter(y, size)
		if n, ok := state.Store.Get(state.Keyer.Key(cx, cy)); ok {
			return n
		}
		size *= 2
	}
	return nil
}
