package refine

import "github.com/pallosp/contour-plot/core"

// Axis selects which coordinate a neighbor lookup offsets.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// directions enumerates the two signed offsets probed along an axis.
var directions = [2]int{-1, 1}
var axes = [2]Axis{AxisX, AxisY}

// neighbor looks up the node adjacent to (x, y, size) along axis in the
// given direction. The probe point sits half a cell past the shared
// edge; the lookup starts at the same size and doubles the candidate
// cell upward, snapping the probe to the containing cell's center, until
// a stored node is found. In a balanced tree the walk stops within two
// levels: the same-size slot, or the cell one level up when the
// neighboring region is still covered by a single coarser node. Deeper
// steps only ever hit while a carried-over tree is being re-balanced
// against freshly sampled cells at a former domain boundary. Past the
// domain edge every level misses and the lookup fails.
func neighbor[V comparable](state *core.State[V], x, y, size float64, axis Axis, dir int) (*core.Node[V], bool) {
	px, py := x, y
	if axis == AxisX {
		px = x + float64(dir)*size
	} else {
		py = y + float64(dir)*size
	}
	for s := size; s <= state.SampleSpacing; s *= 2 {
		cx := core.CellCenter(px, s)
		cy := core.CellCenter(py, s)
		if n, ok := state.Store.Get(state.Keyer.Key(cx, cy)); ok {
			return n, true
		}
	}
	return nil, false
}
