package refine

import (
	"github.com/pallosp/contour-plot/core"
	"github.com/pallosp/contour-plot/sampler"
)

// outwardSign returns the direction, +1 or -1, from coord away from the
// center of the parent cell that contains it. Along that direction lies
// the parent's own boundary, and therefore the only side on which a
// neighbor twice the node's size can exist; toward the parent center the
// same-parent sibling always occupies the adjacent slot at the node's
// own size.
func outwardSign(coord, parentCenter float64) int {
	if parentCenter > coord {
		return -1
	}
	return 1
}

// subdivide splits a leaf n of size > pixel_size into four children,
// evaluating the function at each new center. Before splitting, it looks
// outward across n's parent boundary along each axis: if the cell there
// is still a leaf twice n's size, splitting n alone would put its s/2
// children edge-to-edge with a 2s cell, so that larger neighbor is
// subdivided first. The recursion bottoms out at the coarse grid, whose
// cells all share one size.
func subdivide[V comparable](state *core.State[V], n *core.Node[V], f core.Evaluator[V], cache *sampler.Cache[V], stack *[]*core.Node[V], res *Result) {
	if !n.Leaf || n.Size <= state.PixelSize {
		return
	}

	s := n.Size
	px := core.ParentCenter(n.X, s)
	py := core.ParentCenter(n.Y, s)
	dirX := outwardSign(n.X, px)
	dirY := outwardSign(n.Y, py)

	if nb, ok := neighbor(state, n.X, n.Y, s, AxisX, dirX); ok && nb.Leaf && nb.Size > s {
		subdivide(state, nb, f, cache, stack, res)
	}
	if nb, ok := neighbor(state, n.X, n.Y, s, AxisY, dirY); ok && nb.Leaf && nb.Size > s {
		subdivide(state, nb, f, cache, stack, res)
	}

	n.Leaf = false
	res.Subdivisions++
	childSize := s / 2
	for _, c := range core.ChildCenters(n.X, n.Y, s) {
		v := sampler.Evaluate(f, cache, c[0], c[1], childSize, &res.NewCalls)
		child := &core.Node[V]{X: c[0], Y: c[1], Size: childSize, Value: v, Leaf: true}
		state.Store.Set(state.Keyer.Key(c[0], c[1]), child)
		*stack = append(*stack, child)
	}
}
