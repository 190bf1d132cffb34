package refine

import (
	"github.com/pallosp/contour-plot/core"
	"github.com/pallosp/contour-plot/sampler"
)

// Result is the outcome of draining a traversal queue: the number of
// subdivide calls performed plus the evaluator calls they cost, folded
// into ComputeStats by the Plot facade.
type Result struct {
	Subdivisions int
	NewCalls     int
}

// Refine drains queue as a LIFO stack. For each popped leaf it looks up
// its same-size neighbor (or, failing that, the coarser cell covering
// that slot) along each of the four directions. At pixel_size, only a
// larger disagreeing neighbor
// can still need splitting, since nothing finer exists to compare
// against. Above pixel_size, a leaf subdivides itself whenever any
// neighbor disagrees, after first subdividing whichever disagreeing
// neighbors are themselves still leaves, so that both sides of a value
// boundary converge to the same resolution.
func Refine[V comparable](state *core.State[V], queue []*core.Node[V], f core.Evaluator[V], cache *sampler.Cache[V]) Result {
	stack := append([]*core.Node[V]{}, queue...)
	var res Result

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !n.Leaf {
			continue
		}

		if n.Size <= state.PixelSize {
			for _, axis := range axes {
				for _, dir := range directions {
					nb, ok := balancedNeighbor(state, n, axis, dir, f, cache, &stack, &res)
					if ok && nb.Leaf && nb.Size > n.Size && nb.Value != n.Value {
						subdivide(state, nb, f, cache, &stack, &res)
					}
				}
			}
			continue
		}

		disagrees := false
		var toSplit []*core.Node[V]
		for _, axis := range axes {
			for _, dir := range directions {
				nb, ok := balancedNeighbor(state, n, axis, dir, f, cache, &stack, &res)
				if ok && nb.Value != n.Value {
					disagrees = true
					if nb.Leaf {
						toSplit = append(toSplit, nb)
					}
				}
			}
		}
		if !disagrees {
			continue
		}

		for _, nb := range toSplit {
			subdivide(state, nb, f, cache, &stack, &res)
		}
		subdivide(state, n, f, cache, &stack, &res)
	}

	return res
}

// balancedNeighbor returns n's neighbor along axis, first splitting any
// leaf there more than twice n's size until the 2:1 ratio holds again.
// A tree built from scratch never needs the split; it fires while a
// carried-over tree meets freshly sampled cells across a former domain
// boundary, where the carried side may already be refined arbitrarily
// deep.
func balancedNeighbor[V comparable](state *core.State[V], n *core.Node[V], axis Axis, dir int, f core.Evaluator[V], cache *sampler.Cache[V], stack *[]*core.Node[V], res *Result) (*core.Node[V], bool) {
	for {
		nb, ok := neighbor(state, n.X, n.Y, n.Size, axis, dir)
		if !ok || !nb.Leaf || nb.Size <= 2*n.Size {
			return nb, ok
		}
		subdivide(state, nb, f, cache, stack, res)
	}
}
