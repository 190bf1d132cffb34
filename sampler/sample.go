package sampler

import "github.com/pallosp/contour-plot/core"

// Result is the outcome of one coarse grid pass: the leaves refine should
// start its traversal from, plus the evaluator-call and newly-sampled-area
// counters Compute() folds into ComputeStats.
type Result[V comparable] struct {
	Queue    []*core.Node[V]
	NewCalls int
	NewArea  float64
	Carried  int
}

// Sample fills next's Store with one leaf per sample_spacing cell across
// its domain. When prev is non-nil, has the same spacing and pixel size,
// and overlaps next's domain, surviving nodes are carried over first via
// Carry and only the cells Carry did not already cover are freshly
// evaluated. cache, if non-nil, is consulted before invoking f and
// updated after, independent of what Carry reused.
func Sample[V comparable](next, prev *core.State[V], f core.Evaluator[V], cache *Cache[V]) Result[V] {
	var requeue []*core.Node[V]
	if prev != nil &&
		prev.SampleSpacing == next.SampleSpacing &&
		prev.PixelSize == next.PixelSize &&
		core.OverlapArea(next.Domain, prev.Domain) > 0 {
		requeue = Carry(next, prev)
	}

	var res Result[V]
	res.Carried = next.Store.Len()
	s := next.SampleSpacing
	top, left := next.Domain.Y, next.Domain.X
	bottom, right := next.Domain.Bottom(), next.Domain.Right()

	for y := top + s/2; y < bottom; y += s {
		for x := left + s/2; x < right; x += s {
			key := next.Keyer.Key(x, y)
			if _, ok := next.Store.Get(key); ok {
				continue
			}
			v := Evaluate(f, cache, x, y, s, &res.NewCalls)
			n := &core.Node[V]{X: x, Y: y, Size: s, Value: v, Leaf: true}
			next.Store.Set(key, n)
			res.Queue = append(res.Queue, n)
			res.NewArea += s * s
		}
	}

	res.Queue = append(res.Queue, requeue...)
	return res
}
