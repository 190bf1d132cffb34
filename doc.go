// Package contourplot adaptively samples a function f(x, y) over a
// rectangular domain and tessellates the plane into regions where f is
// locally constant.
//
// The engine builds a balanced quadtree: a coarse grid pass samples f at
// every sample_spacing-aligned cell center, then a refinement pass
// subdivides cells near value boundaries down to pixel_size, keeping
// edge-adjacent cells within a 2:1 size ratio of each other. Successive
// Compute calls on one Plot reuse the previous tree wherever the domain
// still overlaps, so panning and zooming only pay for newly exposed
// area.
//
// Results come out in two shapes:
//
//	Squares — axis-aligned tiles, with uniform subtrees merged bottom-up
//	          into a single tile (or every raw leaf, on request)
//	Runs    — one-pixel-tall horizontal segments of constant value,
//	          emitted row by row, top to bottom
//
// Quick example:
//
//	plot := contourplot.NewPlot(func(x, y float64) bool {
//		return x*x+y*y < 1
//	})
//	if _, err := plot.Compute(contourplot.Rect{X: -2, Y: -2, Width: 4, Height: 4}, 1, 0.0625); err != nil {
//		// invalid spacing, pixel size, or domain
//	}
//	for _, sq := range plot.Squares() {
//		// sq.X, sq.Y is the tile center; sq.Size its edge; sq.Value is f there
//	}
//
// The work happens in four subpackages wired together by Plot:
//
//	core/       — Rect, Node, State, key arithmetic, the node store
//	sampler/    — the coarse grid pass, cross-computation reuse, sample memo
//	refine/     — the LIFO refinement traversal and balance repair
//	tessellate/ — the Squares and Runs extractors
//
// A Plot is not safe for concurrent Compute calls; multiple Plots may
// coexist freely and may share one sampler.Cache.
package contourplot
