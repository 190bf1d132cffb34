package contourplot

import (
	"github.com/sirupsen/logrus"

	"github.com/pallosp/contour-plot/sampler"
)

// PlotOption configures a Plot at construction time.
type PlotOption[V comparable] func(*Plot[V])

// WithLogger attaches a logrus logger to the Plot. Every Compute call
// then emits Debug entries around its sampling and refinement phases and
// one Info summary, all tagged with the Plot's correlation id so that
// several Plots writing to one logger stay distinguishable. Without this
// option the Plot logs nothing.
func WithLogger[V comparable](l *logrus.Logger) PlotOption[V] {
	return func(p *Plot[V]) { p.logger = l }
}

// WithSampleCache gives the Plot a private LRU memo of raw evaluator
// results holding up to size entries. The memo outlives individual
// Compute calls, so panning away from a region and back does not
// re-invoke the evaluator for centers it still remembers. A non-positive
// size leaves memoization off.
func WithSampleCache[V comparable](size int) PlotOption[V] {
	return func(p *Plot[V]) { p.cache = sampler.NewCache[V](size) }
}

// WithSharedSampleCache mounts an existing sample memo into the Plot.
// The cache is safe for concurrent use, so several Plots evaluating the
// same function may share one.
func WithSharedSampleCache[V comparable](c *sampler.Cache[V]) PlotOption[V] {
	return func(p *Plot[V]) { p.cache = c }
}

// WithStatsSink registers a callback invoked with the ComputeStats of
// every completed Compute call, after the Plot's own state has been
// swapped in.
func WithStatsSink[V comparable](fn func(ComputeStats)) PlotOption[V] {
	return func(p *Plot[V]) { p.sink = fn }
}

// SquaresOption configures one Squares extraction.
type SquaresOption func(*squaresConfig)

type squaresConfig struct {
	all bool
}

// WithAllSquares lists every leaf of the tree individually instead of
// merging uniform subtrees, which is mainly useful for visualizing the
// refinement structure itself.
func WithAllSquares() SquaresOption {
	return func(c *squaresConfig) { c.all = true }
}
