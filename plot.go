package contourplot

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pallosp/contour-plot/core"
	"github.com/pallosp/contour-plot/refine"
	"github.com/pallosp/contour-plot/sampler"
	"github.com/pallosp/contour-plot/tessellate"
)

// Rect is the axis-aligned rectangle type consumed by Compute,
// re-exported so callers of the facade need only this package.
type Rect = core.Rect

// ComputeStats summarizes one Compute call.
type ComputeStats struct {
	// Size is the total node count of the tree, leaves and interior alike.
	Size int

	// NewCalls is how many times the evaluator actually ran during the
	// call; samples served from a memo cache or carried over from the
	// previous computation do not count.
	NewCalls int

	// NewArea is the freshly sampled area in pixel units: the part of the
	// domain that was not carried over from the previous computation,
	// divided by pixel_size squared.
	NewArea float64

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration
}

// Plot owns one evaluator and the quadtree of its samples. Successive
// Compute calls at the same spacing and pixel size reuse the previous
// tree wherever the domains overlap. A Plot is not safe for concurrent
// Compute calls; create one Plot per goroutine instead, optionally
// sharing a sampler.Cache between them.
type Plot[V comparable] struct {
	f      core.Evaluator[V]
	id     string
	logger *logrus.Logger
	cache  *sampler.Cache[V]
	sink   func(ComputeStats)

	state *core.State[V]
	stats ComputeStats
}

// NewPlot creates a Plot for the given evaluator. The zero configuration
// is silent and memo-free; see PlotOption for what can be switched on.
func NewPlot[V comparable](f func(x, y float64) V, opts ...PlotOption[V]) *Plot[V] {
	p := &Plot[V]{f: f, id: uuid.NewString()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Compute samples the evaluator across domain at the given coarse grid
// spacing, refines the tree near value boundaries down to pixelSize, and
// replaces the Plot's current tessellation with the result. The domain
// is first extended outward to sampleSpacing-aligned edges; Domain()
// reports the rectangle actually covered. Compute returns the Plot
// itself so calls can be chained into an extractor.
//
// sampleSpacing and pixelSize must both be positive powers of two, and
// the domain's dimensions must be non-negative; violations surface as
// core.ErrInvalidSpacing, core.ErrInvalidPixelSize, core.ErrInvalidDomain
// or core.ErrKeyRangeOverflow with the Plot left untouched. A panic in
// the evaluator is not recovered and unwinds to the caller.
func (p *Plot[V]) Compute(domain Rect, sampleSpacing, pixelSize float64) (*Plot[V], error) {
	start := time.Now()
	next, err := core.NewState[V](domain, sampleSpacing, pixelSize)
	if err != nil {
		return nil, fmt.Errorf("contourplot: Compute: %w", err)
	}

	log := p.computeLogger(next)
	if log != nil {
		log.Debug("sampling coarse grid")
	}
	sres := sampler.Sample(next, p.state, p.f, p.cache)
	if log != nil {
		log.WithFields(logrus.Fields{
			"carried":   sres.Carried,
			"queued":    len(sres.Queue),
			"new_calls": sres.NewCalls,
		}).Debug("coarse grid pass complete")
	}

	var rres refine.Result
	if next.PixelSize < next.SampleSpacing {
		if log != nil {
			log.Debug("refining value boundaries")
		}
		rres = refine.Refine(next, sres.Queue, p.f, p.cache)
		if log != nil {
			log.WithFields(logrus.Fields{
				"subdivisions": rres.Subdivisions,
				"new_calls":    rres.NewCalls,
			}).Debug("refinement complete")
		}
	}

	p.state = next
	p.stats = ComputeStats{
		Size:     next.Store.Len(),
		NewCalls: sres.NewCalls + rres.NewCalls,
		NewArea:  sres.NewArea / (next.PixelSize * next.PixelSize),
		Elapsed:  time.Since(start),
	}
	if log != nil {
		log.WithFields(logrus.Fields{
			"nodes":     p.stats.Size,
			"new_calls": p.stats.NewCalls,
			"new_area":  p.stats.NewArea,
			"elapsed":   p.stats.Elapsed,
		}).Info("compute finished")
	}
	if p.sink != nil {
		p.sink(p.stats)
	}
	return p, nil
}

// computeLogger returns the contextual log entry for one Compute call,
// or nil when the Plot was built without a logger.
func (p *Plot[V]) computeLogger(st *core.State[V]) *logrus.Entry {
	if p.logger == nil {
		return nil
	}
	return p.logger.WithFields(logrus.Fields{
		"plot":       p.id,
		"domain":     st.Domain,
		"spacing":    st.SampleSpacing,
		"pixel_size": st.PixelSize,
	})
}

// Domain returns the aligned rectangle the last Compute call actually
// covered, or the zero Rect before any Compute.
func (p *Plot[V]) Domain() Rect {
	if p.state == nil {
		return Rect{}
	}
	return p.state.Domain
}

// PixelSize returns the effective pixel size of the last Compute call
// (after clamping up to sample spacing), or 0 before any Compute.
func (p *Plot[V]) PixelSize() float64 {
	if p.state == nil {
		return 0
	}
	return p.state.PixelSize
}

// ComputeStats returns the statistics of the last Compute call.
func (p *Plot[V]) ComputeStats() ComputeStats {
	return p.stats
}

// Squares returns the current tessellation as axis-aligned squares, by
// default with uniform subtrees merged into single tiles. Pass
// WithAllSquares to list every leaf unmerged instead. The compressed
// listing's order is unspecified; sort before comparing.
func (p *Plot[V]) Squares(opts ...SquaresOption) []tessellate.Square[V] {
	if p.state == nil {
		return nil
	}
	var cfg squaresConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return tessellate.Squares(p.state, cfg.all)
}

// Runs returns the current tessellation as one-pixel-tall horizontal
// segments of constant value, sorted by row top to bottom and left to
// right within a row.
func (p *Plot[V]) Runs() []tessellate.Run[V] {
	if p.state == nil {
		return nil
	}
	return tessellate.Runs(p.state)
}

// Leaves returns every leaf node of the current tree in unspecified
// order. It exists chiefly for tests and debug tooling; rendering should
// go through Squares or Runs.
func (p *Plot[V]) Leaves() []*core.Node[V] {
	if p.state == nil {
		return nil
	}
	var out []*core.Node[V]
	p.state.Store.Range(func(_ int64, n *core.Node[V]) bool {
		if n.Leaf {
			out = append(out, n)
		}
		return true
	})
	return out
}
