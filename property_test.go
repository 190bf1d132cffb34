package contourplot_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contourplot "github.com/pallosp/contour-plot"
	"github.com/pallosp/contour-plot/core"
	"github.com/pallosp/contour-plot/internal/invariant"
	"github.com/pallosp/contour-plot/tessellate"
)

// radialBands is the workhorse evaluator of the property tests: its
// value boundaries are curved, so they cross cells at every size level
// and exercise subdivision, balance repair and run merging at once.
func radialBands(x, y float64) int {
	return int(math.Floor(math.Hypot(x, y) / 2))
}

func halfPlane(x, y float64) int {
	if x+2*y > 3 {
		return 1
	}
	return 0
}

func asSquareLike[V comparable](squares []tessellate.Square[V]) []invariant.SquareLike {
	out := make([]invariant.SquareLike, len(squares))
	for i, s := range squares {
		out[i] = s
	}
	return out
}

func asRunLike[V comparable](runs []tessellate.Run[V]) []invariant.RunLike {
	out := make([]invariant.RunLike, len(runs))
	for i, r := range runs {
		out[i] = r
	}
	return out
}

// assertTessellationInvariants checks the structural properties every
// computed plot must satisfy, regardless of evaluator or parameters:
// exact pixel coverage by both extractors, leaf values matching the
// evaluator, and the 2:1 balance between edge-adjacent leaves.
func assertTessellationInvariants(t *testing.T, plot *contourplot.Plot[int], f func(x, y float64) int) {
	t.Helper()
	domain := plot.Domain()
	pixel := plot.PixelSize()

	all := plot.Squares(contourplot.WithAllSquares())
	report, err := invariant.CheckSquareCoverage(domain, pixel, asSquareLike(all))
	require.NoError(t, err)
	assert.True(t, report.OK(), "leaf coverage: %+v", report)

	compressed := plot.Squares()
	report, err = invariant.CheckSquareCoverage(domain, pixel, asSquareLike(compressed))
	require.NoError(t, err)
	assert.True(t, report.OK(), "compressed coverage: %+v", report)

	runs := plot.Runs()
	report, err = invariant.CheckRunCoverage(domain, pixel, asRunLike(runs))
	require.NoError(t, err)
	assert.True(t, report.OK(), "run coverage: %+v", report)

	leaves := plot.Leaves()
	for _, leaf := range leaves {
		assert.Equal(t, f(leaf.X, leaf.Y), leaf.Value, "leaf at (%v,%v)", leaf.X, leaf.Y)
	}

	assertBalance(t, leaves)
}

// assertBalance verifies that any two leaves sharing an edge differ in
// size by at most a factor of two. The pairwise scan is quadratic but
// the property-test trees stay small enough for that to be irrelevant.
func assertBalance(t *testing.T, leaves []*core.Node[int]) {
	t.Helper()
	const eps = 1e-9
	for i, a := range leaves {
		for _, b := range leaves[i+1:] {
			gap := (a.Size + b.Size) / 2
			touchX := math.Abs(a.X-b.X)-gap > -eps && math.Abs(a.X-b.X)-gap < eps
			touchY := math.Abs(a.Y-b.Y)-gap > -eps && math.Abs(a.Y-b.Y)-gap < eps
			overlapX := math.Abs(a.X-b.X) < gap-eps
			overlapY := math.Abs(a.Y-b.Y) < gap-eps
			if (touchX && overlapY) || (touchY && overlapX) {
				ratio := a.Size / b.Size
				assert.Contains(t, []float64{0.5, 1, 2}, ratio,
					"balance violated between (%v,%v,%v) and (%v,%v,%v)",
					a.X, a.Y, a.Size, b.X, b.Y, b.Size)
			}
		}
	}
}

func TestTessellationInvariantsAcrossParameters(t *testing.T) {
	evaluators := map[string]func(x, y float64) int{
		"radial":    radialBands,
		"halfplane": halfPlane,
	}
	domains := []contourplot.Rect{
		{X: 0, Y: 0, Width: 8, Height: 8},
		{X: -5, Y: -3, Width: 11, Height: 7},
		{X: 2, Y: 2, Width: 1, Height: 9},
	}

	for name, f := range evaluators {
		for _, domain := range domains {
			for _, spacing := range []float64{1, 2, 4} {
				for _, pixel := range []float64{0.5, 1, spacing} {
					tag := fmt.Sprintf("%s/%+v/s=%v/p=%v", name, domain, spacing, pixel)
					t.Run(tag, func(t *testing.T) {
						plot := contourplot.NewPlot(f)
						_, err := plot.Compute(domain, spacing, pixel)
						require.NoError(t, err)
						assertTessellationInvariants(t, plot, f)
					})
				}
			}
		}
	}
}

func TestCompressedSquaresAreUniform(t *testing.T) {
	plot := contourplot.NewPlot(radialBands)
	_, err := plot.Compute(contourplot.Rect{X: -6, Y: -6, Width: 12, Height: 12}, 4, 1)
	require.NoError(t, err)

	compressed := plot.Squares()
	leaves := plot.Leaves()
	for _, sq := range compressed {
		if sq.Size <= plot.PixelSize() {
			continue
		}
		x0, y0, size := sq.TopLeft()
		for _, leaf := range leaves {
			if leaf.X > x0 && leaf.X < x0+size && leaf.Y > y0 && leaf.Y < y0+size {
				assert.Equal(t, sq.Value, leaf.Value,
					"square at (%v,%v,%v) merged a disagreeing leaf at (%v,%v)",
					sq.X, sq.Y, sq.Size, leaf.X, leaf.Y)
			}
		}
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	domain := contourplot.Rect{X: -4, Y: -4, Width: 8, Height: 8}
	plot := contourplot.NewPlot(radialBands)
	_, err := plot.Compute(domain, 2, 0.5)
	require.NoError(t, err)

	firstSquares := plot.Squares(contourplot.WithAllSquares())
	sortSquares(firstSquares)
	firstRuns := plot.Runs()

	_, err = plot.Compute(domain, 2, 0.5)
	require.NoError(t, err)

	secondSquares := plot.Squares(contourplot.WithAllSquares())
	sortSquares(secondSquares)

	assert.Zero(t, plot.ComputeStats().NewCalls)
	assert.Zero(t, plot.ComputeStats().NewArea)
	assert.Equal(t, firstSquares, secondSquares)
	assert.Equal(t, firstRuns, plot.Runs())
}

func TestContainedRecomputeSamplesNothingNew(t *testing.T) {
	plot := contourplot.NewPlot(radialBands)
	_, err := plot.Compute(contourplot.Rect{X: -8, Y: -8, Width: 16, Height: 16}, 4, 1)
	require.NoError(t, err)

	_, err = plot.Compute(contourplot.Rect{X: -4, Y: -4, Width: 8, Height: 8}, 4, 1)
	require.NoError(t, err)

	stats := plot.ComputeStats()
	assert.Zero(t, stats.NewArea)
	assert.Zero(t, stats.NewCalls)
	assertTessellationInvariants(t, plot, radialBands)
}

func TestShrinkMatchesScratchWhenBoundaryIsInterior(t *testing.T) {
	// The disc's value boundary lies wholly inside the shrunken domain,
	// so no refinement from the trimmed-off margin can leak differences
	// into the carried region.
	disc := func(x, y float64) int {
		if x*x+y*y < 4 {
			return 1
		}
		return 0
	}
	inner := contourplot.Rect{X: -4, Y: -4, Width: 8, Height: 8}

	panned := contourplot.NewPlot(disc)
	_, err := panned.Compute(contourplot.Rect{X: -8, Y: -8, Width: 16, Height: 16}, 2, 0.5)
	require.NoError(t, err)
	_, err = panned.Compute(inner, 2, 0.5)
	require.NoError(t, err)

	scratch := contourplot.NewPlot(disc)
	_, err = scratch.Compute(inner, 2, 0.5)
	require.NoError(t, err)

	assert.Equal(t, scratch.Runs(), panned.Runs())
}

func TestGrowRebalancesAcrossOldBoundary(t *testing.T) {
	// With spacing 8 and pixel size 1 the carried tree is refined three
	// levels below the fresh coarse cells a grow exposes; the seam along
	// the former right edge must come back to the 2:1 balance.
	plot := contourplot.NewPlot(radialBands)
	_, err := plot.Compute(contourplot.Rect{X: -8, Y: -8, Width: 16, Height: 16}, 8, 1)
	require.NoError(t, err)
	_, err = plot.Compute(contourplot.Rect{X: -8, Y: -8, Width: 24, Height: 16}, 8, 1)
	require.NoError(t, err)
	assertTessellationInvariants(t, plot, radialBands)
}

func TestRandomizedPanningKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	plot := contourplot.NewPlot(radialBands)

	x, y := -4.0, -4.0
	for i := 0; i < 100; i++ {
		x += float64(rng.Intn(9) - 4)
		y += float64(rng.Intn(9) - 4)
		w := float64(4 + rng.Intn(9))
		h := float64(4 + rng.Intn(9))

		_, err := plot.Compute(contourplot.Rect{X: x, Y: y, Width: w, Height: h}, 2, 1)
		require.NoError(t, err, "pan step %d", i)
		assertTessellationInvariants(t, plot, radialBands)
	}
}

func TestRandomizedPanningAtDeepRefinement(t *testing.T) {
	// Same walk at a 4:1 spacing-to-pixel ratio, where restoring balance
	// across grow seams takes more than one subdivision level.
	rng := rand.New(rand.NewSource(7))
	plot := contourplot.NewPlot(radialBands)

	x, y := -6.0, -6.0
	for i := 0; i < 30; i++ {
		x += float64(rng.Intn(9) - 4)
		y += float64(rng.Intn(9) - 4)
		w := float64(8 + rng.Intn(9))
		h := float64(8 + rng.Intn(9))

		_, err := plot.Compute(contourplot.Rect{X: x, Y: y, Width: w, Height: h}, 4, 1)
		require.NoError(t, err, "pan step %d", i)
		assertTessellationInvariants(t, plot, radialBands)
	}
}
