// Package invariant holds test-only assertions about a computed State's
// structural correctness: full pixel coverage with no overlap between
// the tiles either extractor emits. Nothing here runs on the Compute()
// hot path; it exists so _test.go files across the module can share one
// oracle instead of re-deriving pixel arithmetic per package.
package invariant

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/pallosp/contour-plot/core"
)

// CoverageReport describes the result of rasterizing a set of square or
// run tiles onto the domain's pixel grid.
type CoverageReport struct {
	Covered  uint
	Expected uint
	Overlaps int
}

// OK reports whether the rasterization covered every pixel exactly once.
func (r CoverageReport) OK() bool {
	return r.Overlaps == 0 && r.Covered == r.Expected
}

// SquareLike exposes a tile's top-left corner and size in domain units,
// letting CheckSquareCoverage work against tessellate.Square without the
// invariant package importing tessellate (and creating an import cycle
// from tessellate's own tests).
type SquareLike interface {
	TopLeft() (x, y, size float64)
}

// RunLike exposes a horizontal run's span and row, letting
// CheckRunCoverage work against tessellate.Run the same way SquareLike
// does for tessellate.Square.
type RunLike interface {
	Span() (x0, x1, y float64)
}

// pixelGrid rasterizes tiles, expressed as (x0, x1, y0, y1) pixel-index
// half-open rectangles, onto a bitset sized to the domain, flagging any
// bit that gets set twice as an overlap.
type pixelGrid struct {
	bits          *bitset.BitSet
	widthInPixels uint
	overlaps      int
}

func newPixelGrid(widthInPixels, heightInPixels uint) *pixelGrid {
	return &pixelGrid{bits: bitset.New(widthInPixels * heightInPixels), widthInPixels: widthInPixels}
}

func (g *pixelGrid) mark(x0, x1, y0, y1 uint) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			idx := y*g.widthInPixels + x
			if g.bits.Test(idx) {
				g.overlaps++
			}
			g.bits.Set(idx)
		}
	}
}

// pixelIndex converts a domain-unit coordinate to a pixel index relative
// to origin, rounding to the nearest grid line so that exact power-of-two
// arithmetic survives the division.
func pixelIndex(coord, origin, pixelSize float64) uint {
	return uint((coord-origin)/pixelSize + 0.5)
}

// CheckSquareCoverage verifies that a list of (x, y, size) squares,
// expressed in domain units, exactly tiles domain at the given pixelSize
// with no gaps or double-covered pixels.
func CheckSquareCoverage(domain core.Rect, pixelSize float64, squares []SquareLike) (CoverageReport, error) {
	wPix := uint(domain.Width / pixelSize)
	hPix := uint(domain.Height / pixelSize)
	grid := newPixelGrid(wPix, hPix)

	for _, sq := range squares {
		x0, y0, size := sq.TopLeft()
		if size <= 0 {
			return CoverageReport{}, fmt.Errorf("invariant: non-positive square size %v", size)
		}
		px0 := pixelIndex(x0, domain.X, pixelSize)
		py0 := pixelIndex(y0, domain.Y, pixelSize)
		n := uint(size / pixelSize)
		grid.mark(px0, px0+n, py0, py0+n)
	}

	return CoverageReport{Covered: grid.bits.Count(), Expected: wPix * hPix, Overlaps: grid.overlaps}, nil
}

// CheckRunCoverage verifies that a list of horizontal runs exactly tiles
// domain at the given pixelSize with no gaps or double-covered pixels.
func CheckRunCoverage(domain core.Rect, pixelSize float64, runs []RunLike) (CoverageReport, error) {
	wPix := uint(domain.Width / pixelSize)
	hPix := uint(domain.Height / pixelSize)
	grid := newPixelGrid(wPix, hPix)

	for _, r := range runs {
		x0, x1, y := r.Span()
		if x1 <= x0 {
			return CoverageReport{}, fmt.Errorf("invariant: non-positive run width [%v, %v)", x0, x1)
		}
		px0 := pixelIndex(x0, domain.X, pixelSize)
		px1 := pixelIndex(x1, domain.X, pixelSize)
		py := uint((y - domain.Y) / pixelSize)
		grid.mark(px0, px1, py, py+1)
	}

	return CoverageReport{Covered: grid.bits.Count(), Expected: wPix * hPix, Overlaps: grid.overlaps}, nil
}
