package core

import "math"

// maxSafeKey bounds the packing coefficients to 2^53, the largest range
// in which float64 arithmetic is exact on integers. Keys are stored as
// int64, but they are computed in float64 first, so coefficients past
// this bound would silently corrupt keys long before int64 overflowed.
const maxSafeKey = float64(1 << 53)

// Keyer packs a (x, y) center coordinate into the single integer key used
// to address Store. Every admissible node size in a State is a power-of-two
// multiple of pixel_size, and for that family of sizes the packing below
// never lets two distinct (center, size) pairs collide: the binary
// expansion of each cell's center has a 2-adic valuation that is unique to
// its size level, so no amount of panning or zooming can alias one node's
// key onto another's.
type Keyer struct {
	CX, CY, C0 float64
}

// NewKeyer derives the packing coefficients for a domain already aligned
// to sampleSpacing and a given pixelSize, and rejects any combination whose
// constant term would push packed keys outside the safe integer range.
func NewKeyer(domain Rect, pixelSize float64) (Keyer, error) {
	cx := 2 / pixelSize
	cy := cx * (domain.Width / pixelSize)
	c0 := -cx*domain.X - cy*domain.Y
	if math.Abs(c0) > maxSafeKey/2 {
		return Keyer{}, ErrKeyRangeOverflow
	}
	return Keyer{CX: cx, CY: cy, C0: c0}, nil
}

// Key packs a center coordinate into its node-store key.
func (k Keyer) Key(x, y float64) int64 {
	return int64(math.Floor(k.C0 + k.CX*x + k.CY*y))
}
