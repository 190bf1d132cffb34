package core

import "math"

// Rect is an axis-aligned rectangle in domain coordinates. X and Y are the
// top-left corner; Width and Height extend right and down from it.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies within the rectangle,
// including its edges.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// AlignOutward returns the smallest rectangle that contains r and whose
// edges fall on multiples of spacing, measured from the coordinate origin.
// Compute() uses this to snap a caller-supplied domain onto the coarse
// sampling grid before any key arithmetic is derived from it.
func AlignOutward(r Rect, spacing float64) Rect {
	left := math.Floor(r.X/spacing) * spacing
	right := math.Ceil(r.Right()/spacing) * spacing
	top := math.Floor(r.Y/spacing) * spacing
	bottom := math.Ceil(r.Bottom()/spacing) * spacing
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// OverlapArea returns the area shared by a and b, or 0 if they do not
// overlap. Compute() uses it to decide whether a previous State's node
// store is worth carrying into a new one.
func OverlapArea(a, b Rect) float64 {
	left := math.Max(a.X, b.X)
	right := math.Min(a.Right(), b.Right())
	top := math.Max(a.Y, b.Y)
	bottom := math.Min(a.Bottom(), b.Bottom())
	if right <= left || bottom <= top {
		return 0
	}
	return (right - left) * (bottom - top)
}

// IsPowerOfTwo reports whether x is a positive power of two, within a
// tolerance tight enough to absorb float64 rounding of values like 0.125.
func IsPowerOfTwo(x float64) bool {
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return false
	}
	l := math.Log2(x)
	return math.Abs(l-math.Round(l)) < 1e-9
}
