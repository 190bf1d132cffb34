package core

import "math"

// Node is a square cell of the sampling grid, centered at (X, Y) with side
// Size. Leaf reports whether the cell still holds a single sampled Value;
// once it is subdivided, Leaf flips to false and Value is only meaningful
// as the memoized result of a prior tessellate.Squares compression pass
// (see Store.Set / tessellate.collect).
type Node[V comparable] struct {
	X, Y float64
	Size float64
	Value V
	Leaf bool
}

// ChildCenters returns the centers of the four quadrants of a cell of size
// parentSize centered at (x, y), each of side parentSize/2. Subdivide uses
// it to create children; tessellate's squares pass uses the same formula
// to find them again by key, so the two must never drift apart.
func ChildCenters(x, y, parentSize float64) [4][2]float64 {
	q := parentSize / 4
	return [4][2]float64{
		{x - q, y - q},
		{x + q, y - q},
		{x - q, y + q},
		{x + q, y + q},
	}
}

// CellCenter returns the center, along one axis, of the grid cell of the
// given size that contains coord. Cells are laid out on an absolute grid
// anchored at the coordinate origin, not at the domain's own corner, so
// that centers at different power-of-two sizes never collide (see Keyer).
func CellCenter(coord, size float64) float64 {
	return (math.Floor(coord/size) + 0.5) * size
}

// ParentCenter returns the center, along one axis, of the cell one level
// coarser than a child of size childSize that contains coord.
func ParentCenter(coord, childSize float64) float64 {
	return CellCenter(coord, 2*childSize)
}
