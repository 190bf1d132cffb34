package tessellate

import "github.com/pallosp/contour-plot/core"

// Square is one axis-aligned tile of the compressed output, centered at
// (X, Y) with side Size.
type Square[V comparable] struct {
	X, Y, Size float64
	Value      V
}

// TopLeft returns the square's top-left corner and size in domain units.
func (s Square[V]) TopLeft() (x, y, size float64) {
	return s.X - s.Size/2, s.Y - s.Size/2, s.Size
}

// Squares extracts the tessellation of state as a list of squares. When
// all is false (the common case), every subtree whose leaves all share
// one value is emitted as a single square covering that subtree; a root-level cell
// whose descendants disagree is emitted as however many uniform
// sub-squares it decomposes into, never merged above the point of
// disagreement. When all is true, every leaf is emitted individually with
// no merging, which is mainly useful for visualizing the tree itself.
func Squares[V comparable](state *core.State[V], all bool) []Square[V] {
	var out []Square[V]

	if all {
		state.Store.Range(func(_ int64, n *core.Node[V]) bool {
			if n.Leaf {
				out = append(out, Square[V]{X: n.X, Y: n.Y, Size: n.Size, Value: n.Value})
			}
			return true
		})
		return out
	}

	var roots []*core.Node[V]
	state.Store.Range(func(_ int64, n *core.Node[V]) bool {
		if n.Size == state.SampleSpacing {
			roots = append(roots, n)
		}
		return true
	})

	for _, root := range roots {
		v, uniform := collect(state, root, &out)
		if uniform {
			out = append(out, Square[V]{X: root.X, Y: root.Y, Size: root.Size, Value: v})
		}
	}
	return out
}

// collect recursively compresses the subtree rooted at n, appending any
// uniform child subtree it cannot merge further up into out, and returns
// n's own value and whether its whole subtree is uniform. As a side
// effect, it stores the merged value onto n itself. The stored value is
// not read back here: every call, including a later Squares call over
// the same State, walks the whole subtree again.
func collect[V comparable](state *core.State[V], n *core.Node[V], out *[]Square[V]) (V, bool) {
	if n.Leaf {
		return n.Value, true
	}

	centers := core.ChildCenters(n.X, n.Y, n.Size)
	var childValues [4]V
	var childUniform [4]bool
	var children [4]*core.Node[V]
	for i, c := range centers {
		child, ok := state.Store.Get(state.Keyer.Key(c[0], c[1]))
		if !ok {
			var zero V
			return zero, false
		}
		children[i] = child
		childValues[i], childUniform[i] = collect(state, child, out)
	}

	allAgree := childUniform[0]
	for i := 1; i < 4 && allAgree; i++ {
		allAgree = childUniform[i] && childValues[i] == childValues[0]
	}

	if !allAgree {
		for i, child := range children {
			if childUniform[i] {
				*out = append(*out, Square[V]{X: child.X, Y: child.Y, Size: child.Size, Value: childValues[i]})
			}
		}
		var zero V
		return zero, false
	}

	n.Value = childValues[0]
	return childValues[0], true
}
