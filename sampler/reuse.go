package sampler

import "github.com/pallosp/contour-plot/core"

// distanceToDomainEdge returns the minimum distance from the edge of a
// square footprint centered at (x, y) with side size to any edge of
// domain. A negative value means part of the footprint lies outside.
func distanceToDomainEdge(x, y, size float64, domain core.Rect) float64 {
	half := size / 2
	left := (x - half) - domain.X
	right := domain.Right() - (x + half)
	top := (y - half) - domain.Y
	bottom := domain.Bottom() - (y + half)
	d := left
	if right < d {
		d = right
	}
	if top < d {
		d = top
	}
	if bottom < d {
		d = bottom
	}
	return d
}

// Carry copies every node of prev whose footprint still belongs to next's
// domain into next's Store, keyed under next's own Keyer. Both domains
// are aligned to the same absolute sample_spacing grid and every node's
// footprint sits on the power-of-two subgrid of its own size, so a
// footprint is either wholly inside the new domain or wholly outside it,
// never straddling an edge; outside means the node and its whole subtree
// are dropped as prev's iteration reaches them. Carried nodes keep any
// refinement they already have, including right at the new boundary.
// That is deliberate: a shrink must not forget the fine structure it
// already paid for. Leaves near the new domain edge come back for
// re-queueing, since a neighbor of theirs may have been dropped or may
// be freshly sampled on the other side; so do leaves near the previous
// domain edge, because a grow puts fresh coarse cells across that seam
// while the carried side may already be refined to pixel depth there,
// and the refinement pass restores the 2:1 balance from the re-queued
// side.
func Carry[V comparable](next, prev *core.State[V]) []*core.Node[V] {
	var requeue []*core.Node[V]
	if prev == nil {
		return requeue
	}

	prev.Store.Range(func(_ int64, n *core.Node[V]) bool {
		d := distanceToDomainEdge(n.X, n.Y, n.Size, next.Domain)
		if d < 0 {
			return true
		}

		next.Store.Set(next.Keyer.Key(n.X, n.Y), n)
		if !n.Leaf {
			return true
		}
		seam := distanceToDomainEdge(n.X, n.Y, n.Size, prev.Domain)
		if d < n.Size || seam < n.Size {
			requeue = append(requeue, n)
		}
		return true
	})

	return requeue
}
