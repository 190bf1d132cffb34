// Package refine drains the LIFO traversal queue produced by sampler,
// subdividing cells near a value boundary until every leaf agrees with
// its neighbors or has reached pixel_size.
//
// What:
//
//   - Refine: pops leaves off a stack, compares each against its four
//     axis neighbors (same-size first, coarser cells as fallback), and
//     subdivides both sides of any disagreement so the boundary
//     converges to pixel resolution. A leaf neighbor more than twice a
//     popped cell's size is split back to the 2:1 ratio regardless of
//     value, which is what re-balances a carried-over tree against the
//     fresh coarse cells a domain grow exposes.
//   - subdivide: splits one leaf into four quadrant children, first
//     recursively splitting any twice-larger leaf across the parent
//     boundary so edge-adjacent leaves never differ by more than a
//     factor of two.
//
// Why:
//
//   - Uniform regions stay at the coarse sampling size while value
//     boundaries alone pay for fine sampling; the 2:1 balance keeps the
//     parent-size neighbor fallback exact, which is what lets neighbor
//     lookup stay a two-probe operation.
//
// Complexity:
//
//   - Refine: O(final nodes), four neighbor probes per popped leaf.
//   - subdivide: O(log(sample_spacing / pixel_size)) recursive
//     pre-splits in the worst case, four evaluator calls per split.
//
// Errors:
//
//   - None. The queue only ever holds nodes created under a validated
//     State; a panicking evaluator unwinds through Refine untouched.
//
// Functions:
//
//   - Refine(state *core.State[V], queue []*core.Node[V], f core.Evaluator[V], cache *sampler.Cache[V]) Result
//     drain the queue and report subdivisions performed and evaluator
//     calls spent
package refine
