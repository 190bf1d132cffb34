// Package sampler performs the coarse grid pass of a computation:
// evaluating the plotted function at every sample_spacing-aligned cell
// center, carrying nodes over from a previous State, and memoizing raw
// samples across computations.
//
// What:
//
//   - Sample: fills a State's store with one size-sample_spacing leaf per
//     grid cell, reusing the previous State's nodes wherever the carry
//     pass already covered a cell, and returns the traversal queue for
//     refine together with the new-call and new-area counters.
//   - Carry: copies every previous-state node whose footprint still lies
//     inside the new domain, re-keyed under the new State, and reports
//     which leaves need re-examination near the new domain edge or the
//     seam left behind by the previous one.
//   - Cache[V]: an LRU memo of raw evaluator results keyed by
//     (x, y, size), surviving across any number of computations.
//   - Evaluate: the single choke point through which both this package
//     and refine invoke the evaluator, so memo hits never inflate the
//     new-call statistics.
//
// Why:
//
//   - Panning and zooming recompute overlapping domains over and over;
//     carrying the store forward makes the overlap free, and the memo
//     keeps even non-adjacent revisits from re-invoking a costly
//     evaluator.
//
// Complexity:
//
//   - Sample: O(cells in the aligned domain), Memory O(cells).
//   - Carry: O(previous store size).
//   - Cache Get/Put: O(1).
//
// Errors:
//
//   - None. Parameter validation happens in core.NewState before any
//     sampling starts; a panicking evaluator unwinds through Sample
//     untouched.
//
// Functions:
//
//   - Sample(next, prev *core.State[V], f core.Evaluator[V], cache *Cache[V]) Result[V]
//   - Carry(next, prev *core.State[V]) []*core.Node[V]
//   - NewCache(size int) *Cache[V]
//   - Evaluate(f, cache, x, y, size, newCalls) V
package sampler
