// Package tessellate turns a computed State into the two output shapes
// a plotter consumes: compressed axis-aligned squares and row-by-row
// constant-value horizontal runs.
//
// What:
//
//   - Squares: walks the tree top-down from every coarse root, merging
//     uniform subtrees bottom-up into their largest common ancestor, or
//     lists every raw leaf when asked for the uncompressed view.
//   - Runs: walks each pixel row left to right, locating the leaf under
//     every row position by doubling-size key probes and merging
//     consecutive equal-valued leaves into one segment.
//
// Why:
//
//   - Renderers want few large tiles, not thousands of pixel squares;
//     compression collapses everything the refinement never needed to
//     split. Runs give scanline consumers the same tessellation in
//     strictly sorted row-major order.
//
// Complexity:
//
//   - Squares: O(store size); merged values are cached back onto
//     interior nodes as the compressed representative of their subtree.
//   - Runs: O(rows × leaves per row), each step up to
//     log2(sample_spacing / pixel_size) + 1 key probes.
//
// Errors:
//
//   - None. Both extractors read a store that sampling and refinement
//     left covering the domain exactly.
//
// Functions:
//
//   - Squares(state *core.State[V], all bool) []Square[V]
//   - Runs(state *core.State[V]) []Run[V]
package tessellate
