// Package atomgraph reconstructs an attributed atomic graph from a pixel
// mask and an intensity image, and computes its bond vectors.
//
// What:
//
//   - Graph is a small, concurrency-safe, undirected graph whose nodes are
//     detected atoms and whose edges join atoms closer than a cutoff.
//   - Extractor turns (mask, image, pixel scale) into a Graph plus the
//     per-component region table it was built from.
//   - ComputeBonds fills each edge with the displacement between its ends.
//
// Pipeline (Extract):
//
//  1. Connected components of the mask (mask.Components), fixed connectivity.
//  2. Image normalised by its maximum; per-component centroid, equivalent
//     diameter and intensity statistics (regionprops).
//  3. Pixel quantities scaled to angstrom once, here, with the sample's own
//     pixel scale.
//  4. One node per component, in label order: Pos = (col·px, row·px, 0),
//     Intensity = mean normalised intensity, R = half the equivalent diameter.
//  5. Radius graph: every unordered node pair at distance ≤ cutoff, found
//     through a gonum k-d tree and confirmed by an exact squared-distance test.
//
// Edges are stored once in canonical orientation (Src < Dst), sorted by
// (Src, Dst). DirectedEdges materialises both orientations for consumers
// that expect a symmetric edge list.
//
// Bond vectors:
//
//	Bond(u→v) = Pos(v) − Pos(u)
//
// Positions are already physical, so no further scaling is applied.
//
// Complexity:
//
//   - Extract: O(W×H) labelling and measuring + O(N log N + N·k) radius
//     search, k the mean neighbour count.
//   - ComputeBonds: O(E).
//
// Errors:
//
//   - ErrShapeMismatch: image and mask dimensions differ.
//   - ErrBadCutoff: extractor cutoff is not strictly positive.
//   - ErrNodeNotFound, ErrLoopNotAllowed: invalid AddEdge endpoints.
//   - mask.ErrBadPixelScale, regionprops.ErrEmptyIntensity: passed through.
//
// An empty mask yields an empty graph and no error.
package atomgraph
