// Package mask treats a 2D integer label image as a grid of cells, enabling
// connected-component labelling and atom-footprint synthesis.
//
// What:
//
//   - Grid wraps a rectangular row-major []int label image (0 = background).
//   - Components labels maximal regions of equal, non-zero cells under
//     Conn4 or Conn8 connectivity, numbering them in raster discovery order.
//   - RadiusMask paints one disk per atom, sized from the species table.
//
// Why:
//
//   - Ground-truth targets: atom footprints scaled to atomic radii.
//   - Reconstruction: the same labelling runs on ground-truth and predicted
//     masks, so graphs built from either are directly comparable.
//
// Coordinates:
//
//   - Point{X, Y} is a sub-pixel position; X is the column, Y the row.
//   - Cells are addressed At(x, y) with index y*Width + x.
//
// Complexity:
//
//   - Components:  O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbours).
//   - RadiusMask:  O(N×r²) for N atoms of pixel radius r.
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrLengthMismatch: positions and atomic numbers differ in length.
//   - ErrBadPixelScale: pixel scale is not strictly positive.
//
// Known limitation: RadiusMask is not multi-label safe. Atoms that occlude
// each other along the beam overwrite one another, last write wins.
package mask
