// Package regionprops measures connected components of a label image
// against an intensity image.
//
// What:
//
//   - Normalize divides an intensity image by its maximum.
//   - Measure reports, per component: area, geometric centroid (row, col),
//     equivalent diameter sqrt(4·area/π), and min/mean/max intensity.
//
// All geometric quantities are in pixels; conversion to physical units is the
// caller's job and must happen exactly once.
//
// Complexity:
//
//   - Normalize: O(W×H).
//   - Measure:   O(W×H) over all components.
//
// Errors:
//
//   - ErrEmptyIntensity: intensity image maximum is not positive.
//   - ErrShapeMismatch: labelling and intensity image differ in shape.
package regionprops
