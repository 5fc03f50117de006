// Package stem renders atomic structures into synthetic annular dark-field
// style images together with a per-atom ground-truth label.
//
// What:
//
//   - Simulator is the contract the dataset layer depends on: given a
//     structure and imaging parameters, return an image, a delta label grid,
//     and the pixel positions and atomic numbers of the atoms in view.
//   - ProbeSimulator is a deterministic reference implementation. It tiles
//     the in-plane lattice over the field of view, rotates about the view
//     centre, shifts, and sums one Gaussian probe per atom with Z^1.7
//     contrast. It makes no claim to physical accuracy.
//
// Conventions:
//
//   - Image rows are Y, columns are X; Positions use mask.Point (X = column).
//   - Eps is the probe full width at half maximum in angstrom.
//   - The delta label holds each atom's Z at its rounded pixel, later atoms
//     overwriting earlier ones.
//
// Errors:
//
//   - mask.ErrBadPixelScale: PxScale is not strictly positive.
//   - ErrBadProbe: Eps is not strictly positive.
//   - ErrLatticeTooDense: tiling the field of view would exceed MaxTiles cells.
//   - atoms.ErrLengthMismatch, atoms.ErrBadAtomicNumber: invalid structure.
package stem
