// Package atoms defines the atomic structure consumed by the simulator and
// the label generators: cartesian positions in angstrom, atomic numbers and
// the lattice vectors used for tiling.
package atoms
