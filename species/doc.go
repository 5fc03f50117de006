// Package species holds the static element table used to size atom
// footprints: atomic number, chemical symbol and atomic radius in angstrom.
//
// What:
//
//   - Table maps atomic number Z to an Element{Z, Symbol, Radius}.
//   - Default returns the built-in table covering Z = 1..96.
//   - Radius and BySymbol are strict lookups: a missing entry is an error,
//     never a zero value, because a silently skipped atom corrupts the label.
//
// Errors:
//
//   - ErrUnknownSpecies: atomic number or symbol absent from the table.
//   - ErrBadRadius: a custom table entry carries a non-positive radius.
package species
