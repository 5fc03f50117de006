package species

import "github.com/cockroachdb/errors"

// Sentinel errors for species lookups.
var (
	// ErrUnknownSpecies indicates an atomic number or symbol missing from the table.
	ErrUnknownSpecies = errors.New("species: unknown species")
	// ErrBadRadius indicates a table entry with a non-positive radius.
	ErrBadRadius = errors.New("species: radius must be positive")
)

// Element is one row of the species table.
type Element struct {
	Z      int     // atomic number
	Symbol string  // chemical symbol, e.g. "Mo"
	Radius float64 // atomic radius in angstrom
}

// Table maps atomic number to Element. A Table is read-only after
// construction and safe to share between goroutines.
type Table map[int]Element
