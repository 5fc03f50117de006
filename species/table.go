package species

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// elements lists empirical atomic radii (Slater) where available and
// calculated radii for the noble gases and the heavy tail.
var elements = []Element{
	{1, "H", 0.25}, {2, "He", 0.31}, {3, "Li", 1.45}, {4, "Be", 1.05},
	{5, "B", 0.85}, {6, "C", 0.70}, {7, "N", 0.65}, {8, "O", 0.60},
	{9, "F", 0.50}, {10, "Ne", 0.38}, {11, "Na", 1.80}, {12, "Mg", 1.50},
	{13, "Al", 1.25}, {14, "Si", 1.10}, {15, "P", 1.00}, {16, "S", 1.00},
	{17, "Cl", 1.00}, {18, "Ar", 0.71}, {19, "K", 2.20}, {20, "Ca", 1.80},
	{21, "Sc", 1.60}, {22, "Ti", 1.40}, {23, "V", 1.35}, {24, "Cr", 1.40},
	{25, "Mn", 1.40}, {26, "Fe", 1.40}, {27, "Co", 1.35}, {28, "Ni", 1.35},
	{29, "Cu", 1.35}, {30, "Zn", 1.35}, {31, "Ga", 1.30}, {32, "Ge", 1.25},
	{33, "As", 1.15}, {34, "Se", 1.15}, {35, "Br", 1.15}, {36, "Kr", 0.88},
	{37, "Rb", 2.35}, {38, "Sr", 2.00}, {39, "Y", 1.80}, {40, "Zr", 1.55},
	{41, "Nb", 1.45}, {42, "Mo", 1.45}, {43, "Tc", 1.35}, {44, "Ru", 1.30},
	{45, "Rh", 1.35}, {46, "Pd", 1.40}, {47, "Ag", 1.60}, {48, "Cd", 1.55},
	{49, "In", 1.55}, {50, "Sn", 1.45}, {51, "Sb", 1.45}, {52, "Te", 1.40},
	{53, "I", 1.40}, {54, "Xe", 1.08}, {55, "Cs", 2.60}, {56, "Ba", 2.15},
	{57, "La", 1.95}, {58, "Ce", 1.85}, {59, "Pr", 1.85}, {60, "Nd", 1.85},
	{61, "Pm", 1.85}, {62, "Sm", 1.85}, {63, "Eu", 1.85}, {64, "Gd", 1.80},
	{65, "Tb", 1.75}, {66, "Dy", 1.75}, {67, "Ho", 1.75}, {68, "Er", 1.75},
	{69, "Tm", 1.75}, {70, "Yb", 1.75}, {71, "Lu", 1.75}, {72, "Hf", 1.55},
	{73, "Ta", 1.45}, {74, "W", 1.35}, {75, "Re", 1.35}, {76, "Os", 1.30},
	{77, "Ir", 1.35}, {78, "Pt", 1.35}, {79, "Au", 1.35}, {80, "Hg", 1.50},
	{81, "Tl", 1.90}, {82, "Pb", 1.80}, {83, "Bi", 1.60}, {84, "Po", 1.90},
	{85, "At", 1.27}, {86, "Rn", 1.20}, {87, "Fr", 2.60}, {88, "Ra", 2.15},
	{89, "Ac", 1.95}, {90, "Th", 1.80}, {91, "Pa", 1.80}, {92, "U", 1.75},
	{93, "Np", 1.75}, {94, "Pu", 1.75}, {95, "Am", 1.75}, {96, "Cm", 1.76},
}

// Default returns a fresh copy of the built-in table.
// Complexity: O(n) with n = number of elements.
func Default() Table {
	t := make(Table, len(elements))
	for _, e := range elements {
		t[e.Z] = e
	}
	return t
}

// New builds a Table from custom entries, rejecting non-positive radii.
// Later entries with the same Z replace earlier ones.
func New(entries ...Element) (Table, error) {
	t := make(Table, len(entries))
	for _, e := range entries {
		if e.Radius <= 0 {
			return nil, errors.Wrapf(ErrBadRadius, "Z=%d radius=%g", e.Z, e.Radius)
		}
		t[e.Z] = e
	}
	return t, nil
}

// Radius returns the atomic radius of z in angstrom.
// Returns an error wrapping ErrUnknownSpecies if z is absent.
// Complexity: O(1).
func (t Table) Radius(z int) (float64, error) {
	e, ok := t[z]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownSpecies, "atomic number %d", z)
	}
	return e.Radius, nil
}

// BySymbol resolves a chemical symbol (case-insensitive, surrounding
// whitespace ignored) to its Element.
// Complexity: O(n); callers resolving many atoms should cache results.
func (t Table) BySymbol(symbol string) (Element, error) {
	s := strings.TrimSpace(symbol)
	for _, e := range t {
		if strings.EqualFold(e.Symbol, s) {
			return e, nil
		}
	}
	return Element{}, errors.Wrapf(ErrUnknownSpecies, "symbol %q", symbol)
}

// Covers reports the first atomic number in numbers that the table lacks.
// ok is true when every number is present.
func (t Table) Covers(numbers []int) (missing int, ok bool) {
	for _, z := range numbers {
		if _, found := t[z]; !found {
			return z, false
		}
	}
	return 0, true
}
