package source

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/atoms"
	"github.com/katalvlaran/stemgraph/dataset"
	"github.com/katalvlaran/stemgraph/species"
)

// Sentinel errors for record loading.
var (
	// ErrBadRecord indicates a malformed structure record.
	ErrBadRecord = errors.New("source: malformed record")
	// ErrUnsupportedFormat indicates a file extension no backend handles.
	ErrUnsupportedFormat = errors.New("source: unsupported file format")
)

// Record is one structure record.
type Record struct {
	JID   string      `json:"jid" yaml:"jid"`
	Crys  string      `json:"crys" yaml:"crys"`
	Atoms AtomsRecord `json:"atoms" yaml:"atoms"`
}

// AtomsRecord is the atoms block of a Record.
type AtomsRecord struct {
	LatticeMat [][]float64 `json:"lattice_mat" yaml:"lattice_mat"`
	Coords     [][]float64 `json:"coords" yaml:"coords"`
	Elements   []string    `json:"elements" yaml:"elements"`
	Cartesian  bool        `json:"cartesian" yaml:"cartesian"`
}

// Structure converts the atoms block, resolving element symbols in tbl.
func (a AtomsRecord) Structure(tbl species.Table) (*atoms.Structure, error) {
	if len(a.LatticeMat) != 3 {
		return nil, errors.Wrapf(ErrBadRecord, "lattice_mat has %d rows", len(a.LatticeMat))
	}
	if len(a.Coords) != len(a.Elements) {
		return nil, errors.Wrapf(ErrBadRecord, "%d coords, %d elements", len(a.Coords), len(a.Elements))
	}
	s := &atoms.Structure{
		Positions: make([]r3.Vec, len(a.Coords)),
		Numbers:   make([]int, len(a.Elements)),
	}
	for i, row := range a.LatticeMat {
		v, err := vec(row)
		if err != nil {
			return nil, errors.Wrapf(err, "lattice row %d", i)
		}
		s.Lattice[i] = v
	}
	for i, c := range a.Coords {
		v, err := vec(c)
		if err != nil {
			return nil, errors.Wrapf(err, "coord %d", i)
		}
		if !a.Cartesian {
			v = s.Cartesian(v)
		}
		s.Positions[i] = v

		el, err := tbl.BySymbol(a.Elements[i])
		if err != nil {
			return nil, errors.Wrapf(err, "atom %d", i)
		}
		s.Numbers[i] = el.Z
	}
	return s, nil
}

// Entry converts r into a dataset entry.
func (r Record) Entry(tbl species.Table) (dataset.Entry, error) {
	s, err := r.Atoms.Structure(tbl)
	if err != nil {
		return dataset.Entry{}, errors.Wrapf(err, "record %s", r.JID)
	}
	return dataset.Entry{ID: r.JID, Crystal: r.Crys, Structure: s}, nil
}

// Entries converts every record, stopping at the first error.
func Entries(recs []Record, tbl species.Table) (dataset.Entries, error) {
	out := make(dataset.Entries, 0, len(recs))
	for _, r := range recs {
		e, err := r.Entry(tbl)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func vec(xs []float64) (r3.Vec, error) {
	if len(xs) != 3 {
		return r3.Vec{}, errors.Wrapf(ErrBadRecord, "want 3 components, got %d", len(xs))
	}
	return r3.Vec{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}
