package dataset

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stemgraph/atoms"
)

// Entry is one structure record of a dataset.
type Entry struct {
	ID        string
	Crystal   string
	Structure *atoms.Structure
}

// Source provides structure records by index. Implementations must be safe
// for concurrent reads.
type Source interface {
	Len() int
	Entry(idx int) (Entry, error)
}

// Entries is an in-memory Source.
type Entries []Entry

// Len returns the number of entries.
func (e Entries) Len() int { return len(e) }

// Entry returns entry idx.
func (e Entries) Entry(idx int) (Entry, error) {
	if idx < 0 || idx >= len(e) {
		return Entry{}, errors.Wrapf(ErrIndexOutOfRange, "%d of %d", idx, len(e))
	}
	return e[idx], nil
}
