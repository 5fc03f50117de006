package dataset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/atoms"
	"github.com/katalvlaran/stemgraph/dataset"
	"github.com/katalvlaran/stemgraph/stem"
)

// squareMo is a 3 Å square Mo lattice offset by half a cell, so a 96 px
// view at 0.1 Å/px holds a 3×3 block of atoms at pixels 15, 45 and 75.
func squareMo() *atoms.Structure {
	return &atoms.Structure{
		Positions: []r3.Vec{{X: 1.5, Y: 1.5}},
		Numbers:   []int{42},
		Lattice:   [3]r3.Vec{{X: 3}, {Y: 3}, {Z: 20}},
	}
}

func fixtureEntries(n int) dataset.Entries {
	out := make(dataset.Entries, n)
	for i := range out {
		out[i] = dataset.Entry{
			ID:        fmt.Sprintf("JVASP-%d", 1000+i),
			Crystal:   "tetragonal",
			Structure: squareMo(),
		}
	}
	return out
}

func fixtureSim(t *testing.T) *stem.ProbeSimulator {
	t.Helper()
	sim, err := stem.NewProbeSimulator(stem.WithOutputSize(96, 96))
	require.NoError(t, err)
	return sim
}

func ptr(v float64) *float64 { return &v }
