package dataset

import (
	"github.com/cockroachdb/errors"
)

// SplitOptions configures Split.
type SplitOptions struct {
	ValFrac  float64
	TestFrac float64
	Seed     uint64
}

// DefaultSplitOptions returns 10% validation, 10% test, seed 0.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{ValFrac: 0.1, TestFrac: 0.1, Seed: 0}
}

// Validate reports ErrBadSplit for negative fractions or fractions summing
// above one.
func (o SplitOptions) Validate() error {
	if !(o.ValFrac >= 0) || !(o.TestFrac >= 0) || o.ValFrac+o.TestFrac > 1 {
		return errors.Wrapf(ErrBadSplit, "val %g, test %g", o.ValFrac, o.TestFrac)
	}
	return nil
}

// Assignment is a train/val/test partition of dataset indices.
type Assignment struct {
	Train []int
	Val   []int
	Test  []int
}

// Subset returns the indices named "train", "val" or "test".
func (a Assignment) Subset(name string) ([]int, error) {
	switch name {
	case "train":
		return a.Train, nil
	case "val":
		return a.Val, nil
	case "test":
		return a.Test, nil
	}
	return nil, errors.Wrapf(ErrUnknownSubset, "%q", name)
}

// clone returns a deep copy of a.
func (a Assignment) clone() Assignment {
	return Assignment{
		Train: append([]int(nil), a.Train...),
		Val:   append([]int(nil), a.Val...),
		Test:  append([]int(nil), a.Test...),
	}
}

// Split permutes 0..n-1 with a generator seeded from opts.Seed and cuts it
// into contiguous blocks train | val | test of sizes
// n - ⌊n·val⌋ - ⌊n·test⌋, ⌊n·val⌋ and ⌊n·test⌋.
//
// The same n and seed always give the same assignment. The global
// generator is neither read nor reseeded.
//
// Complexity: O(n).
func Split(n int, opts SplitOptions) (Assignment, error) {
	if n < 0 {
		return Assignment{}, errors.Wrapf(ErrBadSplit, "n = %d", n)
	}
	if err := opts.Validate(); err != nil {
		return Assignment{}, err
	}
	nVal := int(float64(n) * opts.ValFrac)
	nTest := int(float64(n) * opts.TestFrac)
	nTrain := n - nVal - nTest

	perm := newSeededRNG(opts.Seed).Perm(n)
	return Assignment{
		Train: perm[:nTrain:nTrain],
		Val:   perm[nTrain : nTrain+nVal : nTrain+nVal],
		Test:  perm[nTrain+nVal:],
	}, nil
}
