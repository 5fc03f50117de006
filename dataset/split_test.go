package dataset_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stemgraph/dataset"
)

func TestSplit_Sizes(t *testing.T) {
	cases := []struct {
		n, train, val, test int
	}{
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{9, 9, 0, 0},
		{10, 8, 1, 1},
		{25, 21, 2, 2},
		{100, 80, 10, 10},
		{129, 105, 12, 12},
	}
	for _, tc := range cases {
		a, err := dataset.Split(tc.n, dataset.DefaultSplitOptions())
		require.NoError(t, err)
		assert.Len(t, a.Train, tc.train, "n=%d train", tc.n)
		assert.Len(t, a.Val, tc.val, "n=%d val", tc.n)
		assert.Len(t, a.Test, tc.test, "n=%d test", tc.n)

		all := append(append(append([]int{}, a.Train...), a.Val...), a.Test...)
		sort.Ints(all)
		want := make([]int, tc.n)
		for i := range want {
			want[i] = i
		}
		if diff := cmp.Diff(want, all); diff != "" {
			t.Errorf("n=%d: union is not a permutation (-want +got):\n%s", tc.n, diff)
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	opts := dataset.DefaultSplitOptions()
	a, err := dataset.Split(200, opts)
	require.NoError(t, err)
	b, err := dataset.Split(200, opts)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed, different split (-a +b):\n%s", diff)
	}

	opts.Seed = 42
	c, err := dataset.Split(200, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.Train, c.Train)
}

func TestSplit_Errors(t *testing.T) {
	bad := []dataset.SplitOptions{
		{ValFrac: -0.1, TestFrac: 0.1},
		{ValFrac: 0.1, TestFrac: -0.1},
		{ValFrac: 0.6, TestFrac: 0.5},
	}
	for _, o := range bad {
		_, err := dataset.Split(10, o)
		assert.ErrorIs(t, err, dataset.ErrBadSplit, "%+v", o)
	}
	_, err := dataset.Split(-1, dataset.DefaultSplitOptions())
	assert.ErrorIs(t, err, dataset.ErrBadSplit)

	a, err := dataset.Split(10, dataset.SplitOptions{ValFrac: 0.5, TestFrac: 0.5})
	require.NoError(t, err)
	assert.Empty(t, a.Train)
}

func TestAssignment_Subset(t *testing.T) {
	a, err := dataset.Split(10, dataset.DefaultSplitOptions())
	require.NoError(t, err)
	for name, want := range map[string][]int{"train": a.Train, "val": a.Val, "test": a.Test} {
		got, err := a.Subset(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = a.Subset("holdout")
	assert.ErrorIs(t, err, dataset.ErrUnknownSubset)
}
