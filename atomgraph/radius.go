package atomgraph

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// site is an in-plane atom position for the k-d tree.
type site struct {
	x, y float64
	id   int
}

// Compare returns the signed distance of s from the plane through c
// perpendicular to dimension d.
func (s site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(site)
	if d == 0 {
		return s.x - q.x
	}
	return s.y - q.y
}

// Dims returns 2.
func (s site) Dims() int { return 2 }

// Distance returns the squared Euclidean distance between s and c.
func (s site) Distance(c kdtree.Comparable) float64 {
	q := c.(site)
	dx, dy := s.x-q.x, s.y-q.y
	return dx*dx + dy*dy
}

// sites satisfies kdtree.Interface.
type sites []site

func (p sites) Index(i int) kdtree.Comparable         { return p[i] }
func (p sites) Len() int                              { return len(p) }
func (p sites) Pivot(d kdtree.Dim) int                { return plane{sites: p, Dim: d}.Pivot() }
func (p sites) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane sorts sites along one dimension for median partitioning.
type plane struct {
	kdtree.Dim
	sites
}

func (p plane) Less(i, j int) bool {
	if p.Dim == 0 {
		return p.sites[i].x < p.sites[j].x
	}
	return p.sites[i].y < p.sites[j].y
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.sites = p.sites[start:end]
	return p
}
func (p plane) Swap(i, j int) { p.sites[i], p.sites[j] = p.sites[j], p.sites[i] }

// searchSlack widens the tree query so that pairs exactly at the cutoff are
// never pruned by rounding; the exact test below decides membership.
const searchSlack = 1e-9

// radiusPairs returns every unordered pair (i<j) of positions whose in-plane
// distance is ≤ cutoff, sorted by (i, j). Only X and Y are considered.
//
// Complexity: O(N log N) build + O(N·(log N + k)) queries.
func radiusPairs(pos []r3.Vec, cutoff float64) [][2]int {
	if len(pos) < 2 {
		return nil
	}
	pts := make(sites, len(pos))
	for i, p := range pos {
		pts[i] = site{x: p.X, y: p.Y, id: i}
	}
	// kdtree.New reorders its input.
	tree := kdtree.New(append(sites(nil), pts...), false)

	cut2 := cutoff * cutoff
	var pairs [][2]int
	for _, q := range pts {
		keep := kdtree.NewDistKeeper(cut2 * (1 + searchSlack))
		tree.NearestSet(keep, q)
		for _, cd := range keep.Heap {
			if cd.Comparable == nil {
				continue
			}
			s := cd.Comparable.(site)
			if s.id <= q.id {
				continue
			}
			if q.Distance(s) <= cut2 {
				pairs = append(pairs, [2]int{q.id, s.id})
			}
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}
		return pairs[a][1] < pairs[b][1]
	})
	return pairs
}
