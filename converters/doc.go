// Package converters exports atomgraph.Graph values to gonum/graph so that
// gonum's graph algorithms (paths, topology, community detection) can run on
// reconstructed atom graphs.
//
// What:
//
//   - ToGonum builds a simple.WeightedUndirectedGraph whose node IDs equal
//     atom node IDs and whose edge weights are bond lengths in angstrom.
//   - Clusters lists the connected groups of atoms, each sorted, ordered by
//     their smallest member.
//
// Complexity:
//
//   - ToGonum:  O(N + E).
//   - Clusters: O(N + E) plus sorting.
package converters
