// Package lattice implements the 3-D site grid described in the system's
// data model: a fixed set of sites with cached real-space coordinates,
// per-site species occupancy, and a coordination-6 neighbor table honoring
// per-axis periodicity.
//
// Construction
//
//	NewLattice computes xlo..zhi per axis (periodic axes reindex to
//	[0, N-1]; non-periodic axes keep the caller's bounds, producing one
//	extra site versus the periodic case), emits sites in k,j,i nested order
//	assigning consecutive ids via id(i,j,k), then builds the neighbor table
//	by applying the six coordination offsets to every site and wrapping or
//	discarding per axis periodicity.
//
// Invariants
//
//   - Every neighbor id lies in [0, NumSites()).
//   - Neighbor relation is symmetric modulo boundary truncation: non-
//     periodic edge/corner sites have fewer than six neighbors.
//   - Site id ordering is the deterministic k,j,i scan, so identical
//     construction inputs produce byte-identical site numbering across
//     runs — this is what lets propensity.PropensityStore iterate its
//     sparse site map in a reproducible order.
//
// Diagnostics
//
//	ToGraph snapshots site adjacency into a weighted *core.Graph for the
//	dijkstra and prim_kruskal packages (hop-distance and connectivity
//	queries), and ToUnweightedGraph into an unweighted one for bfs
//	(neighborhood queries) — see VerifyConnected and the diagnostics package.
package lattice
