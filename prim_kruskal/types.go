// Package prim_kruskal defines sentinel errors for MST computation over a
// lattice's site-adjacency graph. It carries only Prim's algorithm: the
// module's sole caller (lattice.VerifyConnected) always roots at site 0, so
// the teacher library's Kruskal variant and its Method-dispatch scaffolding
// have no reachable caller here; see DESIGN.md.
package prim_kruskal

import (
	"errors"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It is also returned for a graph with no vertices.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")
