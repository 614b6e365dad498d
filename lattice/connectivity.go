package lattice

import (
	"errors"

	"github.com/lgmc-sim/lgmc/prim_kruskal"
)

// VerifyConnected reports whether the lattice's site graph is fully
// connected, by growing a minimum spanning tree from site 0 and comparing
// its edge count to NumSites()-1. A single-site lattice is trivially
// connected. This is a post-construction diagnostic, not something callers
// need on the hot path: a misconfigured non-periodic box can accidentally
// isolate a site, and this catches it cheaply before a run starts.
func (l *Lattice) VerifyConnected() (bool, error) {
	n := l.NumSites()
	if n == 0 {
		return false, ErrEmptyLattice
	}
	if n == 1 {
		return true, nil
	}
	g := l.ToGraph()
	edges, _, err := prim_kruskal.Prim(g, vertexID(0))
	if err != nil {
		if errors.Is(err, prim_kruskal.ErrDisconnected) {
			return false, nil
		}
		return false, err
	}
	return len(edges) == n-1, nil
}
