package diagnostics

import (
	"sort"

	"github.com/lgmc-sim/lgmc/bfs"
	"github.com/lgmc-sim/lgmc/lattice"
)

// Neighborhood returns every site within maxHops of site (inclusive of
// site itself), sorted ascending. maxHops <= 0 means "no limit" and walks
// the whole connected component, matching bfs.WithMaxDepth(0)'s "no limit"
// semantics.
func Neighborhood(l *lattice.Lattice, site, maxHops int) ([]int, error) {
	if _, err := l.Site(site); err != nil {
		return nil, err
	}
	g := l.ToUnweightedGraph()
	opts := []bfs.Option{}
	if maxHops > 0 {
		opts = append(opts, bfs.WithMaxDepth(maxHops))
	}
	result, err := bfs.BFS(g, lattice.SiteVertexID(site), opts...)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(result.Depth))
	for vid := range result.Depth {
		id, err := parseSiteVertexID(vid)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids, nil
}
