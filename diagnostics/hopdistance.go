package diagnostics

import (
	"errors"
	"fmt"
	"math"

	"github.com/lgmc-sim/lgmc/dijkstra"
	"github.com/lgmc-sim/lgmc/lattice"
)

// ErrUnreachable indicates two sites are not connected by any path of
// on-lattice hops (possible on a non-periodic lattice split by a gap).
var ErrUnreachable = errors.New("diagnostics: sites are not connected")

// HopDistance computes the unweighted shortest lattice-hop distance
// between from and to — useful to sanity check an on-lattice diffusion
// reaction's neighbor reach against the intended coordination shell.
func HopDistance(l *lattice.Lattice, from, to int) (int64, error) {
	if _, err := l.Site(from); err != nil {
		return 0, err
	}
	if _, err := l.Site(to); err != nil {
		return 0, err
	}
	g := l.ToGraph()
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(lattice.SiteVertexID(from)))
	if err != nil {
		return 0, err
	}
	d, ok := dist[lattice.SiteVertexID(to)]
	if !ok || d == math.MaxInt64 {
		return 0, fmt.Errorf("%w: site %d from site %d", ErrUnreachable, to, from)
	}
	return d, nil
}
