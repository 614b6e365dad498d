package lattice

import (
	"fmt"
	"math"

	"github.com/lgmc-sim/lgmc/core"
)

const epsilon = 0.0001

// NewLattice builds a Lattice from b: computes lattice-unit bounds per axis
// (periodic axes reindex to [0, N-1]; non-periodic axes keep the given
// bounds, producing one extra site per axis versus the periodic case,
// matching the mathematically intended box-bound arithmetic rather than
// the source's likely-buggy operator precedence), emits sites in k,j,i
// order assigning consecutive ids per id(i,j,k), and builds the 6-neighbor
// table honoring periodicity.
func NewLattice(b Bounds) (*Lattice, error) {
	if b.LatticeConstant <= 0 {
		return nil, ErrBadLatticeConstant
	}
	if b.XLo > b.XHi || b.YLo > b.YHi || b.ZLo > b.ZHi {
		return nil, ErrBadBounds
	}

	l := &Lattice{bounds: b}

	nx := b.XHi - b.XLo
	ny := b.YHi - b.YLo
	nz := b.ZHi - b.ZLo

	if b.PeriodicX {
		l.xlo, l.xhi = 0, nx-1
	} else {
		l.xlo, l.xhi = b.XLo, b.XHi
	}
	if b.PeriodicY {
		l.ylo, l.yhi = 0, ny-1
	} else {
		l.ylo, l.yhi = b.YLo, b.YHi
	}
	if b.PeriodicZ {
		l.zlo, l.zhi = 0, nz-1
	} else {
		l.zlo, l.zhi = b.ZLo, b.ZHi
	}

	l.nx = l.xhi - l.xlo + 1
	l.ny = l.yhi - l.ylo + 1
	l.nz = l.zhi - l.zlo + 1
	if l.nx <= 0 || l.ny <= 0 || l.nz <= 0 {
		return nil, ErrEmptyLattice
	}

	n := l.nx * l.ny * l.nz
	l.sites = make([]Site, n)

	a := b.LatticeConstant
	for k := l.zlo; k <= l.zhi; k++ {
		for j := l.ylo; j <= l.yhi; j++ {
			for i := l.xlo; i <= l.xhi; i++ {
				id := l.id(i, j, k)
				l.sites[id] = Site{
					ID:      id,
					I:       i,
					J:       j,
					K:       k,
					X:       float64(i) * a,
					Y:       float64(j) * a,
					Z:       float64(k) * a,
					species: EmptySpecies,
				}
			}
		}
	}

	l.neighbors = make([][]int, n)
	offsets := offsets3D()
	for k := l.zlo; k <= l.zhi; k++ {
		for j := l.ylo; j <= l.yhi; j++ {
			for i := l.xlo; i <= l.xhi; i++ {
				id := l.id(i, j, k)
				neigh := make([]int, 0, Coordination)
				for _, d := range offsets {
					ni, ok := l.wrapAxis(i+d[0], l.xlo, l.xhi, b.PeriodicX)
					if !ok {
						continue
					}
					nj, ok := l.wrapAxis(j+d[1], l.ylo, l.yhi, b.PeriodicY)
					if !ok {
						continue
					}
					nk, ok := l.wrapAxis(k+d[2], l.zlo, l.zhi, b.PeriodicZ)
					if !ok {
						continue
					}
					neigh = append(neigh, l.id(ni, nj, nk))
				}
				l.neighbors[id] = neigh
			}
		}
	}

	return l, nil
}

// id computes the deterministic site id for lattice-unit indices (i,j,k).
// id(i,j,k) = (k-zlo)*Ny*Nx + (j-ylo)*Nx + (i-xlo).
func (l *Lattice) id(i, j, k int) int {
	return (k-l.zlo)*l.ny*l.nx + (j-l.ylo)*l.nx + (i - l.xlo)
}

// wrapAxis resolves a candidate index v against [lo,hi] on one axis: wraps
// modulo the axis length when periodic, or reports failure when the index
// falls outside a non-periodic box.
func (l *Lattice) wrapAxis(v, lo, hi int, periodic bool) (int, bool) {
	n := hi - lo + 1
	if periodic {
		return lo + ((v-lo)%n+n)%n, true
	}
	if v < lo || v > hi {
		return 0, false
	}
	return v, true
}

// offsets3D returns the six coordination offsets: every (di,dj,dk) in
// {-1,0,1}^3 whose Euclidean norm equals 1 within epsilon, in nested
// ascending iteration order so results are reproducible.
func offsets3D() [][3]int {
	offsets := make([][3]int, 0, Coordination)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				norm := math.Sqrt(float64(di*di + dj*dj + dk*dk))
				if math.Abs(norm-1) < epsilon {
					offsets = append(offsets, [3]int{di, dj, dk})
				}
			}
		}
	}
	return offsets
}

// Occupancy returns the species occupying site, or EmptySpecies.
// Complexity: O(1).
func (l *Lattice) Occupancy(site int) (int, error) {
	if site < 0 || site >= len(l.sites) {
		return 0, ErrSiteOutOfRange
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sites[site].species, nil
}

// SetOccupancy sets the species occupying site (EmptySpecies to clear it).
// Complexity: O(1).
func (l *Lattice) SetOccupancy(site, species int) error {
	if site < 0 || site >= len(l.sites) {
		return ErrSiteOutOfRange
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sites[site].species = species
	return nil
}

// Neighbors returns the (up to Coordination) neighbor site ids of site, in
// the fixed construction order. The returned slice must not be mutated.
// Complexity: O(1).
func (l *Lattice) Neighbors(site int) ([]int, error) {
	if site < 0 || site >= len(l.sites) {
		return nil, ErrSiteOutOfRange
	}
	return l.neighbors[site], nil
}

// Site returns a copy of the site record (coordinates and current species).
// Complexity: O(1).
func (l *Lattice) Site(site int) (Site, error) {
	if site < 0 || site >= len(l.sites) {
		return Site{}, ErrSiteOutOfRange
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sites[site], nil
}

// SiteVertexID formats the core.Graph vertex id for a site as "s" followed
// by the site id. Exported so callers
// building core.Graph views of specific sites (diagnostics) agree with
// ToGraph on vertex naming.
func SiteVertexID(site int) string {
	return fmt.Sprintf("s%d", site)
}

func vertexID(site int) string {
	return SiteVertexID(site)
}

// ToGraph exports a snapshot of site adjacency as a weighted (unit-weight),
// undirected *core.Graph, for diagnostics built on dijkstra/prim_kruskal,
// both of which require graph.Weighted(). The export is a point-in-time
// copy; it does not track subsequent occupancy changes.
// Complexity: O(N*Coordination).
func (l *Lattice) ToGraph() *core.Graph {
	return l.buildGraph(true)
}

// ToUnweightedGraph exports the same adjacency snapshot as ToGraph, but
// unweighted — bfs.BFS rejects weighted graphs outright, so
// diagnostics.Neighborhood uses this instead of ToGraph.
// Complexity: O(N*Coordination).
func (l *Lattice) ToUnweightedGraph() *core.Graph {
	return l.buildGraph(false)
}

func (l *Lattice) buildGraph(weighted bool) *core.Graph {
	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for id := range l.sites {
		_ = g.AddVertex(vertexID(id))
	}
	seen := make(map[[2]int]struct{})
	for id, neigh := range l.neighbors {
		for _, n := range neigh {
			key := [2]int{id, n}
			if id > n {
				key = [2]int{n, id}
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			var w int64
			if weighted {
				w = 1
			}
			_, _ = g.AddEdge(vertexID(id), vertexID(n), w)
		}
	}
	return g
}
