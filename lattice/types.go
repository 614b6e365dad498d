// Package lattice builds the 3-D orthorhombic site grid LGMC runs on: a
// fixed set of sites with cached coordinates, per-site species occupancy,
// and a precomputed neighbor table honoring per-axis periodicity.
//
// It generalizes the teacher pack's gridgraph (a 2-D, 4/8-connected cell
// grid) to three dimensions, 6-connectivity, and periodic boundaries, and
// adds the species-occupancy concept gridgraph never needed.
package lattice

import (
	"errors"
	"sync"
)

// Sentinel errors for lattice construction and site access.
var (
	// ErrBadLatticeConstant indicates a non-positive lattice constant.
	ErrBadLatticeConstant = errors.New("lattice: lattice constant must be positive")

	// ErrBadBounds indicates a box bound where lo > hi on some axis.
	ErrBadBounds = errors.New("lattice: box lo must not exceed hi on any axis")

	// ErrSiteOutOfRange indicates a site id outside [0, N).
	ErrSiteOutOfRange = errors.New("lattice: site id out of range")

	// ErrEmptyLattice indicates a construction that produced zero sites.
	ErrEmptyLattice = errors.New("lattice: construction produced zero sites")
)

// EmptySpecies marks a site with no surface-bound species.
const EmptySpecies = -1

// Coordination is the fixed coordination number of a simple-cubic lattice:
// six face-sharing neighbors per interior site.
const Coordination = 6

// Site is one fixed point on the lattice. Its lattice-unit indices and
// cached real-space coordinates never change after construction; species
// is the only mutable field.
type Site struct {
	ID      int
	I, J, K int
	X, Y, Z float64
	species int
}

// Bounds describes the construction inputs for a Lattice: the lattice
// constant, six box bounds in lattice units, and per-axis periodicity.
type Bounds struct {
	LatticeConstant float64
	XLo, XHi        int
	YLo, YHi        int
	ZLo, ZHi        int
	PeriodicX       bool
	PeriodicY       bool
	PeriodicZ       bool
}

// Lattice is a fixed 3-D site grid with per-site species occupancy and a
// precomputed neighbor table. Site count and neighbor structure are fixed
// at construction; only occupancy (Site.species) mutates afterward.
//
// mu guards occupancy only — the neighbor table and site coordinates are
// immutable after NewLattice returns and require no synchronization.
type Lattice struct {
	mu sync.RWMutex

	bounds Bounds
	xlo, xhi int
	ylo, yhi int
	zlo, zhi int
	nx, ny, nz int

	sites     []Site
	neighbors [][]int // neighbors[id] = up to Coordination neighbor ids, in offset order
}

// NumSites returns the total number of sites N.
func (l *Lattice) NumSites() int {
	return len(l.sites)
}

// LatticeConstant returns the lattice spacing a.
func (l *Lattice) LatticeConstant() float64 {
	return l.bounds.LatticeConstant
}
