package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgmc-sim/lgmc/lattice"
	"github.com/lgmc-sim/lgmc/seed"
	"github.com/lgmc-sim/lgmc/solution"
)

func newLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	l, err := lattice.NewLattice(lattice.Bounds{
		LatticeConstant: 1.0,
		XHi: 3, YHi: 3, ZHi: 3,
	})
	require.NoError(t, err)
	return l
}

func TestBuild_SolutionPopulation(t *testing.T) {
	sol := solution.NewState(2)
	lat := newLattice(t)

	err := seed.Build(sol, lat, seed.WithSolutionPopulation(0, 100), seed.WithSolutionPopulation(1, 50))
	require.NoError(t, err)

	pop, err := sol.Population(0)
	require.NoError(t, err)
	assert.EqualValues(t, 100, pop)
}

func TestBuild_FixedSiteOccupancy(t *testing.T) {
	sol := solution.NewState(1)
	lat := newLattice(t)

	err := seed.Build(sol, lat, seed.WithSiteOccupancy(0, 7))
	require.NoError(t, err)

	occ, err := lat.Occupancy(0)
	require.NoError(t, err)
	assert.Equal(t, 7, occ)
}

func TestBuild_FixedSite_DuplicateAssignment(t *testing.T) {
	sol := solution.NewState(1)
	lat := newLattice(t)

	err := seed.Build(sol, lat, seed.WithSiteOccupancy(0, 1), seed.WithSiteOccupancy(0, 2))
	assert.ErrorIs(t, err, seed.ErrOptionViolation)
}

func TestBuild_FixedSite_OutOfRange(t *testing.T) {
	sol := solution.NewState(1)
	lat := newLattice(t)

	err := seed.Build(sol, lat, seed.WithSiteOccupancy(lat.NumSites(), 1))
	assert.ErrorIs(t, err, seed.ErrSiteOutOfRange)
}

func TestBuild_RandomFill_NeedsRandSource(t *testing.T) {
	sol := solution.NewState(1)
	lat := newLattice(t)

	err := seed.Build(sol, lat, seed.WithRandomOccupancyFraction(3, 0.5))
	assert.ErrorIs(t, err, seed.ErrNeedRandSource)
}

func TestBuild_RandomFill_Deterministic(t *testing.T) {
	lat1, lat2 := newLattice(t), newLattice(t)
	sol1, sol2 := solution.NewState(1), solution.NewState(1)

	err1 := seed.Build(sol1, lat1, seed.WithSeed(42), seed.WithRandomOccupancyFraction(5, 0.5))
	err2 := seed.Build(sol2, lat2, seed.WithSeed(42), seed.WithRandomOccupancyFraction(5, 0.5))
	require.NoError(t, err1)
	require.NoError(t, err2)

	for site := 0; site < lat1.NumSites(); site++ {
		o1, _ := lat1.Occupancy(site)
		o2, _ := lat2.Occupancy(site)
		assert.Equal(t, o1, o2, "same seed must yield identical placement at site %d", site)
	}
}

func TestBuild_RandomFill_ExceedsAvailable(t *testing.T) {
	sol := solution.NewState(1)
	lat := newLattice(t)

	err := seed.Build(sol, lat, seed.WithSeed(1),
		seed.WithRandomOccupancyFraction(1, 0.7),
		seed.WithRandomOccupancyFraction(2, 0.7))
	assert.ErrorIs(t, err, seed.ErrOptionViolation)
}

func TestBuild_NilTargets(t *testing.T) {
	err := seed.Build(nil, nil)
	assert.ErrorIs(t, err, seed.ErrConstructFailed)
}
