// SPDX-License-Identifier: MIT
package seed

import (
	"fmt"

	"github.com/lgmc-sim/lgmc/lattice"
	"github.com/lgmc-sim/lgmc/solution"
)

// Build resolves opts into a config and applies it to sol and lat, in a
// fixed order: solution populations, then fixed site occupancies, then
// random fills over whatever sites remain empty. Mirrors the teacher's
// BuildGraph: a single entry point, deterministic application order, and
// %w-wrapped sentinel errors rather than partial mutation with no
// diagnostic.
func Build(sol *solution.State, lat *lattice.Lattice, opts ...Option) error {
	if sol == nil || lat == nil {
		return fmt.Errorf("seed.Build: nil target: %w", ErrConstructFailed)
	}
	cfg := newConfig(opts...)

	for species, n := range cfg.solutionPop {
		if err := sol.SetPopulation(species, n); err != nil {
			return fmt.Errorf("seed.Build: solution population: %w", err)
		}
	}

	assigned := make(map[int]bool, len(cfg.fixedSites))
	for _, fs := range cfg.fixedSites {
		if fs.site >= lat.NumSites() {
			return fmt.Errorf("seed.Build: site %d: %w", fs.site, ErrSiteOutOfRange)
		}
		if assigned[fs.site] {
			return fmt.Errorf("seed.Build: site %d assigned twice: %w", fs.site, ErrOptionViolation)
		}
		assigned[fs.site] = true
		if err := lat.SetOccupancy(fs.site, fs.species); err != nil {
			return fmt.Errorf("seed.Build: %w", err)
		}
	}

	if len(cfg.randomFills) == 0 {
		return nil
	}

	empty := make([]int, 0, lat.NumSites())
	for site := 0; site < lat.NumSites(); site++ {
		if assigned[site] {
			continue
		}
		occ, err := lat.Occupancy(site)
		if err != nil {
			return fmt.Errorf("seed.Build: %w", err)
		}
		if occ == lattice.EmptySpecies {
			empty = append(empty, site)
		}
	}

	if cfg.rng == nil {
		return fmt.Errorf("seed.Build: %w", ErrNeedRandSource)
	}
	cfg.rng.Shuffle(len(empty), func(i, j int) { empty[i], empty[j] = empty[j], empty[i] })

	cursor := 0
	for _, rf := range cfg.randomFills {
		count := int(rf.fraction * float64(len(empty)))
		if cursor+count > len(empty) {
			return fmt.Errorf("seed.Build: random fills exceed available sites: %w", ErrOptionViolation)
		}
		for _, site := range empty[cursor : cursor+count] {
			if err := lat.SetOccupancy(site, rf.species); err != nil {
				return fmt.Errorf("seed.Build: %w", err)
			}
		}
		cursor += count
	}

	return nil
}
