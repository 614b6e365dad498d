// SPDX-License-Identifier: MIT
//
// options.go — functional options for the seed package.
//
// Contract (strict, mirrors the teacher's builder package):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs; Build
//     itself never panics and returns sentinel errors instead.
//   - Determinism is explicit: randomness only enters via WithSeed/WithRand.
package seed

import "math/rand"

// Option customizes a seed Build call by mutating a config before
// population begins.
type Option func(*config)

// WithSeed creates a new deterministic RNG from seed for use by any
// random-placement option in the same Build call.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seed: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSolutionPopulation sets the initial population of species in the
// well-mixed solution phase. Panics on a negative species id or count.
func WithSolutionPopulation(species int, n int64) Option {
	if species < 0 {
		panic("seed: WithSolutionPopulation(species<0)")
	}
	if n < 0 {
		panic("seed: WithSolutionPopulation(n<0)")
	}
	return func(c *config) {
		c.solutionPop[species] = n
	}
}

// WithSiteOccupancy deterministically assigns species to site. Panics on a
// negative site id; species may be lattice.EmptySpecies to force a site
// empty.
func WithSiteOccupancy(site, species int) Option {
	if site < 0 {
		panic("seed: WithSiteOccupancy(site<0)")
	}
	return func(c *config) {
		c.fixedSites = append(c.fixedSites, fixedSite{site: site, species: species})
	}
}

// WithRandomOccupancyFraction randomly occupies fraction of the lattice's
// still-empty sites (after fixed assignments are applied) with species, in
// an order determined by the attached RNG. Panics if fraction is outside
// [0, 1] or species is negative; Build returns ErrNeedRandSource if no RNG
// was attached.
func WithRandomOccupancyFraction(species int, fraction float64) Option {
	if species < 0 {
		panic("seed: WithRandomOccupancyFraction(species<0)")
	}
	if fraction < 0 || fraction > 1 {
		panic("seed: WithRandomOccupancyFraction(fraction out of [0,1])")
	}
	return func(c *config) {
		c.randomFills = append(c.randomFills, randomFill{species: species, fraction: fraction})
	}
}
