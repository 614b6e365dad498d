// SPDX-License-Identifier: MIT
package seed

import "math/rand"

// fixedSite records a deterministic single-site occupancy assignment.
type fixedSite struct {
	site    int
	species int
}

// randomFill records a request to randomly occupy a fraction of the
// still-empty sites with a given species.
type randomFill struct {
	species  int
	fraction float64
}

// config accumulates seed options before Build resolves them against a
// concrete lattice and solution state. Mirrors the teacher's builderConfig:
// options mutate this struct; nothing is resolved until Build runs.
type config struct {
	rng *rand.Rand

	solutionPop map[int]int64
	fixedSites  []fixedSite
	randomFills []randomFill
}

func newConfig(opts ...Option) config {
	cfg := config{solutionPop: make(map[int]int64)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
