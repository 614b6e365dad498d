// Package solution models the system's Data Model "SolutionState": a
// fixed-length vector of per-species populations for the homogeneous
// solution phase, distinct from lattice's per-site surface occupancy.
//
// State is deliberately minimal — a population count per species, with a
// no-negative-count invariant enforced on every mutation — since the
// reaction-rate mathematics and species bookkeeping belong to catalog and
// propensity, not here.
package solution
