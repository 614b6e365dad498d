// Package lgmc is a Lattice Gillespie Monte Carlo (LGMC) simulation core: a
// stochastic kinetic engine for chemical-reaction networks whose species
// live partly in a well-mixed solution volume and partly on a discrete 3-D
// crystal lattice.
//
// What
//
//   - lattice/     — 3-D orthorhombic site grid, periodic or non-periodic,
//     with a fixed per-site neighbor table.
//   - catalog/     — ReactionCatalog: reactants, products, rate constants,
//     and phase (solution, adsorption, desorption, on-lattice) for every
//     reaction, queryable by site occupancy or by changed species.
//   - solution/    — SolutionState: well-mixed species populations.
//   - propensity/  — PropensityStore: dense homogeneous-phase propensities
//     plus a sparse, canonically-keyed per-site-pair propensity map, with
//     an exactly-maintained running sum.
//   - network/     — LatticeReactionNetwork: applies a fired reaction to
//     lattice/solution state and recomputes exactly the propensities that
//     could have changed.
//   - sampler/     — direct-method Gillespie SSA over the propensity
//     partition.
//   - seed/        — deterministic, composable initial-state construction.
//   - history/     — HistoryElement/HistoryPacket and the bounded
//     multi-producer queue the driver streams them into.
//   - simulation/  — the step/time-budget driver tying the above together.
//   - diagnostics/ — lattice introspection (neighborhood shells, hop
//     distance) built on the adapted core/bfs/dijkstra graph primitives;
//     the prim_kruskal connectivity check is lattice.VerifyConnected.
//
// Why
//
//   - Determinism: identical seed, catalog, and initial state produce a
//     byte-identical trajectory. This is load-bearing, not a nicety —
//     propensity-set iteration order, site-id assignment, and pair-key
//     canonicalization are all specified precisely so replays agree.
//   - Correctness under mutation: every propensity whose value could change
//     after a firing is recomputed exactly once — no stale entries, no
//     missed entries — even though the propensity set's size changes every
//     step.
//
// Concurrency model
//
//	A Simulation is single-threaded and synchronous: it owns its Lattice,
//	SolutionState, PropensityStore, and Sampler exclusively, with no
//	suspension points inside a step. Parallelism happens one level up:
//	independent seeds run independent Simulation instances concurrently,
//	sharing only a read-only ReactionCatalog and a single bounded history
//	queue (the sole synchronization boundary).
//
// Non-goals
//
//	No spatial diffusion in the solution phase, no continuous-space
//	molecular dynamics, no off-lattice geometry, no rejection-based KMC.
//	Reaction-network persistence, trajectory persistence, CLI argument
//	parsing, and thread-pool orchestration across seeds are external
//	collaborators, not part of this module.
package lgmc
