// Package seed deterministically populates a solution.State and
// lattice.Lattice before a simulation run, via the functional-option
// orchestrator documented in build.go (Build) and options.go.
package seed
