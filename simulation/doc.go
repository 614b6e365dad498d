// Package simulation is documented in simulation.go: see Simulation for
// the sample/update/record loop and ExecuteStep/ExecuteSteps/ExecuteTime
// for the three ways to drive it.
package simulation
