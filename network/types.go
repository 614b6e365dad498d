// Package network implements LatticeReactionNetwork, the update engine
// that mutates lattice occupancy and solution populations for a fired
// reaction event, then recomputes exactly the propensities that could
// have changed.
package network

import (
	"errors"
	"fmt"
)

// EmptySite marks a vacant occupancy slot in an Event, mirroring
// lattice.EmptySpecies / catalog.EmptySite.
const EmptySite = -1

// Sentinel errors for configuration-time failures (surfaced before any
// step executes).
var (
	// ErrNilCollaborator indicates NewLatticeReactionNetwork received a nil
	// lattice, solution state, catalog, or propensity store.
	ErrNilCollaborator = errors.New("network: nil collaborator")
)

// Event is a sampled reaction firing: which reaction, and which site or
// site pair it applies to (EmptySite when the reaction is a pure solution
// reaction touching no site).
type Event struct {
	ReactionID int
	SiteOne    int
	SiteTwo    int
	Dt         float64
}

// InvariantError reports a stepping-time invariant violation (I1-I5):
// population underflow, an empty-site assertion failure, or a species
// mismatch. These are always fatal — the caller must abort the run rather
// than retry, since a KMC step cannot be undone without corrupting
// detailed balance.
type InvariantError struct {
	Site       int
	ReactionID int
	Step       int64
	Reason     string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("network: invariant violation at step %d, reaction %d, site %d: %s",
		e.Step, e.ReactionID, e.Site, e.Reason)
}
