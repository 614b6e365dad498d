// Package catalog defines the external ReactionCatalog collaborator: for
// every reaction id, its reactants, products, rate constant, and phase
// (solution, adsorption, desorption, on-lattice diffusion, on-lattice
// reaction), queryable by site occupancy and by the species a reaction
// touches. Temperature and applied-potential effects are assumed already
// folded into each reaction's rate constant by the time it reaches this
// package — this package does no chemistry, only bookkeeping and lookup.
package catalog

import "errors"

// Sentinel errors for catalog construction and lookup.
var (
	// ErrDuplicateReactionID indicates two reactions share the same ID.
	ErrDuplicateReactionID = errors.New("catalog: duplicate reaction id")

	// ErrNonContiguousSolutionIDs indicates solution-phase reaction ids are
	// not a contiguous 0..k-1 run, which propensity.PropensityStore's dense
	// vector requires.
	ErrNonContiguousSolutionIDs = errors.New("catalog: solution reaction ids must be contiguous starting at 0")

	// ErrBadRateConstant indicates a non-positive rate constant.
	ErrBadRateConstant = errors.New("catalog: rate constant must be positive")

	// ErrReactionNotFound indicates a lookup by id found no reaction.
	ErrReactionNotFound = errors.New("catalog: reaction not found")
)

// Phase classifies where and how a reaction fires.
type Phase int

const (
	// PhaseSolution is a homogeneous reaction entirely within the solution volume.
	PhaseSolution Phase = iota
	// PhaseAdsorption moves a species from solution onto an empty site.
	PhaseAdsorption
	// PhaseDesorption moves a species from a site back into solution.
	PhaseDesorption
	// PhaseDiffusion moves a species from a site to an empty neighbor site.
	PhaseDiffusion
	// PhaseReaction transforms the species occupying two neighboring sites.
	PhaseReaction
)

// String renders a Phase for logging.
func (p Phase) String() string {
	switch p {
	case PhaseSolution:
		return "solution"
	case PhaseAdsorption:
		return "adsorption"
	case PhaseDesorption:
		return "desorption"
	case PhaseDiffusion:
		return "diffusion"
	case PhaseReaction:
		return "reaction"
	default:
		return "unknown"
	}
}

// IsSingleSite reports whether the phase is evaluated against one site's
// occupancy alone (adsorption/desorption), as opposed to a site-neighbor
// pair (diffusion/reaction).
func (p Phase) IsSingleSite() bool {
	return p == PhaseAdsorption || p == PhaseDesorption
}

// IsPairSite reports whether the phase is evaluated against a site and one
// of its neighbors (diffusion/reaction).
func (p Phase) IsPairSite() bool {
	return p == PhaseDiffusion || p == PhaseReaction
}

// EmptySite is the occupancy value a single-site or pair-site pattern uses
// to require an empty site (mirrors lattice.EmptySpecies).
const EmptySite = -1

// Reaction is one entry in the catalog: its id, phase, reactants and
// products (solution-phase species indices), precomputed rate constant,
// and — for single-site or pair-site phases — the occupancy pattern that
// must hold for the reaction to apply.
//
// SiteSpecies is meaningful only when Phase.IsSingleSite(): the species
// that must occupy the site (EmptySite for adsorption's "must be empty").
// PairSpecies is meaningful only when Phase.IsPairSite(): the ordered
// (site, neighbor) occupancy pattern, matched in both orderings by the
// caller per the pair-key canonicalization the network package applies.
type Reaction struct {
	ID           int
	Phase        Phase
	Reactants    []int
	Products     []int
	RateConstant float64
	SiteSpecies  int
	PairSpecies  [2]int
}
