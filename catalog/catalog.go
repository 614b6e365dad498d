package catalog

// Catalog answers reaction queries for the network and propensity layers:
// the solution-phase list (for the dense propensity vector), and
// occupancy-indexed single-site/pair-site lookups (for relevant_react).
type Catalog interface {
	// Reaction returns the reaction registered under id.
	Reaction(id int) (Reaction, error)

	// NumReactions returns the total number of registered reactions across
	// all phases.
	NumReactions() int

	// SolutionReactions returns every PhaseSolution reaction, ordered by
	// ID ascending (ID 0..k-1, contiguous) — this ordering is the index
	// space of propensity.PropensityStore's dense vector.
	SolutionReactions() []Reaction

	// SingleSite returns every adsorption/desorption reaction whose
	// SiteSpecies matches species.
	SingleSite(species int) []Reaction

	// PairSite returns every diffusion/reaction-phase reaction whose
	// PairSpecies matches (site, neighbor) in that order. Callers check
	// both orderings themselves, per the pair-key canonicalization.
	PairSite(site, neighbor int) []Reaction
}
