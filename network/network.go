package network

import (
	"github.com/lgmc-sim/lgmc/catalog"
	"github.com/lgmc-sim/lgmc/lattice"
	"github.com/lgmc-sim/lgmc/propensity"
	"github.com/lgmc-sim/lgmc/solution"
)

// LatticeReactionNetwork is the update engine: given a fired reaction
// event, it mutates lattice occupancy and solution populations, then
// recomputes exactly the propensities that could have changed.
type LatticeReactionNetwork struct {
	lat   *lattice.Lattice
	sol   *solution.State
	cat   catalog.Catalog
	store *propensity.Store
}

// NewLatticeReactionNetwork wires the four collaborators together. It does
// not itself populate initial propensities — call Initialize for that.
func NewLatticeReactionNetwork(lat *lattice.Lattice, sol *solution.State, cat catalog.Catalog, store *propensity.Store) (*LatticeReactionNetwork, error) {
	if lat == nil || sol == nil || cat == nil || store == nil {
		return nil, ErrNilCollaborator
	}
	return &LatticeReactionNetwork{lat: lat, sol: sol, cat: cat, store: store}, nil
}

// Resum re-derives the propensity store's running total from scratch,
// bounding the floating-point drift that additive maintenance accumulates
// over long runs (spec's suggested every-1e6-step epoch; the simulation
// driver calls this on that cadence).
func (n *LatticeReactionNetwork) Resum() {
	n.store.Resum()
}

// Initialize populates the propensity store from scratch: every solution
// reaction's hom_props slot from the initial populations, and every site's
// single/pair rows from the initial occupancy. Call this once before the
// first step.
func (n *LatticeReactionNetwork) Initialize() error {
	for _, r := range n.cat.SolutionReactions() {
		p, err := n.computeSolutionPropensity(r)
		if err != nil {
			return err
		}
		if err := n.store.SetHomPropensity(r.ID, p); err != nil {
			return err
		}
	}
	for site := 0; site < n.lat.NumSites(); site++ {
		if err := n.RelevantReactions(site); err != nil {
			return err
		}
	}
	return nil
}

// UpdateState applies event's reaction to lattice occupancy and solution
// populations. step is carried only for InvariantError diagnostics.
func (n *LatticeReactionNetwork) UpdateState(event Event, step int64) error {
	r, err := n.cat.Reaction(event.ReactionID)
	if err != nil {
		return err
	}

	switch {
	case r.Phase == catalog.PhaseSolution:
		return n.updateSolution(r, event, step)
	case r.Phase == catalog.PhaseAdsorption:
		return n.updateAdsorption(r, event, step)
	case r.Phase == catalog.PhaseDesorption:
		return n.updateDesorption(r, event, step)
	case r.Phase.IsPairSite():
		return n.updatePairSite(r, event, step)
	default:
		return &InvariantError{Site: event.SiteOne, ReactionID: event.ReactionID, Step: step, Reason: "unknown reaction phase"}
	}
}

func (n *LatticeReactionNetwork) updateSolution(r catalog.Reaction, event Event, step int64) error {
	for _, sp := range r.Reactants {
		if err := n.sol.Add(sp, -1); err != nil {
			return &InvariantError{ReactionID: event.ReactionID, Step: step, Reason: "population underflow: " + err.Error()}
		}
	}
	for _, sp := range r.Products {
		if err := n.sol.Add(sp, 1); err != nil {
			return &InvariantError{ReactionID: event.ReactionID, Step: step, Reason: "population update failed: " + err.Error()}
		}
	}
	return nil
}

func (n *LatticeReactionNetwork) updateAdsorption(r catalog.Reaction, event Event, step int64) error {
	occ, err := n.lat.Occupancy(event.SiteOne)
	if err != nil {
		return err
	}
	if occ != catalog.EmptySite {
		return &InvariantError{Site: event.SiteOne, ReactionID: event.ReactionID, Step: step, Reason: "adsorption target site is not empty"}
	}
	if err := n.sol.Add(r.Reactants[0], -1); err != nil {
		return &InvariantError{Site: event.SiteOne, ReactionID: event.ReactionID, Step: step, Reason: "population underflow: " + err.Error()}
	}
	return n.lat.SetOccupancy(event.SiteOne, r.Products[0])
}

func (n *LatticeReactionNetwork) updateDesorption(r catalog.Reaction, event Event, step int64) error {
	occ, err := n.lat.Occupancy(event.SiteOne)
	if err != nil {
		return err
	}
	if occ != r.SiteSpecies {
		return &InvariantError{Site: event.SiteOne, ReactionID: event.ReactionID, Step: step, Reason: "desorption site species mismatch"}
	}
	if err := n.lat.SetOccupancy(event.SiteOne, catalog.EmptySite); err != nil {
		return err
	}
	return n.sol.Add(r.Products[0], 1)
}

func (n *LatticeReactionNetwork) updatePairSite(r catalog.Reaction, event Event, step int64) error {
	occ1, err := n.lat.Occupancy(event.SiteOne)
	if err != nil {
		return err
	}
	occ2, err := n.lat.Occupancy(event.SiteTwo)
	if err != nil {
		return err
	}
	if occ1 != r.PairSpecies[0] || occ2 != r.PairSpecies[1] {
		return &InvariantError{Site: event.SiteOne, ReactionID: event.ReactionID, Step: step, Reason: "pair-site species mismatch"}
	}
	if len(r.Products) != 2 {
		return &InvariantError{Site: event.SiteOne, ReactionID: event.ReactionID, Step: step, Reason: "pair-site reaction missing product occupancy pair"}
	}
	if err := n.lat.SetOccupancy(event.SiteOne, r.Products[0]); err != nil {
		return err
	}
	return n.lat.SetOccupancy(event.SiteTwo, r.Products[1])
}

// UpdatePropensities recomputes exactly the propensities that could have
// changed after event's UpdateState has already run.
func (n *LatticeReactionNetwork) UpdatePropensities(event Event) error {
	r, err := n.cat.Reaction(event.ReactionID)
	if err != nil {
		return err
	}

	switch {
	case r.Phase == catalog.PhaseSolution:
		return n.refreshSolutionReactions(changedSpecies(r))
	case r.Phase == catalog.PhaseAdsorption, r.Phase == catalog.PhaseDesorption:
		if err := n.ClearSite(event.SiteOne, EmptySite); err != nil {
			return err
		}
		if err := n.RelevantReactions(event.SiteOne); err != nil {
			return err
		}
		return n.refreshSolutionReactions(changedSpecies(r))
	case r.Phase.IsPairSite():
		// ignore keeps both ClearSite calls off the (site_one,site_two)
		// row, which is cleared exactly once below — RelevantReactions
		// then walks every neighbor of both sites, including each other,
		// so the shared pair row is recomputed fresh against the
		// post-reaction occupancy rather than left at its pre-reaction value.
		if err := n.ClearSite(event.SiteOne, event.SiteTwo); err != nil {
			return err
		}
		if err := n.ClearSite(event.SiteTwo, event.SiteOne); err != nil {
			return err
		}
		n.store.ClearKey(propensity.PairKey(event.SiteOne, event.SiteTwo))
		if err := n.RelevantReactions(event.SiteOne); err != nil {
			return err
		}
		return n.RelevantReactions(event.SiteTwo)
	}
	return nil
}

// changedSpecies lists the solution species ids a fired reaction touched
// (its reactants and products), used to decide which hom_props entries
// need refreshing.
func changedSpecies(r catalog.Reaction) []int {
	out := make([]int, 0, len(r.Reactants)+len(r.Products))
	out = append(out, r.Reactants...)
	out = append(out, r.Products...)
	return out
}

// refreshSolutionReactions recomputes the hom_props slot of every solution
// reaction whose reactant set intersects changed, and the single-site row of
// every site offering an adsorption whose solution reactant is in changed.
func (n *LatticeReactionNetwork) refreshSolutionReactions(changed []int) error {
	touched := make(map[int]bool, len(changed))
	for _, sp := range changed {
		touched[sp] = true
	}
	for _, r := range n.cat.SolutionReactions() {
		hit := false
		for _, sp := range r.Reactants {
			if touched[sp] {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		p, err := n.computeSolutionPropensity(r)
		if err != nil {
			return err
		}
		if err := n.store.SetHomPropensity(r.ID, p); err != nil {
			return err
		}
	}
	for site := 0; site < n.lat.NumSites(); site++ {
		occ, err := n.lat.Occupancy(site)
		if err != nil {
			return err
		}
		for _, r := range n.cat.SingleSite(occ) {
			if r.Phase == catalog.PhaseAdsorption && touched[r.Reactants[0]] {
				if err := n.RelevantReactions(site); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

// ClearSite removes, for each neighbor n of site (skipping ignore), the
// canonical pair row between site and n, and clears site's own single-site
// row. ignore prevents a two-site event from deleting the pair row
// between its two sites twice.
func (n *LatticeReactionNetwork) ClearSite(site, ignore int) error {
	neighbors, err := n.lat.Neighbors(site)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		if nb == ignore {
			continue
		}
		n.store.ClearKey(propensity.PairKey(site, nb))
	}
	n.store.ClearKey(propensity.SingleKey(site))
	return nil
}

// RelevantReactions re-enumerates and re-inserts every reaction currently
// possible at site: single-site (adsorption/desorption) reactions matching
// site's occupancy, and pair reactions matching (site, neighbor) for every
// neighbor of site. It always walks the full neighbor set — including a
// neighbor that was this event's other reacting site — so a pair row
// shared by both sites of a two-site event gets recomputed against the
// post-reaction occupancy rather than left at its stale pre-reaction value.
func (n *LatticeReactionNetwork) RelevantReactions(site int) error {
	occ, err := n.lat.Occupancy(site)
	if err != nil {
		return err
	}

	singles := n.cat.SingleSite(occ)
	if len(singles) > 0 {
		items := make([]propensity.RowItem, 0, len(singles))
		for _, r := range singles {
			p, err := n.singleSitePropensity(r)
			if err != nil {
				return err
			}
			items = append(items, propensity.RowItem{
				ReactionID: r.ID, Propensity: p,
				SiteOne: site, SiteTwo: propensity.NoSite,
			})
		}
		if err := n.store.SetSiteRow(propensity.SingleKey(site), items); err != nil {
			return err
		}
	}

	neighbors, err := n.lat.Neighbors(site)
	if err != nil {
		return err
	}
	// Accumulate across every occurrence of a given key before writing a
	// row: on small periodic lattices (e.g. two sites wrapped on one
	// axis) a single neighbor id can appear more than once in neighbors
	// (distinct directions landing on the same physical site), and each
	// occurrence contributes its own reaction instance to the row.
	pending := make(map[propensity.Key][]propensity.RowItem)
	for _, nb := range neighbors {
		nbOcc, err := n.lat.Occupancy(nb)
		if err != nil {
			return err
		}
		key := propensity.PairKey(site, nb)
		for _, r := range n.cat.PairSite(occ, nbOcc) {
			pending[key] = append(pending[key], propensity.RowItem{
				ReactionID: r.ID, Propensity: r.RateConstant,
				SiteOne: site, SiteTwo: nb,
			})
		}
		for _, r := range n.cat.PairSite(nbOcc, occ) {
			pending[key] = append(pending[key], propensity.RowItem{
				ReactionID: r.ID, Propensity: r.RateConstant,
				SiteOne: nb, SiteTwo: site,
			})
		}
	}
	for key, items := range pending {
		if err := n.store.SetSiteRow(key, items); err != nil {
			return err
		}
	}
	return nil
}

// singleSitePropensity evaluates a single-site (adsorption/desorption)
// reaction's propensity per §4.3's k*n1 unimolecular form: adsorption's
// reactant lives in solution, so n1 is its current population; desorption's
// reactant is the site itself, whose count is always 1 once occupancy is
// confirmed to match, so its propensity is k_effective unscaled.
func (n *LatticeReactionNetwork) singleSitePropensity(r catalog.Reaction) (float64, error) {
	if r.Phase != catalog.PhaseAdsorption {
		return r.RateConstant, nil
	}
	count, err := n.sol.Population(r.Reactants[0])
	if err != nil {
		return 0, err
	}
	return r.RateConstant * float64(count), nil
}

// computeSolutionPropensity evaluates k_effective times the product of
// each reactant's current solution population (k*n1*n2 bimolecular, k*n1
// unimolecular), per the catalog-opaque rate-constant convention.
func (n *LatticeReactionNetwork) computeSolutionPropensity(r catalog.Reaction) (float64, error) {
	p := r.RateConstant
	for _, sp := range r.Reactants {
		count, err := n.sol.Population(sp)
		if err != nil {
			return 0, err
		}
		p *= float64(count)
	}
	return p, nil
}
