package catalog

import "sort"

// InMemory is the in-memory Catalog implementation: reactions are indexed
// once at construction into the three lookup shapes network/propensity
// need, then never mutated.
type InMemory struct {
	byID        map[int]Reaction
	solution    []Reaction
	singleSite  map[int][]Reaction
	pairSite    map[[2]int][]Reaction
}

// NewInMemory validates and indexes reactions into a Catalog.
// Solution-phase reaction ids must form a contiguous 0..k-1 run (the index
// space propensity.PropensityStore's dense vector uses); every reaction
// must have a unique id and a positive rate constant.
func NewInMemory(reactions []Reaction) (*InMemory, error) {
	c := &InMemory{
		byID:       make(map[int]Reaction, len(reactions)),
		singleSite: make(map[int][]Reaction),
		pairSite:   make(map[[2]int][]Reaction),
	}

	solutionIDs := make([]int, 0, len(reactions))
	for _, r := range reactions {
		if _, dup := c.byID[r.ID]; dup {
			return nil, ErrDuplicateReactionID
		}
		if r.RateConstant <= 0 {
			return nil, ErrBadRateConstant
		}
		c.byID[r.ID] = r

		switch {
		case r.Phase == PhaseSolution:
			solutionIDs = append(solutionIDs, r.ID)
		case r.Phase.IsSingleSite():
			c.singleSite[r.SiteSpecies] = append(c.singleSite[r.SiteSpecies], r)
		case r.Phase.IsPairSite():
			c.pairSite[r.PairSpecies] = append(c.pairSite[r.PairSpecies], r)
		}
	}

	sort.Ints(solutionIDs)
	for i, id := range solutionIDs {
		if i != id {
			return nil, ErrNonContiguousSolutionIDs
		}
	}
	c.solution = make([]Reaction, len(solutionIDs))
	for i, id := range solutionIDs {
		c.solution[i] = c.byID[id]
	}

	for _, bucket := range c.singleSite {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
	}
	for _, bucket := range c.pairSite {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
	}

	return c, nil
}

// Reaction implements Catalog.
func (c *InMemory) Reaction(id int) (Reaction, error) {
	r, ok := c.byID[id]
	if !ok {
		return Reaction{}, ErrReactionNotFound
	}
	return r, nil
}

// NumReactions implements Catalog.
func (c *InMemory) NumReactions() int {
	return len(c.byID)
}

// SolutionReactions implements Catalog.
func (c *InMemory) SolutionReactions() []Reaction {
	out := make([]Reaction, len(c.solution))
	copy(out, c.solution)
	return out
}

// SingleSite implements Catalog.
func (c *InMemory) SingleSite(species int) []Reaction {
	bucket := c.singleSite[species]
	out := make([]Reaction, len(bucket))
	copy(out, bucket)
	return out
}

// PairSite implements Catalog.
func (c *InMemory) PairSite(site, neighbor int) []Reaction {
	bucket := c.pairSite[[2]int{site, neighbor}]
	out := make([]Reaction, len(bucket))
	copy(out, bucket)
	return out
}
