package propensity

import (
	"sort"
	"sync"

	"github.com/lgmc-sim/lgmc/catalog"
)

// Store is the system's PropensityStore: a dense vector of homogeneous
// (solution-phase) propensities plus a sparse map of site/pair rows, with
// a running total maintained additively on every mutation. Resum recomputes
// that total from scratch and should be called periodically by the
// simulation driver to bound floating-point drift.
type Store struct {
	mu sync.RWMutex

	hom    []float64
	homSum float64

	rows map[Key]row
	sum  float64
}

// NewStore builds an empty Store sized to cat's solution-reaction count;
// every hom_props slot starts at zero and no sparse rows exist until
// SetSiteRow is called.
func NewStore(cat catalog.Catalog) *Store {
	return &Store{
		hom:  make([]float64, len(cat.SolutionReactions())),
		rows: make(map[Key]row),
	}
}

// Sum returns the current running total propensity (hom_props sum plus
// every sparse row's sum), without re-deriving it from scratch.
func (s *Store) Sum() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sum
}

// HomPropensity returns the current value of the dense solution-reaction
// slot for reactionID.
func (s *Store) HomPropensity(reactionID int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if reactionID < 0 || reactionID >= len(s.hom) {
		return 0, ErrReactionOutOfRange
	}
	return s.hom[reactionID], nil
}

// HomPropensities returns a defensive copy of the full dense vector, in
// catalog.SolutionReactions() order.
func (s *Store) HomPropensities() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]float64, len(s.hom))
	copy(out, s.hom)
	return out
}

// SetHomPropensity overwrites the dense slot for reactionID and adjusts the
// running sum by the delta. A resulting negative running sum (possible
// only from accumulated floating-point error) triggers an exact Resum.
func (s *Store) SetHomPropensity(reactionID int, value float64) error {
	if value < 0 {
		return ErrNegativePropensity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if reactionID < 0 || reactionID >= len(s.hom) {
		return ErrReactionOutOfRange
	}
	delta := value - s.hom[reactionID]
	s.hom[reactionID] = value
	s.homSum += delta
	s.sum += delta
	if s.sum < 0 {
		s.resumLocked()
	}
	return nil
}

// SiteRow returns the items and row sum stored under key, and whether a
// row exists for it at all.
func (s *Store) SiteRow(key Key) ([]RowItem, float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[key]
	if !ok {
		return nil, 0, false
	}
	out := make([]RowItem, len(r.items))
	copy(out, r.items)
	return out, r.sum, true
}

// SetSiteRow replaces the row under key wholesale, recomputing its sum
// exactly and folding the delta into the running total. Passing an empty
// items slice is equivalent to ClearKey.
func (s *Store) SetSiteRow(key Key, items []RowItem) error {
	for _, it := range items {
		if it.Propensity < 0 {
			return ErrNegativePropensity
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var oldSum float64
	if old, ok := s.rows[key]; ok {
		oldSum = old.sum
	}

	if len(items) == 0 {
		delete(s.rows, key)
		s.sum += -oldSum
		if s.sum < 0 {
			s.resumLocked()
		}
		return nil
	}

	cp := make([]RowItem, len(items))
	copy(cp, items)
	newSum := sumItems(cp)
	s.rows[key] = row{items: cp, sum: newSum}
	s.sum += newSum - oldSum
	if s.sum < 0 {
		s.resumLocked()
	}
	return nil
}

// ClearKey removes the row under key entirely (clear_site: vacating a site
// drops every propensity row that referenced it).
func (s *Store) ClearKey(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.rows[key]; ok {
		delete(s.rows, key)
		s.sum -= old.sum
	}
}

// ActiveKeys returns every key with a non-empty row, sorted by (Site1,
// Site2) ascending. The sampler walks this order after the dense vector,
// giving the direct-method search a single deterministic linearization.
func (s *Store) ActiveKeys() []Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Key, 0, len(s.rows))
	for k := range s.rows {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Resum recomputes the running total exactly from the dense vector and
// every sparse row, replacing the additively-accumulated value. The
// simulation driver calls this periodically (and Store calls it itself
// whenever additive accumulation would otherwise go negative) to bound
// long-run floating-point drift.
func (s *Store) Resum() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumLocked()
}

func (s *Store) resumLocked() {
	var total float64
	for _, v := range s.hom {
		total += v
	}
	s.homSum = total
	for _, r := range s.rows {
		total += r.sum
	}
	s.sum = total
}
