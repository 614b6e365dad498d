package diagnostics

import (
	"fmt"
)

// parseSiteVertexID inverts lattice.SiteVertexID, recovering the integer
// site id from a core.Graph vertex id produced by lattice.Lattice.ToGraph.
func parseSiteVertexID(vid string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(vid, "s%d", &id); err != nil {
		return 0, fmt.Errorf("diagnostics: malformed site vertex id %q: %w", vid, err)
	}
	return id, nil
}
