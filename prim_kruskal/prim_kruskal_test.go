package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lgmc-sim/lgmc/core"         // core.Graph, core.Edge, and core error types
	"github.com/lgmc-sim/lgmc/prim_kruskal" // package under test
	"github.com/stretchr/testify/assert"    // assertion library
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	A—B (weight 1), B—C (weight 2), A—C (weight 3).
//
// This graph’s MST consists of edges A—B and B—C with total weight 3.
func buildTriangle() *core.Graph {
	// Create a new weighted, undirected graph.
	g := core.NewGraph(core.WithWeighted())
	// Add edges: A<->B(1), B<->C(2), A<->C(3).
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount total edges.
// - First, it ensures connectivity by adding a chain V0—V1—...—V(n-1) with random weights [1..10].
// - Then it adds (edgesCount - (n-1)) additional random edges with random weights [1..100].
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	// Create a new weighted, undirected graph.
	g := core.NewGraph(core.WithWeighted())

	// 1. Add n vertices named "V0", "V1", ..., "V(n-1)".
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}

	// 2. Use a new rand.Rand with a fixed seed so that generated edges are always the same.
	r := rand.New(rand.NewSource(42))

	// 3. Ensure basic connectivity by chaining vertices in a line.
	//    For i = 1..n-1, connect V(i-1) to V(i) with a weight in [1..10].
	for i := 1; i < n; i++ {
		weight := int64(1 + r.Intn(10)) // random weight between 1 and 10
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), weight)
	}

	// 4. Add extra random edges to reach edgesCount total edges.
	//    Skip self-loops; allow multiple edges only if they connect different vertices.
	extra := edgesCount - (n - 1)
	for i := 0; i < extra; {
		u := r.Intn(n) // random vertex index for endpoint u
		v := r.Intn(n) // random vertex index for endpoint v
		if u == v {
			// skip loops
			continue
		}
		weight := int64(1 + r.Intn(100)) // random weight between 1 and 100

		// AddEdge will fail if multi-edges are disallowed; but default Graph allows only one edge per pair.
		// We do not check the error here since duplicates may be skipped by core.Graph.
		// If duplicate, error is ErrMultiEdgeNotAllowed, and that iteration won’t increase i.
		if _, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), weight); err == nil {
			i++ // only count successfully added edges
		}
	}

	return g
}

// TestValidation_EmptyOrDisconnected verifies that Prim returns ErrDisconnected
// when the graph has no vertices (empty) or when it’s impossible to form a spanning tree.
func TestValidation_EmptyOrDisconnected(t *testing.T) {
	// Create an empty weighted graph (no vertices, no edges).
	g := core.NewGraph(core.WithWeighted())

	// Prim: with root "A" on an empty graph should return ErrDisconnected and empty MST.
	edgesP, totalP, errP := prim_kruskal.Prim(g, "A")
	assert.Empty(t, edgesP)                               // expect no edges returned
	assert.Zero(t, totalP)                                // expect total weight = 0
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected) // expect ErrDisconnected
}

// TestValidation_UnweightedOrDirected verifies that Prim rejects unweighted or directed graphs.
func TestValidation_UnweightedOrDirected(t *testing.T) {
	// 1. Unweighted graph: By default NewGraph() is unweighted and undirected.
	gUnweighted := core.NewGraph()

	// Prim on unweighted should error ErrInvalidGraph.
	_, _, errP1 := prim_kruskal.Prim(gUnweighted, "A")
	assert.ErrorIs(t, errP1, prim_kruskal.ErrInvalidGraph)

	// 2. Directed but weighted graph: Create graph with both directed and weighted flags.
	gDirected := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	// Prim should error ErrInvalidGraph when graph.Directed() == true.
	_, _, errP2 := prim_kruskal.Prim(gDirected, "A")
	assert.ErrorIs(t, errP2, prim_kruskal.ErrInvalidGraph)
}

// TestValidation_MissingRoot verifies that Prim returns ErrEmptyRoot when the root string is empty.
func TestValidation_MissingRoot(t *testing.T) {
	// Build a simple triangle to have vertices.
	g := buildTriangle()

	// Call Prim with an empty root. Should return ErrEmptyRoot.
	_, _, err := prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)
}

// TestPrim_Triangle ensures that Prim on the triangle graph picks the correct MST edges and weight.
func TestPrim_Triangle(t *testing.T) {
	// Build our triangle graph: A—B(1), B—C(2), A—C(3).
	g := buildTriangle()

	// Compute MST via Prim, rooted at "A".
	mst, total, err := prim_kruskal.Prim(g, "A")
	assert.NoError(t, err)      // no error expected
	assert.Equal(t, 3.0, total) // MST weight should be 1 + 2 = 3
	assert.Len(t, mst, 2)       // MST must contain exactly 2 edges

	// Verify that edges {A—B, B—C} appear (undirected so order doesn’t matter).
	names := make(map[string]bool, 2)
	for _, e := range mst {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[fmt.Sprintf("%s-%s", u, v)] = true
	}
	assert.True(t, names["A-B"], "edge A-B must be in MST")
	assert.True(t, names["B-C"], "edge B-C must be in MST")
}

// TestSingleVertexGraph verifies that Prim returns an empty MST with no error
// when the graph has exactly one vertex and the root matches it.
func TestSingleVertexGraph(t *testing.T) {
	// Create a graph with one vertex "X".
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("X")

	// Prim on single-vertex graph with root "X": no error, empty MST, total weight = 0.
	mstP, totalP, errP := prim_kruskal.Prim(g, "X")
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestTwoIsolatedVertices verifies that a disconnected graph with two isolated vertices
// returns ErrDisconnected from Prim.
func TestTwoIsolatedVertices(t *testing.T) {
	// Create a graph with two vertices "A" and "B", but no edge between them.
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")

	// Prim from "A" should detect disconnection: ErrDisconnected.
	_, _, errP := prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
}

// TestParallelEdgesSelection verifies that when multiple edges exist between same vertices (multi-edges),
// Prim picks the lighter edge in the MST.
func TestParallelEdgesSelection(t *testing.T) {
	// Create a graph that allows multi-edges and is weighted.
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())

	// Add two parallel edges between A and B: one with weight 5, one with weight 1.
	_, err1 := g.AddEdge("A", "B", 5)
	assert.NoError(t, err1)
	_, err2 := g.AddEdge("A", "B", 1)
	assert.NoError(t, err2)

	// Prim from root "A" should pick the weight‐1 edge: total = 1, MST size = 1.
	mstP, totalP, errP := prim_kruskal.Prim(g, "A")
	assert.NoError(t, errP)
	assert.Equal(t, 1.0, totalP)
	assert.Len(t, mstP, 1)
}

// TestMixedEdgesFlagIgnored verifies that if graph is created with WithMixedEdges (allow per‐edge directedness),
// but a truly directed edge is inserted, Prim errors ErrInvalidGraph,
// because MST requires a purely undirected graph.
func TestMixedEdgesFlagIgnored(t *testing.T) {
	// Create a graph that allows mixed edges (per-edge directed overrides) and is weighted.
	g := core.NewGraph(core.WithWeighted(), core.WithMixedEdges())

	// Add a directed edge override: A->B with weight 1.
	_, err := g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	assert.NoError(t, err)

	// Prim from "A" should detect directed edge and return ErrInvalidGraph.
	_, _, errP := prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, errP, prim_kruskal.ErrInvalidGraph)
}

// TestPrim_MediumGraph exercises Prim on a larger randomly generated graph,
// checking that it spans every vertex exactly.
func TestPrim_MediumGraph(t *testing.T) {
	// Build a "medium" graph with 10 vertices and 20 total edges.
	g := buildMediumGraph(10, 20)

	// Compute MST via Prim, rooted at "V0".
	mstP, totalP, errP := prim_kruskal.Prim(g, "V0")
	assert.NoError(t, errP)                  // no error expected
	assert.Len(t, mstP, len(g.Vertices())-1) // MST size must be |V|-1
	assert.Greater(t, totalP, 0.0)
}
