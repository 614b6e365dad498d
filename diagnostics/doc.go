// Package diagnostics is a thin façade wiring the adapted bfs and dijkstra
// graph algorithms onto lattice.Lattice.ToUnweightedGraph() and
// lattice.Lattice.ToGraph(): it answers lattice-introspection questions
// ("which sites are within N hops of s", "how far apart are s1 and s2")
// for test fixtures and operators debugging a propensity hot-spot, without
// lattice, solution, or propensity needing to know any graph-algorithm
// vocabulary.
package diagnostics
