// Package catalog is documented in catalog.go; see the Catalog interface
// and the InMemory implementation in memory.go for the indexing contract
// (contiguous 0..k-1 solution-reaction ids, occupancy-keyed single/pair
// lookups).
package catalog
