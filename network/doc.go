// Package network is documented in network.go: see LatticeReactionNetwork
// for the update_state/update_propensities/clear_site/relevant_react
// pipeline driving a single lattice-coupled reaction network.
package network
