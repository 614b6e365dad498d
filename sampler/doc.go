// Package sampler is documented in sampler.go: see Sampler.Next for the
// direct-method draw (waiting time plus reaction selection) over a
// propensity.Store's dense-then-sparse partition.
package sampler
