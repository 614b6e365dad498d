// Package propensity is documented in store.go: see Store for the
// dense/sparse partition and Key for the canonical single-site/pair-site
// row identity.
package propensity
