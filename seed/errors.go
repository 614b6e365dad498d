// SPDX-License-Identifier: MIT
package seed

import "errors"

// Sentinel errors returned by Build. Seed options validate and panic on
// meaningless inputs at construction time; these are reserved for failures
// that can only be detected once the full option set is resolved against
// an actual lattice and solution state.
var (
	// ErrNeedRandSource is returned when a random-placement option was
	// supplied but no RNG was attached via WithSeed or WithRand.
	ErrNeedRandSource = errors.New("seed: random placement requested without WithSeed/WithRand")

	// ErrSiteOutOfRange is returned when a fixed-occupancy option names a
	// site id the target lattice does not have.
	ErrSiteOutOfRange = errors.New("seed: site id out of range")

	// ErrOptionViolation is returned when two options conflict (e.g. the
	// same site assigned twice, or requested random fractions exceed the
	// number of unassigned sites).
	ErrOptionViolation = errors.New("seed: conflicting seed options")

	// ErrConstructFailed wraps an unexpected failure applying a seed step;
	// present for parity with the %w wrapping policy the rest of the
	// module follows, and to give callers a single sentinel to check.
	ErrConstructFailed = errors.New("seed: construction failed")
)
