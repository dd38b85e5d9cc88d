// errors.go — sentinel errors for the codec package, following the
// same discipline as builder/errors.go: package-level sentinels only,
// matched via errors.Is, context attached by %w-wrapping at call sites.

package codec

import "errors"

var (
	// ErrTooFewBlocks indicates MBlocks or ABlocks was smaller than 1.
	ErrTooFewBlocks = errors.New("codec: block count must be >= 1")

	// ErrInvalidDegree indicates Q was smaller than 1 or greater than ABlocks,
	// making distinct-auxiliary sampling impossible.
	ErrInvalidDegree = errors.New("codec: q out of range")

	// ErrNeedRandSource indicates a stochastic sampler was called with
	// a nil *rand.Rand.
	ErrNeedRandSource = errors.New("codec: rng is required")
)
