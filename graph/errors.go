// errors.go — sentinel errors for the graph package.
//
// Error policy (explicit and strict, following builder's discipline):
//   - Only sentinel variables are exposed at package level.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never stringified with caller-specific data at
//     definition site; context is attached via fmt.Errorf("...: %w", ...).

package graph

import "errors"

var (
	// ErrInvalidParams indicates NewGraph received parameters outside
	// their documented domain (mblocks<1, ablocks<1, fudge<=1.0, or a
	// malformed auxiliary map).
	ErrInvalidParams = errors.New("graph: invalid initialisation parameters")

	// ErrCapacityExhausted indicates IngestCheckBlock was called after
	// every slot in [coblocks, nodeSpace) was already assigned.
	ErrCapacityExhausted = errors.New("graph: check-block capacity exhausted")

	// ErrInvariantViolation indicates a programming error was detected
	// at runtime: a missing reciprocal edge, a double solve, or an
	// exhausted edge_count reaching zero unexpectedly. spec.md permits
	// release builds to degrade this to a warning; Go has no separate
	// debug/release mode, so this module always returns the error.
	ErrInvariantViolation = errors.New("graph: invariant violation")
)
