// Package: lvlath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (e.g., rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the builder could not construct a
// topology without breaking invariants, or that internal state was missing.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that a constructor received a meaningless or
// unsupported parameter value (e.g., an unknown PlatonicName).
var ErrOptionViolation = errors.New("builder: invalid option value")
