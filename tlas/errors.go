package tlas

import "errors"

// Sentinel errors for TLAS assembly and lookup.
var (
	// ErrEmptyInstances indicates create_tlas was called with no instances.
	ErrEmptyInstances = errors.New("tlas: at least one instance is required")

	// ErrSingularTransform indicates an instance transform has no inverse.
	// TLAS construction rejects instances with a fully singular transform
	// at build time.
	ErrSingularTransform = errors.New("tlas: instance transform is singular")

	// ErrUnknownBLAS indicates an instance references a BLAS handle that is
	// not (or no longer) live.
	ErrUnknownBLAS = errors.New("tlas: referenced BLAS handle is not live")

	// ErrHandleNotFound indicates the handle does not refer to a live TLAS.
	ErrHandleNotFound = errors.New("tlas: handle not found")
)
