package blas

import "errors"

// Sentinel errors for BLAS assembly and lookup.
var (
	// ErrIndexCountNotMultipleOfThree indicates a triangle geometry's index
	// buffer length is not divisible by 3.
	ErrIndexCountNotMultipleOfThree = errors.New("blas: index count is not a multiple of 3")

	// ErrIndexOutOfRange indicates a triangle geometry references a vertex
	// index >= len(vertices).
	ErrIndexOutOfRange = errors.New("blas: vertex index out of range")

	// ErrNonFiniteVertex indicates a vertex position contains NaN/Inf; the
	// build is refused rather than publishing a degenerate geometry.
	ErrNonFiniteVertex = errors.New("blas: non-finite vertex position")

	// ErrEmptySources indicates create_blas was called with no geometries.
	ErrEmptySources = errors.New("blas: at least one geometry source is required")

	// ErrHandleNotFound indicates the handle does not refer to a live BLAS.
	ErrHandleNotFound = errors.New("blas: handle not found")
)
