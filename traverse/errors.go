package traverse

import "errors"

// ErrHandleNotFound indicates the traced handle does not refer to a live
// TLAS (propagated from the tlas.Store lookup).
var ErrHandleNotFound = errors.New("traverse: tlas handle not found")
