package builder_test

import (
	"testing"

	"github.com/rayforge/raygraph/builder"
)

// TestDefaultIDFn verifies DefaultIDFn produces decimal strings for
// zero-based indices.
func TestDefaultIDFn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		idx  int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{123, "123"},
	}

	for _, tc := range tests {
		if got := builder.DefaultIDFn(tc.idx); got != tc.want {
			t.Errorf("DefaultIDFn(%d): expected %q, got %q", tc.idx, tc.want, got)
		}
	}
}
