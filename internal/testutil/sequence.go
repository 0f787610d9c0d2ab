package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// RequireSequence fails t if got and want differ, printing a diff.
// A nil and an empty slice are considered equal.
func RequireSequence[T any](t testing.TB, got, want []T) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

// IsSorted reports whether values are in non-decreasing order under less.
func IsSorted[T any](values []T, less func(a, b T) bool) bool {
	for i := 1; i < len(values); i++ {
		if less(values[i], values[i-1]) {
			return false
		}
	}
	return true
}
