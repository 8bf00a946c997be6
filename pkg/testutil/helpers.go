// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"
)

// FixedClock returns a clock function pinned to the given time, for
// deterministic age and date calculations in tests.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}
