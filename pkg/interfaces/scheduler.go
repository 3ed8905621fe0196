package interfaces

import "time"

// CancelFunc cancels a scheduled callback. It reports whether the
// cancellation happened before the callback fired.
type CancelFunc func() bool

// Scheduler defines the schedule-after-delay capability used by the
// session and chat components. Implementations must run callbacks at
// most once; tests substitute a deterministic fake.
type Scheduler interface {
	After(d time.Duration, fn func()) CancelFunc
}
