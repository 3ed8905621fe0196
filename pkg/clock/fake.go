package clock

import (
	"sort"
	"sync"
	"time"

	"github.com/nudah/clinic-portal/pkg/interfaces"
)

// FakeScheduler is a deterministic Scheduler for tests. Time only moves
// when Advance is called; due callbacks fire in deadline order, with
// arming order breaking ties.
type FakeScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	entries []*fakeEntry
}

type fakeEntry struct {
	deadline  time.Duration
	seq       int
	fn        func()
	fired     bool
	cancelled bool
}

// NewFake creates a new fake scheduler starting at virtual time zero
func NewFake() *FakeScheduler {
	return &FakeScheduler{}
}

// After registers fn to fire once virtual time reaches now+d
func (f *FakeScheduler) After(d time.Duration, fn func()) interfaces.CancelFunc {
	f.mu.Lock()
	defer f.mu.Unlock()

	e := &fakeEntry{
		deadline: f.now + d,
		seq:      f.seq,
		fn:       fn,
	}
	f.seq++
	f.entries = append(f.entries, e)

	return func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		if e.fired || e.cancelled {
			return false
		}
		e.cancelled = true
		return true
	}
}

// Advance moves virtual time forward by d and fires every due callback.
// Callbacks armed while firing are themselves fired if already due.
func (f *FakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	f.now += d
	f.mu.Unlock()

	for {
		e := f.nextDue()
		if e == nil {
			return
		}
		e.fn()
	}
}

// Pending returns the number of armed, unfired callbacks
func (f *FakeScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, e := range f.entries {
		if !e.fired && !e.cancelled {
			n++
		}
	}
	return n
}

// nextDue claims the earliest due entry, or nil if none are due
func (f *FakeScheduler) nextDue() *fakeEntry {
	f.mu.Lock()
	defer f.mu.Unlock()

	var due []*fakeEntry
	for _, e := range f.entries {
		if !e.fired && !e.cancelled && e.deadline <= f.now {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})

	due[0].fired = true
	return due[0]
}
