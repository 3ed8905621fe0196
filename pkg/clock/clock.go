package clock

import (
	"time"

	"github.com/nudah/clinic-portal/pkg/interfaces"
)

// realScheduler schedules callbacks on the wall clock
type realScheduler struct{}

// Real returns a Scheduler backed by time.AfterFunc
func Real() interfaces.Scheduler {
	return realScheduler{}
}

// After schedules fn to run once after d
func (realScheduler) After(d time.Duration, fn func()) interfaces.CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
