package service

import (
	"time"
)

// Scheduler runs delayed tasks identified by a key. Scheduling a key that is already pending
// replaces the pending task.
type Scheduler interface {
	// Schedule runs task once after delay
	Schedule(key string, delay time.Duration, task func())

	// Cancel drops the pending task for key, reporting whether one was pending
	Cancel(key string) bool

	// Pending reports whether a task is waiting for key
	Pending(key string) bool

	// Close stops the scheduler; pending tasks never run
	Close() error
}
