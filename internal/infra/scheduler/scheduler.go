// Package scheduler provides a keyed delay queue: one pending task per key, replaced when the
// key is scheduled again and dropped on cancel.
package scheduler

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"

	"brew/internal/domain/service"

	"go.uber.org/fx"
)

// DelayQueue runs each task on its own goroutine once its delay has elapsed.
type DelayQueue struct {
	mu      sync.Mutex
	pending entryHeap
	byKey   map[string]*entry
	wakeUp  chan struct{}
	closed  bool
	done    chan struct{}
	running sync.WaitGroup
	logger  *slog.Logger
}

// NewDelayQueue starts the queue loop.
func NewDelayQueue(logger *slog.Logger) *DelayQueue {
	dq := &DelayQueue{
		byKey:  make(map[string]*entry),
		wakeUp: make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: logger,
	}
	go dq.loop()

	return dq
}

// Schedule runs task after delay, replacing any task pending for key. It is a no-op once the
// queue is closed.
func (dq *DelayQueue) Schedule(key string, delay time.Duration, task func()) {
	dq.mu.Lock()
	defer dq.mu.Unlock()

	if dq.closed {
		dq.logger.Debug("Scheduler closed, dropping task", "key", key)

		return
	}

	if old := dq.byKey[key]; old != nil {
		heap.Remove(&dq.pending, old.index)
	}

	e := &entry{key: key, readyAt: time.Now().Add(delay), task: task}
	heap.Push(&dq.pending, e)
	dq.byKey[key] = e

	dq.notify()
}

// Cancel drops the task pending for key.
func (dq *DelayQueue) Cancel(key string) bool {
	dq.mu.Lock()
	defer dq.mu.Unlock()

	e := dq.byKey[key]
	if e == nil {
		return false
	}
	heap.Remove(&dq.pending, e.index)
	delete(dq.byKey, key)

	dq.notify()

	return true
}

// Pending reports whether a task is waiting for key.
func (dq *DelayQueue) Pending(key string) bool {
	dq.mu.Lock()
	defer dq.mu.Unlock()

	_, ok := dq.byKey[key]

	return ok
}

// Close discards pending tasks and waits for running ones to return.
func (dq *DelayQueue) Close() error {
	dq.mu.Lock()
	if dq.closed {
		dq.mu.Unlock()

		return nil
	}
	dq.closed = true
	dq.pending = nil
	dq.byKey = make(map[string]*entry)
	dq.mu.Unlock()

	dq.notify()
	<-dq.done
	dq.running.Wait()

	return nil
}

func (dq *DelayQueue) notify() {
	select {
	case dq.wakeUp <- struct{}{}:
	default:
	}
}

func (dq *DelayQueue) loop() {
	defer close(dq.done)

	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		closed, next, ok := dq.state()
		if closed {
			timer.Stop()

			return
		}

		if !ok {
			<-dq.wakeUp

			continue
		}

		delay := time.Until(next)
		if delay <= 0 {
			dq.runReady()

			continue
		}

		timer.Reset(delay)
		select {
		case <-timer.C:
		case <-dq.wakeUp:
			timer.Stop()
		}
	}
}

func (dq *DelayQueue) state() (closed bool, next time.Time, ok bool) {
	dq.mu.Lock()
	defer dq.mu.Unlock()

	if head := dq.pending.peek(); head != nil {
		next, ok = head.readyAt, true
	}

	return dq.closed, next, ok
}

func (dq *DelayQueue) runReady() {
	now := time.Now()
	for {
		dq.mu.Lock()
		head := dq.pending.peek()
		if dq.closed || head == nil || head.readyAt.After(now) {
			dq.mu.Unlock()

			return
		}
		heap.Pop(&dq.pending)
		delete(dq.byKey, head.key)
		dq.running.Add(1)
		dq.mu.Unlock()

		go dq.run(head)
	}
}

func (dq *DelayQueue) run(e *entry) {
	defer dq.running.Done()
	defer func() {
		if r := recover(); r != nil {
			dq.logger.Error("Scheduled task panicked", "key", e.key, "panic", r)
		}
	}()

	e.task()
}

// Params holds dependencies for the scheduler, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewScheduler creates the delay queue and stops it with the application
func NewScheduler(params Params) service.Scheduler {
	dq := NewDelayQueue(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Stopping scheduler")

			return dq.Close()
		},
	})

	return dq
}

// Module provides the scheduler FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewScheduler),
)
