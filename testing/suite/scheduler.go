package suite

import (
	"sync"
	"time"
)

// Task is a deferred function held by Scheduler until a test fires it.
type Task struct {
	Delay time.Duration

	run       func()
	cancelled bool
	done      bool
}

// Scheduler never runs anything by itself; tests decide when tasks fire.
type Scheduler struct {
	mu    sync.Mutex
	tasks []*Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (that *Scheduler) Schedule(delay time.Duration, task func()) func() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	scheduled := &Task{Delay: delay, run: task}
	that.tasks = append(that.tasks, scheduled)

	return func() bool {
		that.mu.Lock()
		defer that.mu.Unlock()

		if scheduled.cancelled || scheduled.done {
			return false
		}
		scheduled.cancelled = true

		return true
	}
}

// Pending returns the number of tasks neither fired nor cancelled.
func (that *Scheduler) Pending() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.pendingLocked())
}

// FireAll runs every pending task in scheduling order and returns how many ran.
func (that *Scheduler) FireAll() int {
	that.mu.Lock()
	pending := that.pendingLocked()
	for _, task := range pending {
		task.done = true
	}
	that.mu.Unlock()

	for _, task := range pending {
		task.run()
	}

	return len(pending)
}

// Last returns the most recently scheduled task, or nil.
func (that *Scheduler) Last() *Task {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.tasks) == 0 {
		return nil
	}

	return that.tasks[len(that.tasks)-1]
}

// Count returns how many tasks were ever scheduled.
func (that *Scheduler) Count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.tasks)
}

// ForceRun runs task even if it was cancelled, like a timer that fired while
// its cancellation was in flight.
func (that *Task) ForceRun() {
	that.run()
}

func (that *Scheduler) pendingLocked() []*Task {
	pending := make([]*Task, 0, len(that.tasks))
	for _, task := range that.tasks {
		if !task.cancelled && !task.done {
			pending = append(pending, task)
		}
	}

	return pending
}
