package tictactoe

import "time"

// Scheduler defers the bot's move. Schedule must not run task on the calling
// goroutine; the returned cancel reports whether task was stopped before it ran.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) (cancel func() bool)
}

// ClockScheduler runs tasks on wall-clock timers.
type ClockScheduler struct{}

func (that ClockScheduler) Schedule(delay time.Duration, task func()) func() bool {
	return time.AfterFunc(delay, task).Stop
}
