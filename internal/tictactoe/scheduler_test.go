package tictactoe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockScheduler(t *testing.T) {
	t.Run("Task runs after the delay", func(t *testing.T) {
		// Given: a task scheduled with a short delay
		fired := make(chan struct{})
		ClockScheduler{}.Schedule(5*time.Millisecond, func() { close(fired) })

		// Then: it runs
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("task did not run")
		}
	})

	t.Run("Cancelled task never runs", func(t *testing.T) {
		// Given: a task scheduled far enough in the future
		fired := make(chan struct{}, 1)
		cancel := ClockScheduler{}.Schedule(50*time.Millisecond, func() { fired <- struct{}{} })

		// When: it is cancelled
		stopped := cancel()

		// Then: cancel reports success and the task stays silent
		require.True(t, stopped)
		select {
		case <-fired:
			t.Fatal("cancelled task ran")
		case <-time.After(100 * time.Millisecond):
		}
		assert.False(t, cancel())
	})
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "awaiting_human", AwaitingHuman.String())
	assert.Equal(t, "awaiting_opponent", AwaitingOpponent.String())
	assert.Equal(t, "ended", Ended.String())
}
