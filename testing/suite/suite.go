package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"
)

const (
	maxWaitDuration = 10 * time.Second
	randomSeed      = 20240917
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Presentation *Presentation
	Scheduler    *Scheduler
	Random       *rand.Rand
}

// New returns fixtures for a single test and a context that ends with it.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:            t,
		Logger:       logger,
		Presentation: NewPresentation(),
		Scheduler:    NewScheduler(),
		Random:       rand.New(rand.NewSource(randomSeed)), //nolint: gosec // deterministic tests
	}
}
