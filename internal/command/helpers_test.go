package command

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jbeshir/game-discovery/internal/domain"
)

var testNow = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func fixedNow() time.Time {
	return testNow
}

// newTestRand creates a deterministic random number generator for testing.
func newTestRand(seed uint64) func() *rand.Rand {
	return func() *rand.Rand {
		return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // weak random is fine for tests
	}
}

func testProfileConfig() ProfileConfig {
	return ProfileConfig{
		TTL:                     7 * 24 * time.Hour,
		LookbackWindow:          90 * 24 * time.Hour,
		TopGames:                5,
		MinSessionsForPlayStyle: 3,
	}
}

func testFeedbackConfig() FeedbackConfig {
	return FeedbackConfig{Step: 0.05, MinWeight: 0.05}
}

func ptr[T any](v T) *T {
	return &v
}
