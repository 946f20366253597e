package app

import (
	"time"

	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/datasources/resilient"
)

// DefaultProfileConfig returns the default config for building interest profiles.
func DefaultProfileConfig() command.ProfileConfig {
	return command.ProfileConfig{
		TTL:                     7 * 24 * time.Hour,
		LookbackWindow:          90 * 24 * time.Hour,
		TopGames:                5,
		MinSessionsForPlayStyle: 3,
	}
}

// DefaultDiscoverConfig returns the default config for personalized discovery.
func DefaultDiscoverConfig() command.DiscoverConfig {
	return command.DiscoverConfig{
		OverFetchFactor:    3,
		MaxCandidates:      500,
		ScoringConcurrency: 16,
		ActivityWindow:     30 * 24 * time.Hour,
	}
}

// DefaultTrendingConfig returns the default config for trending lists.
func DefaultTrendingConfig() command.TrendingConfig {
	return command.TrendingConfig{
		HalfLifeDays:    7,
		Window:          7 * 24 * time.Hour,
		OverFetchFactor: 3,
	}
}

func DefaultSimilarToConfig() command.SimilarToConfig {
	return command.SimilarToConfig{
		CandidateLimit: 200,
	}
}

// DefaultFeedbackConfig returns the default step applied to category weights by feedback.
func DefaultFeedbackConfig() command.FeedbackConfig {
	return command.FeedbackConfig{
		Step:      0.05,
		MinWeight: 0.05,
	}
}

func DefaultActionRecorderConfig() command.ActionRecorderConfig {
	return command.ActionRecorderConfig{
		BufferSize:      1000,
		BatchSize:       100,
		FlushInterval:   2 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// DefaultRebuildStaleProfilesConfig returns the default config for the profile refresh job.
func DefaultRebuildStaleProfilesConfig() command.RebuildStaleProfilesConfig {
	return command.RebuildStaleProfilesConfig{
		BatchSize: 1000,
	}
}

// DefaultResilienceConfig returns the timeout, retry and breaker settings for external reads.
func DefaultResilienceConfig() resilient.Config {
	return resilient.Config{
		Timeout:             2 * time.Second,
		MaxRetries:          2,
		InitialBackoff:      50 * time.Millisecond,
		MaxBackoff:          500 * time.Millisecond,
		BreakerMinRequests:  20,
		BreakerFailureRatio: 0.5,
		BreakerInterval:     time.Minute,
		BreakerOpenTimeout:  30 * time.Second,
	}
}
