package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// RebuildStaleProfilesConfig holds configuration for the batch profile refresh.
type RebuildStaleProfilesConfig struct {
	// BatchSize is the most profiles rebuilt in one run.
	BatchSize int
}

type RebuildStaleProfilesResult struct {
	Rebuilt int
	Failed  int
}

// RebuildStaleProfiles refreshes profiles older than the profile TTL, so that discovery requests
// rarely have to rebuild one inline.
type RebuildStaleProfiles struct {
	Stale    datasources.StaleProfileLister
	Profiles *GetOrBuildProfile
	Config   RebuildStaleProfilesConfig

	now func() time.Time
}

func NewRebuildStaleProfiles(
	stale datasources.StaleProfileLister,
	profiles *GetOrBuildProfile,
	config RebuildStaleProfilesConfig,
) *RebuildStaleProfiles {
	return &RebuildStaleProfiles{
		Stale:    stale,
		Profiles: profiles,
		Config:   config,
		now:      time.Now,
	}
}

func (c *RebuildStaleProfiles) Execute(ctx context.Context, _ Empty) (RebuildStaleProfilesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	cutoff := c.now().Add(-c.Profiles.Config.TTL)
	userIDs, err := c.Stale.ListStaleProfileUserIDs(ctx, cutoff, c.Config.BatchSize)
	if err != nil {
		return RebuildStaleProfilesResult{}, fmt.Errorf("listing stale profiles: %w", err)
	}
	if len(userIDs) == 0 {
		logger.InfoContext(ctx, "no stale profiles to rebuild")
		return RebuildStaleProfilesResult{}, nil
	}

	logger.InfoContext(ctx, "rebuilding stale profiles", "user_count", len(userIDs))

	var result RebuildStaleProfilesResult
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if _, err := c.Profiles.Execute(ctx, GetOrBuildProfileRequest{UserID: userID, ForceRebuild: true}); err != nil {
			logger.ErrorContext(ctx, "failed to rebuild profile",
				"user_id", userID,
				"error", err,
			)
			result.Failed++
			continue
		}
		result.Rebuilt++
	}

	logger.InfoContext(ctx, "profile rebuild complete",
		"rebuilt", result.Rebuilt,
		"failed", result.Failed,
	)
	return result, nil
}
