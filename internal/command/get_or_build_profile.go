package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// ProfileConfig holds configuration for interest profile derivation.
type ProfileConfig struct {
	// TTL is how long a stored profile is served before it is rebuilt.
	TTL time.Duration

	// LookbackWindow is how far back sessions are read when building a profile.
	LookbackWindow time.Duration

	// TopGames is how many games by total play time become preferred games.
	TopGames int

	// MinSessionsForPlayStyle is the session count below which the default play-style
	// distribution is used.
	MinSessionsForPlayStyle int
}

type GetOrBuildProfileRequest struct {
	UserID string
	// ForceRebuild rebuilds the profile even when the stored one is fresh, and fails if the
	// rebuilt profile cannot be stored.
	ForceRebuild bool
}

// GetOrBuildProfile returns a user's interest profile, rebuilding it from session history
// when the stored one is missing or older than the TTL.
type GetOrBuildProfile struct {
	Profiles    datasources.ProfileRepository
	Sessions    datasources.UserSessionLister
	Games       datasources.GameFetcher
	Communities datasources.UserCommunityLister
	Config      ProfileConfig

	now func() time.Time
}

func NewGetOrBuildProfile(
	profiles datasources.ProfileRepository,
	sessions datasources.UserSessionLister,
	games datasources.GameFetcher,
	communities datasources.UserCommunityLister,
	config ProfileConfig,
) *GetOrBuildProfile {
	return &GetOrBuildProfile{
		Profiles:    profiles,
		Sessions:    sessions,
		Games:       games,
		Communities: communities,
		Config:      config,
		now:         time.Now,
	}
}

func (c *GetOrBuildProfile) Execute(
	ctx context.Context, req GetOrBuildProfileRequest,
) (domain.UserInterestProfile, error) {
	logger := domain.LoggerFromContext(ctx)
	now := c.now()

	var overrides domain.ProfileOverrides
	stored, err := c.Profiles.GetInterestProfile(ctx, req.UserID)
	switch {
	case err == nil:
		if !req.ForceRebuild && !stored.IsStale(now, c.Config.TTL) {
			return stored, nil
		}
		overrides = stored.Overrides
	case errors.Is(err, domain.ErrNotFound):
	default:
		return domain.UserInterestProfile{}, fmt.Errorf("getting stored profile: %w", err)
	}

	profile, err := c.build(ctx, req.UserID, now)
	if err != nil {
		return domain.UserInterestProfile{}, err
	}
	if !overrides.IsZero() {
		profile = profile.ApplyOverrides(overrides)
	}

	if err := c.Profiles.ReplaceInterestProfile(ctx, profile); err != nil {
		if req.ForceRebuild {
			return domain.UserInterestProfile{}, fmt.Errorf("storing profile: %w", err)
		}
		logger.WarnContext(ctx, "unable to store rebuilt profile",
			"user_id", req.UserID,
			"error", err,
		)
	}

	logger.DebugContext(ctx, "rebuilt interest profile",
		"user_id", req.UserID,
		"preferred_games", len(profile.PreferredGames),
		"completeness", profile.Completeness,
	)
	return profile, nil
}

func (c *GetOrBuildProfile) build(ctx context.Context, userID string, now time.Time) (domain.UserInterestProfile, error) {
	sessions, err := c.Sessions.ListUserSessions(ctx, userID, now.Add(-c.Config.LookbackWindow))
	if err != nil {
		return domain.UserInterestProfile{}, fmt.Errorf("listing sessions: %w", err)
	}

	seen := make(map[string]struct{})
	var gameIDs []string
	for _, s := range sessions {
		if _, ok := seen[s.GameID]; ok || s.GameID == "" {
			continue
		}
		seen[s.GameID] = struct{}{}
		gameIDs = append(gameIDs, s.GameID)
	}

	var games map[string]domain.Game
	if len(gameIDs) > 0 {
		games, err = c.Games.FetchGames(ctx, gameIDs)
		if err != nil {
			return domain.UserInterestProfile{}, fmt.Errorf("fetching games: %w", err)
		}
	}

	communities, err := c.Communities.ListUserCommunities(ctx, userID)
	if err != nil {
		return domain.UserInterestProfile{}, fmt.Errorf("listing communities: %w", err)
	}

	return domain.BuildInterestProfile(userID, sessions, games, communities, domain.ProfileBuildOptions{
		TopGames:                c.Config.TopGames,
		MinSessionsForPlayStyle: c.Config.MinSessionsForPlayStyle,
	}, now), nil
}
