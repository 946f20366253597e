package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// TrendingConfig holds configuration for non-personalized trending lists.
type TrendingConfig struct {
	// HalfLifeDays is the recency half-life applied to community and game activity.
	HalfLifeDays float64

	// Window is how far back joins and sessions are counted.
	Window time.Duration

	// OverFetchFactor is how many records per returned item are read before ranking.
	OverFetchFactor int
}

type TrendingRequest struct {
	Kind  domain.CandidateKind `validate:"required,oneof=community server game"`
	Limit int                  `validate:"min=1,max=100"`
}

// Trending ranks communities by recent join growth, games by recent sessions and servers by
// population, without any per-user scoring.
type Trending struct {
	Directory datasources.TrendingLister
	Config    TrendingConfig

	now func() time.Time
}

func NewTrending(directory datasources.TrendingLister, config TrendingConfig) *Trending {
	return &Trending{
		Directory: directory,
		Config:    config,
		now:       time.Now,
	}
}

func (c *Trending) Execute(ctx context.Context, req TrendingRequest) ([]domain.MatchScore, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := c.now()
	since := now.Add(-c.Config.Window)
	fetch := req.Limit * max(1, c.Config.OverFetchFactor)

	var items []domain.MatchScore
	var raw []float64
	switch req.Kind {
	case domain.CandidateKindCommunity:
		communities, err := c.Directory.ListTrendingCommunities(ctx, since, fetch)
		if err != nil {
			return nil, fmt.Errorf("listing trending communities: %w", err)
		}
		for _, community := range communities {
			items = append(items, domain.MatchScore{
				TargetID:  community.ID,
				Community: &community,
				Reasons:   []string{fmt.Sprintf("%d new members recently", community.RecentJoins)},
			})
			raw = append(raw, domain.CommunityTrendingScore(community, c.Config.HalfLifeDays, now))
		}
	case domain.CandidateKindGame:
		games, err := c.Directory.ListTrendingGames(ctx, since, fetch)
		if err != nil {
			return nil, fmt.Errorf("listing trending games: %w", err)
		}
		for _, game := range games {
			items = append(items, domain.MatchScore{
				TargetID: game.ID,
				Game:     &game,
				Reasons:  []string{fmt.Sprintf("%d sessions recently", game.RecentSessions)},
			})
			raw = append(raw, domain.GameTrendingScore(game, c.Config.HalfLifeDays, now))
		}
	case domain.CandidateKindServer:
		servers, err := c.Directory.ListTrendingServers(ctx, fetch)
		if err != nil {
			return nil, fmt.Errorf("listing trending servers: %w", err)
		}
		for _, server := range servers {
			items = append(items, domain.MatchScore{
				TargetID: server.ID,
				Server:   &server,
				Reasons:  []string{fmt.Sprintf("%d/%d players online", server.PlayerCount, server.MaxPlayers)},
			})
			raw = append(raw, domain.PopulationScore(server))
		}
	}

	items = domain.TrendingResults(req.Kind, items, raw)
	for i := range items {
		items[i].ComputedAt = now
	}
	domain.SortByOverall(items)
	if len(items) > req.Limit {
		items = items[:req.Limit]
	}
	return items, nil
}
