package command

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// SimilarToConfig holds configuration for similar-item lookups.
type SimilarToConfig struct {
	// CandidateLimit bounds how many records are compared against the source.
	CandidateLimit int
}

type SimilarToRequest struct {
	UserID string               `validate:"required"`
	Kind   domain.CandidateKind `validate:"required,oneof=community server player game"`
	ID     string               `validate:"required,max=64"`
	Limit  int                  `validate:"min=1,max=100"`
}

// SimilarTo finds items like a source item by tag, genre and game overlap. For games a vector
// similarity driver is tried first.
type SimilarTo struct {
	Directory     datasources.DirectoryRepository
	Relationships datasources.BlockedUserLister
	Similarity    datasources.SimilarGameLister
	Config        SimilarToConfig

	now func() time.Time
}

func NewSimilarTo(
	directory datasources.DirectoryRepository,
	relationships datasources.BlockedUserLister,
	similarity datasources.SimilarGameLister,
	config SimilarToConfig,
) *SimilarTo {
	return &SimilarTo{
		Directory:     directory,
		Relationships: relationships,
		Similarity:    similarity,
		Config:        config,
		now:           time.Now,
	}
}

func (c *SimilarTo) Execute(ctx context.Context, req SimilarToRequest) ([]domain.MatchScore, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var items []domain.MatchScore
	var err error
	switch req.Kind {
	case domain.CandidateKindCommunity:
		items, err = c.similarCommunities(ctx, req)
	case domain.CandidateKindServer:
		items, err = c.similarServers(ctx, req)
	case domain.CandidateKindPlayer:
		items, err = c.similarPlayers(ctx, req)
	case domain.CandidateKindGame:
		items, err = c.similarGames(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	now := c.now()
	for i := range items {
		items[i].ComputedAt = now
	}
	domain.SortByOverall(items)
	if len(items) > req.Limit {
		items = items[:req.Limit]
	}
	return items, nil
}

func (c *SimilarTo) similarCommunities(ctx context.Context, req SimilarToRequest) ([]domain.MatchScore, error) {
	source, err := c.Directory.GetCommunity(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("getting community [%s]: %w", req.ID, err)
	}
	if source.IsPrivate && source.OwnerID != req.UserID {
		memberships, err := c.Directory.ListUserCommunities(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("listing communities: %w", err)
		}
		if !slices.ContainsFunc(memberships, func(m domain.Community) bool { return m.ID == source.ID }) {
			return nil, fmt.Errorf("community [%s] is private: %w", req.ID, domain.ErrUnauthorized)
		}
	}

	filters := domain.DiscoveryFilters{Tags: source.Tags}
	if len(source.Tags) == 0 {
		if len(source.AllowedGames) == 0 {
			return nil, nil
		}
		filters = domain.DiscoveryFilters{GameIDs: source.AllowedGames}
	}

	candidates, _, err := c.Directory.ListCandidateCommunities(ctx, c.query(req, filters, source.ID))
	if err != nil {
		return nil, fmt.Errorf("listing candidate communities: %w", err)
	}

	sourceFeatures := domain.CommunityFeatures(source)
	var items []domain.MatchScore
	for _, candidate := range candidates {
		score := domain.Jaccard(sourceFeatures, domain.CommunityFeatures(candidate))
		if score <= 0 {
			continue
		}
		item := domain.SimilarResult(domain.CandidateKindCommunity, req.UserID, candidate.ID, score,
			"Similar to "+source.Name)
		item.Community = &candidate
		items = append(items, item)
	}
	return items, nil
}

func (c *SimilarTo) similarServers(ctx context.Context, req SimilarToRequest) ([]domain.MatchScore, error) {
	source, err := c.Directory.GetServer(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("getting server [%s]: %w", req.ID, err)
	}

	var filters domain.DiscoveryFilters
	if source.GameID != "" {
		filters.GameIDs = []string{source.GameID}
	}
	candidates, _, err := c.Directory.ListCandidateServers(ctx, c.query(req, filters, source.ID))
	if err != nil {
		return nil, fmt.Errorf("listing candidate servers: %w", err)
	}

	sourceFeatures := domain.ServerFeatures(source)
	var items []domain.MatchScore
	for _, candidate := range candidates {
		score := domain.Jaccard(sourceFeatures, domain.ServerFeatures(candidate))
		if score <= 0 {
			continue
		}
		item := domain.SimilarResult(domain.CandidateKindServer, req.UserID, candidate.ID, score,
			"Similar to "+source.Name)
		item.Server = &candidate
		items = append(items, item)
	}
	return items, nil
}

func (c *SimilarTo) similarPlayers(ctx context.Context, req SimilarToRequest) ([]domain.MatchScore, error) {
	source, err := c.Directory.GetPlayer(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("getting player [%s]: %w", req.ID, err)
	}
	if len(source.RecentGames) == 0 {
		return nil, nil
	}

	blocked, err := c.Relationships.ListBlockedUserIDs(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing blocked users: %w", err)
	}

	q := c.query(req, domain.DiscoveryFilters{GameIDs: source.RecentGames}, source.UserID)
	q.ExcludeIDs = append(q.ExcludeIDs, req.UserID)
	q.ExcludeIDs = append(q.ExcludeIDs, blocked...)
	candidates, _, err := c.Directory.ListCandidatePlayers(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing candidate players: %w", err)
	}

	var items []domain.MatchScore
	for _, candidate := range candidates {
		score := domain.Jaccard(source.RecentGames, candidate.RecentGames)
		if score <= 0 {
			continue
		}
		item := domain.SimilarResult(domain.CandidateKindPlayer, req.UserID, candidate.UserID, score,
			"Plays the same games as "+source.DisplayName)
		item.Player = &candidate
		items = append(items, item)
	}
	return items, nil
}

func (c *SimilarTo) similarGames(ctx context.Context, req SimilarToRequest) ([]domain.MatchScore, error) {
	games, err := c.Directory.FetchGames(ctx, []string{req.ID})
	if err != nil {
		return nil, fmt.Errorf("fetching game [%s]: %w", req.ID, err)
	}
	source, ok := games[req.ID]
	if !ok {
		return nil, fmt.Errorf("game [%s]: %w", req.ID, domain.ErrNotFound)
	}

	items, err := c.similarGamesByVector(ctx, req, source)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "vector similarity failed, falling back to overlap",
			"game_id", req.ID,
			"error", err,
		)
	}
	if len(items) > 0 {
		return items, nil
	}

	sourceFeatures := domain.GameFeatures(source)
	if len(sourceFeatures) == 0 {
		return nil, nil
	}
	candidates, _, err := c.Directory.ListCandidateGames(ctx,
		c.query(req, domain.DiscoveryFilters{Tags: sourceFeatures}, source.ID))
	if err != nil {
		return nil, fmt.Errorf("listing candidate games: %w", err)
	}

	for _, candidate := range candidates {
		score := domain.Jaccard(sourceFeatures, domain.GameFeatures(candidate))
		if score <= 0 {
			continue
		}
		item := domain.SimilarResult(domain.CandidateKindGame, req.UserID, candidate.ID, score,
			"Shares genres with "+source.Name)
		item.Game = &candidate
		items = append(items, item)
	}
	return items, nil
}

func (c *SimilarTo) similarGamesByVector(
	ctx context.Context, req SimilarToRequest, source domain.Game,
) ([]domain.MatchScore, error) {
	similar, err := c.Similarity.ListSimilarGames(ctx, source.ID, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing similar games: %w", err)
	}
	if len(similar) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(similar))
	for _, s := range similar {
		ids = append(ids, s.ID)
	}
	games, err := c.Directory.FetchGames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching similar games: %w", err)
	}

	items := make([]domain.MatchScore, 0, len(similar))
	for _, s := range similar {
		game, ok := games[s.ID]
		if !ok {
			continue
		}
		item := domain.SimilarResult(domain.CandidateKindGame, req.UserID, s.ID, s.Score,
			"Players of "+source.Name+" also enjoy this")
		item.Game = &game
		items = append(items, item)
	}
	return items, nil
}

func (c *SimilarTo) query(req SimilarToRequest, filters domain.DiscoveryFilters, sourceID string) domain.CandidateQuery {
	return domain.CandidateQuery{
		RequesterID: req.UserID,
		Filters:     filters,
		ExcludeIDs:  []string{sourceID},
		Limit:       c.Config.CandidateLimit,
	}
}
