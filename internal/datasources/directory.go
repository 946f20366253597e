package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/game-discovery/internal/domain"
)

// DirectoryRepository combines the read-only directory of games, communities, servers and players.
type DirectoryRepository interface {
	GameFetcher
	CommunityGetter
	ServerGetter
	PlayerGetter
	UserCommunityLister
	CandidateCommunityLister
	CandidateServerLister
	CandidatePlayerLister
	CandidateGameLister
	TrendingLister
}

// GameFetcher loads games by id. Unknown ids are absent from the result.
type GameFetcher interface {
	FetchGames(ctx context.Context, ids []string) (map[string]domain.Game, error)
}

// Single-record getters return domain.ErrNotFound for unknown ids.

type CommunityGetter interface {
	GetCommunity(ctx context.Context, id string) (domain.Community, error)
}

type ServerGetter interface {
	GetServer(ctx context.Context, id string) (domain.Server, error)
}

type PlayerGetter interface {
	GetPlayer(ctx context.Context, userID string) (domain.Player, error)
}

type UserCommunityLister interface {
	ListUserCommunities(ctx context.Context, userID string) ([]domain.Community, error)
}

// Candidate listers return at most q.Limit records matching the hard filters, plus the total number
// of matching records.

type CandidateCommunityLister interface {
	ListCandidateCommunities(ctx context.Context, q domain.CandidateQuery) ([]domain.Community, int, error)
}

type CandidateServerLister interface {
	ListCandidateServers(ctx context.Context, q domain.CandidateQuery) ([]domain.Server, int, error)
}

type CandidatePlayerLister interface {
	ListCandidatePlayers(ctx context.Context, q domain.CandidateQuery) ([]domain.Player, int, error)
}

type CandidateGameLister interface {
	ListCandidateGames(ctx context.Context, q domain.CandidateQuery) ([]domain.Game, int, error)
}

// TrendingLister returns the raw material for non-personalized trending lists.
// Activity counters on the returned records cover the period since the given time.
type TrendingLister interface {
	ListTrendingCommunities(ctx context.Context, since time.Time, limit int) ([]domain.Community, error)
	ListTrendingGames(ctx context.Context, since time.Time, limit int) ([]domain.Game, error)
	ListTrendingServers(ctx context.Context, limit int) ([]domain.Server, error)
}
