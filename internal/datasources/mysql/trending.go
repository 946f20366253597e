package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/game-discovery/internal/domain"
)

func (r *Repository) ListTrendingCommunities(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]domain.Community, error) {
	sb := sqlbuilder.Select(append(communityColumns, "COUNT(m.user_id) AS recent_joins")...)
	sb.From("communities c")
	sb.Join("community_members m", "m.community_id = c.id", sb.GreaterEqualThan("m.joined_at", since))
	sb.Where("c.is_private = FALSE")
	sb.GroupBy("c.id")
	sb.OrderBy("recent_joins DESC", "c.id")
	sb.Limit(limit)

	query, args := sb.Build()
	communities, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (domain.Community, error) {
		var joins int
		c, err := scanCommunity(row, &joins)
		c.RecentJoins = joins
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing trending communities: %w", err)
	}
	return communities, nil
}

func (r *Repository) ListTrendingGames(ctx context.Context, since time.Time, limit int) ([]domain.Game, error) {
	sb := sqlbuilder.Select(append(gameColumns,
		"COUNT(gs.id) AS recent_sessions",
		"MAX(gs.started_at) AS last_played_at",
	)...)
	sb.From("games g")
	sb.Join("game_sessions gs", "gs.game_id = g.id", sb.GreaterEqualThan("gs.started_at", since))
	sb.GroupBy("g.id")
	sb.OrderBy("recent_sessions DESC", "g.id")
	sb.Limit(limit)

	query, args := sb.Build()
	games, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (domain.Game, error) {
		var sessions int
		var lastPlayed time.Time
		g, err := scanGame(row, &sessions, &lastPlayed)
		g.RecentSessions = sessions
		g.LastPlayedAt = lastPlayed
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing trending games: %w", err)
	}
	return games, nil
}

func (r *Repository) ListTrendingServers(ctx context.Context, limit int) ([]domain.Server, error) {
	sb := sqlbuilder.Select(serverColumns...)
	sb.From("servers s")
	sb.Where("s.is_online = TRUE", sb.GreaterThan("s.max_players", 0))
	sb.OrderBy("s.player_count DESC", "s.id")
	sb.Limit(limit)

	query, args := sb.Build()
	servers, err := queryRows(ctx, r.db, query, args, scanServer)
	if err != nil {
		return nil, fmt.Errorf("listing trending servers: %w", err)
	}
	return servers, nil
}
