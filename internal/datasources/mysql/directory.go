package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// recentActivityWindow bounds "recent" activity attached to directory records.
const recentActivityWindow = 30 * 24 * time.Hour

var (
	gameColumns = []string{"g.id", "g.name", "g.genres", "g.tags", "g.active_players"}

	communityColumns = []string{
		"c.id", "c.name", "c.description", "c.owner_id", "c.tags", "c.allowed_games",
		"c.member_count", "c.is_private", "c.created_at", "c.last_active_at",
	}

	serverColumns = []string{
		"s.id", "s.name", "s.game_id", "s.community_id", "s.player_count",
		"s.max_players", "s.is_online", "s.region", "s.tags",
	}

	playerColumns = []string{"p.user_id", "p.display_name", "p.is_online", "p.last_seen_at"}
)

func scanGame(row rowScanner, extra ...any) (domain.Game, error) {
	var g domain.Game
	var genres, tags []byte
	dest := append([]any{&g.ID, &g.Name, &genres, &tags, &g.ActivePlayers}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Game{}, err
	}

	var err error
	if g.Genres, err = decodeStrings(genres); err != nil {
		return domain.Game{}, err
	}
	if g.Tags, err = decodeStrings(tags); err != nil {
		return domain.Game{}, err
	}
	return g, nil
}

func scanCommunity(row rowScanner, extra ...any) (domain.Community, error) {
	var c domain.Community
	var tags, allowed []byte
	dest := append([]any{
		&c.ID, &c.Name, &c.Description, &c.OwnerID, &tags, &allowed,
		&c.MemberCount, &c.IsPrivate, &c.CreatedAt, &c.LastActiveAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Community{}, err
	}

	var err error
	if c.Tags, err = decodeStrings(tags); err != nil {
		return domain.Community{}, err
	}
	if c.AllowedGames, err = decodeStrings(allowed); err != nil {
		return domain.Community{}, err
	}
	return c, nil
}

func scanServer(row rowScanner) (domain.Server, error) {
	var s domain.Server
	var communityID sql.NullString
	var tags []byte
	if err := row.Scan(
		&s.ID, &s.Name, &s.GameID, &communityID, &s.PlayerCount,
		&s.MaxPlayers, &s.IsOnline, &s.Region, &tags,
	); err != nil {
		return domain.Server{}, err
	}
	s.CommunityID = communityID.String

	var err error
	if s.Tags, err = decodeStrings(tags); err != nil {
		return domain.Server{}, err
	}
	return s, nil
}

func scanPlayer(row rowScanner) (domain.Player, error) {
	var p domain.Player
	if err := row.Scan(&p.UserID, &p.DisplayName, &p.IsOnline, &p.LastSeenAt); err != nil {
		return domain.Player{}, err
	}
	p.RecentGames = []string{}
	return p, nil
}

func (r *Repository) FetchGames(ctx context.Context, ids []string) (map[string]domain.Game, error) {
	out := make(map[string]domain.Game, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	sb := sqlbuilder.Select(gameColumns...)
	sb.From("games g")
	sb.Where(sb.In("g.id", toArgs(ids)...))

	query, args := sb.Build()
	games, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (domain.Game, error) {
		return scanGame(row)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching games by ID: %w", err)
	}

	for _, g := range games {
		out[g.ID] = g
	}
	return out, nil
}

func (r *Repository) GetCommunity(ctx context.Context, id string) (domain.Community, error) {
	sb := sqlbuilder.Select(communityColumns...)
	sb.From("communities c")
	sb.Where(sb.Equal("c.id", id))

	c, err := queryOne(ctx, r.db, sb, func(row rowScanner) (domain.Community, error) {
		return scanCommunity(row)
	})
	if err != nil {
		return domain.Community{}, fmt.Errorf("getting community [%s]: %w", id, err)
	}
	return c, nil
}

func (r *Repository) GetServer(ctx context.Context, id string) (domain.Server, error) {
	sb := sqlbuilder.Select(serverColumns...)
	sb.From("servers s")
	sb.Where(sb.Equal("s.id", id))

	s, err := queryOne(ctx, r.db, sb, scanServer)
	if err != nil {
		return domain.Server{}, fmt.Errorf("getting server [%s]: %w", id, err)
	}
	return s, nil
}

func (r *Repository) GetPlayer(ctx context.Context, userID string) (domain.Player, error) {
	sb := sqlbuilder.Select(playerColumns...)
	sb.From("players p")
	sb.Where(sb.Equal("p.user_id", userID))

	p, err := queryOne(ctx, r.db, sb, scanPlayer)
	if err != nil {
		return domain.Player{}, fmt.Errorf("getting player [%s]: %w", userID, err)
	}

	players := []domain.Player{p}
	if err := r.attachRecentGames(ctx, players); err != nil {
		return domain.Player{}, err
	}
	return players[0], nil
}

func (r *Repository) ListUserCommunities(ctx context.Context, userID string) ([]domain.Community, error) {
	sb := sqlbuilder.Select(communityColumns...)
	sb.From("communities c")
	sb.Join("community_members m", "m.community_id = c.id")
	sb.Where(sb.Equal("m.user_id", userID))

	query, args := sb.Build()
	communities, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (domain.Community, error) {
		return scanCommunity(row)
	})
	if err != nil {
		return nil, fmt.Errorf("listing communities of user [%s]: %w", userID, err)
	}
	return communities, nil
}

// attachRecentGames fills RecentGames for each player from the last month of sessions.
func (r *Repository) attachRecentGames(ctx context.Context, players []domain.Player) error {
	if len(players) == 0 {
		return nil
	}
	ids := make([]string, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.UserID)
	}

	sb := sqlbuilder.Select("user_id", "game_id")
	sb.From("game_sessions")
	sb.Where(
		sb.In("user_id", toArgs(ids)...),
		sb.GreaterEqualThan("started_at", time.Now().Add(-recentActivityWindow)),
	)
	sb.GroupBy("user_id", "game_id")
	sb.OrderBy("user_id", "game_id")

	type pair struct{ userID, gameID string }
	query, args := sb.Build()
	pairs, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (pair, error) {
		var p pair
		err := row.Scan(&p.userID, &p.gameID)
		return p, err
	})
	if err != nil {
		return fmt.Errorf("listing recent games of players: %w", err)
	}

	byUser := make(map[string][]string, len(players))
	for _, p := range pairs {
		byUser[p.userID] = append(byUser[p.userID], p.gameID)
	}
	for i := range players {
		if games, ok := byUser[players[i].UserID]; ok {
			players[i].RecentGames = games
		}
	}
	return nil
}
