package mysql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/game-discovery/internal/domain"
)

func (r *Repository) ListCandidateCommunities(
	ctx context.Context,
	q domain.CandidateQuery,
) ([]domain.Community, int, error) {
	build := func(sb *sqlbuilder.SelectBuilder) {
		sb.From("communities c")
		sb.Where(buildCommunityConditions(sb, q)...)
	}

	countSB := sqlbuilder.Select("COUNT(*)")
	build(countSB)
	total, err := r.count(ctx, countSB)
	if err != nil {
		return nil, 0, fmt.Errorf("counting candidate communities: %w", err)
	}

	sb := sqlbuilder.Select(communityColumns...)
	build(sb)
	sb.OrderBy("c.last_active_at DESC", "c.id")
	sb.Limit(q.Limit)

	query, args := sb.Build()
	communities, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (domain.Community, error) {
		return scanCommunity(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing candidate communities: %w", err)
	}
	return communities, total, nil
}

func buildCommunityConditions(sb *sqlbuilder.SelectBuilder, q domain.CandidateQuery) []string {
	conds := []string{
		"c.is_private = FALSE",
		"NOT EXISTS (SELECT 1 FROM community_members own WHERE own.community_id = c.id AND own.user_id = " +
			sb.Args.Add(q.RequesterID) + ")",
	}

	f := q.Filters
	if f.Query != "" {
		conds = append(conds, "MATCH (c.name, c.description) AGAINST ("+sb.Args.Add(f.Query)+")")
	}
	if len(f.Tags) > 0 {
		conds = append(conds, jsonOverlaps(sb, "c.tags", f.Tags))
	}
	if len(f.GameIDs) > 0 {
		conds = append(conds, jsonOverlaps(sb, "c.allowed_games", f.GameIDs))
	}
	if f.MinSize != nil {
		conds = append(conds, sb.GreaterEqualThan("c.member_count", *f.MinSize))
	}
	if f.MaxSize != nil {
		conds = append(conds, sb.LessEqualThan("c.member_count", *f.MaxSize))
	}
	if len(q.ExcludeIDs) > 0 {
		conds = append(conds, sb.NotIn("c.id", toArgs(q.ExcludeIDs)...))
	}
	if len(q.OnlyIDs) > 0 {
		conds = append(conds, sb.In("c.id", toArgs(q.OnlyIDs)...))
	}
	return conds
}

func (r *Repository) ListCandidateServers(
	ctx context.Context,
	q domain.CandidateQuery,
) ([]domain.Server, int, error) {
	build := func(sb *sqlbuilder.SelectBuilder) {
		sb.From("servers s")
		if conds := buildServerConditions(sb, q); len(conds) > 0 {
			sb.Where(conds...)
		}
	}

	countSB := sqlbuilder.Select("COUNT(*)")
	build(countSB)
	total, err := r.count(ctx, countSB)
	if err != nil {
		return nil, 0, fmt.Errorf("counting candidate servers: %w", err)
	}

	sb := sqlbuilder.Select(serverColumns...)
	build(sb)
	sb.OrderBy("s.is_online DESC", "s.player_count DESC", "s.id")
	sb.Limit(q.Limit)

	query, args := sb.Build()
	servers, err := queryRows(ctx, r.db, query, args, scanServer)
	if err != nil {
		return nil, 0, fmt.Errorf("listing candidate servers: %w", err)
	}
	return servers, total, nil
}

func buildServerConditions(sb *sqlbuilder.SelectBuilder, q domain.CandidateQuery) []string {
	var conds []string

	f := q.Filters
	if f.Query != "" {
		conds = append(conds, sb.Like("s.name", likePattern(f.Query)))
	}
	if len(f.Tags) > 0 {
		conds = append(conds, jsonOverlaps(sb, "s.tags", f.Tags))
	}
	if len(f.GameIDs) > 0 {
		conds = append(conds, sb.In("s.game_id", toArgs(f.GameIDs)...))
	}
	if f.MinSize != nil {
		conds = append(conds, sb.GreaterEqualThan("s.player_count", *f.MinSize))
	}
	if f.MaxSize != nil {
		conds = append(conds, sb.LessEqualThan("s.player_count", *f.MaxSize))
	}
	if f.OnlineOnly {
		conds = append(conds, "s.is_online = TRUE")
	}
	if len(q.ExcludeIDs) > 0 {
		conds = append(conds, sb.NotIn("s.id", toArgs(q.ExcludeIDs)...))
	}
	if len(q.ExcludeGameIDs) > 0 {
		conds = append(conds, sb.NotIn("s.game_id", toArgs(q.ExcludeGameIDs)...))
	}
	if len(q.OnlyIDs) > 0 {
		conds = append(conds, sb.In("s.id", toArgs(q.OnlyIDs)...))
	}
	return conds
}

func (r *Repository) ListCandidatePlayers(
	ctx context.Context,
	q domain.CandidateQuery,
) ([]domain.Player, int, error) {
	since := time.Now().Add(-recentActivityWindow)
	build := func(sb *sqlbuilder.SelectBuilder) {
		sb.From("players p")
		sb.Where(buildPlayerConditions(sb, q, since)...)
	}

	countSB := sqlbuilder.Select("COUNT(*)")
	build(countSB)
	total, err := r.count(ctx, countSB)
	if err != nil {
		return nil, 0, fmt.Errorf("counting candidate players: %w", err)
	}

	sb := sqlbuilder.Select(playerColumns...)
	build(sb)
	sb.OrderBy("p.is_online DESC", "p.last_seen_at DESC", "p.user_id")
	sb.Limit(q.Limit)

	query, args := sb.Build()
	players, err := queryRows(ctx, r.db, query, args, scanPlayer)
	if err != nil {
		return nil, 0, fmt.Errorf("listing candidate players: %w", err)
	}
	if err := r.attachRecentGames(ctx, players); err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func buildPlayerConditions(sb *sqlbuilder.SelectBuilder, q domain.CandidateQuery, since time.Time) []string {
	conds := []string{sb.NotEqual("p.user_id", q.RequesterID)}

	f := q.Filters
	if f.Query != "" {
		conds = append(conds, sb.Like("p.display_name", likePattern(f.Query)))
	}
	if len(f.GameIDs) > 0 {
		conds = append(conds, "EXISTS (SELECT 1 FROM game_sessions gs WHERE gs.user_id = p.user_id AND "+
			sb.In("gs.game_id", toArgs(f.GameIDs)...)+" AND "+
			sb.GreaterEqualThan("gs.started_at", since)+")")
	}
	if f.OnlineOnly {
		conds = append(conds, "p.is_online = TRUE")
	}
	if len(q.ExcludeIDs) > 0 {
		conds = append(conds, sb.NotIn("p.user_id", toArgs(q.ExcludeIDs)...))
	}
	if len(q.OnlyIDs) > 0 {
		conds = append(conds, sb.In("p.user_id", toArgs(q.OnlyIDs)...))
	}
	return conds
}

func (r *Repository) ListCandidateGames(
	ctx context.Context,
	q domain.CandidateQuery,
) ([]domain.Game, int, error) {
	build := func(sb *sqlbuilder.SelectBuilder) {
		sb.From("games g")
		if conds := buildGameConditions(sb, q); len(conds) > 0 {
			sb.Where(conds...)
		}
	}

	countSB := sqlbuilder.Select("COUNT(*)")
	build(countSB)
	total, err := r.count(ctx, countSB)
	if err != nil {
		return nil, 0, fmt.Errorf("counting candidate games: %w", err)
	}

	sb := sqlbuilder.Select(gameColumns...)
	build(sb)
	sb.OrderBy("g.active_players DESC", "g.id")
	sb.Limit(q.Limit)

	query, args := sb.Build()
	games, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (domain.Game, error) {
		return scanGame(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing candidate games: %w", err)
	}
	return games, total, nil
}

func buildGameConditions(sb *sqlbuilder.SelectBuilder, q domain.CandidateQuery) []string {
	var conds []string

	f := q.Filters
	if f.Query != "" {
		conds = append(conds, "MATCH (g.name) AGAINST ("+sb.Args.Add(f.Query)+")")
	}
	if len(f.Tags) > 0 {
		conds = append(conds, sb.Or(jsonOverlaps(sb, "g.tags", f.Tags), jsonOverlaps(sb, "g.genres", f.Tags)))
	}
	if len(f.GameIDs) > 0 {
		conds = append(conds, sb.In("g.id", toArgs(f.GameIDs)...))
	}
	if f.MinSize != nil {
		conds = append(conds, sb.GreaterEqualThan("g.active_players", *f.MinSize))
	}
	if f.MaxSize != nil {
		conds = append(conds, sb.LessEqualThan("g.active_players", *f.MaxSize))
	}
	if len(q.ExcludeIDs) > 0 {
		conds = append(conds, sb.NotIn("g.id", toArgs(q.ExcludeIDs)...))
	}
	if len(q.ExcludeGameIDs) > 0 {
		conds = append(conds, sb.NotIn("g.id", toArgs(q.ExcludeGameIDs)...))
	}
	if len(q.OnlyIDs) > 0 {
		conds = append(conds, sb.In("g.id", toArgs(q.OnlyIDs)...))
	}
	return conds
}

func jsonOverlaps(sb *sqlbuilder.SelectBuilder, column string, values []string) string {
	return "JSON_OVERLAPS(" + column + ", CAST(" + sb.Args.Add(encodeStrings(values)) + " AS JSON))"
}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return "%" + r.Replace(s) + "%"
}
