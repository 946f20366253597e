package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// maxSessionsPerProfile caps the history read for one profile build.
const maxSessionsPerProfile = 5000

func (r *Repository) ListUserSessions(
	ctx context.Context,
	userID string,
	since time.Time,
) ([]domain.GameSession, error) {
	sb := sqlbuilder.Select("user_id", "game_id", "duration_minutes", "started_at")
	sb.From("game_sessions")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.GreaterEqualThan("started_at", since),
	)
	sb.OrderBy("started_at DESC")
	sb.Limit(maxSessionsPerProfile)

	query, args := sb.Build()
	sessions, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (domain.GameSession, error) {
		var s domain.GameSession
		err := row.Scan(&s.UserID, &s.GameID, &s.DurationMinutes, &s.StartedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing sessions of user [%s]: %w", userID, err)
	}
	return sessions, nil
}

func (r *Repository) CountUserSessions(ctx context.Context, userID string, since time.Time) (int, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("game_sessions")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.GreaterEqualThan("started_at", since),
	)

	n, err := r.count(ctx, sb)
	if err != nil {
		return 0, fmt.Errorf("counting sessions of user [%s]: %w", userID, err)
	}
	return n, nil
}
