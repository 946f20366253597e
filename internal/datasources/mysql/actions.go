package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/game-discovery/internal/domain"
)

func (r *Repository) AppendActions(ctx context.Context, actions []domain.DiscoveryAction) error {
	if len(actions) == 0 {
		return nil
	}

	ib := sqlbuilder.InsertIgnoreInto("discovery_actions")
	ib.Cols("id", "user_id", "item_kind", "item_id", "action_type", "category", "created_at")
	for _, a := range actions {
		ib.Values(a.ID, a.UserID, string(a.ItemKind), a.ItemID, string(a.ActionType), a.Category, a.CreatedAt.UTC())
	}

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("appending %d discovery actions: %w", len(actions), err)
	}
	return nil
}

func (r *Repository) GetAction(ctx context.Context, id string) (domain.DiscoveryAction, error) {
	sb := sqlbuilder.Select("id", "user_id", "item_kind", "item_id", "action_type", "category", "created_at")
	sb.From("discovery_actions")
	sb.Where(sb.Equal("id", id))

	action, err := queryOne(ctx, r.db, sb, func(row rowScanner) (domain.DiscoveryAction, error) {
		var a domain.DiscoveryAction
		err := row.Scan(&a.ID, &a.UserID, &a.ItemKind, &a.ItemID, &a.ActionType, &a.Category, &a.CreatedAt)
		return a, err
	})
	if err != nil {
		return domain.DiscoveryAction{}, fmt.Errorf("getting discovery action [%s]: %w", id, err)
	}
	return action, nil
}

func (r *Repository) AppendFeedback(ctx context.Context, feedback domain.DiscoveryFeedback) error {
	var rating sql.NullInt16
	if feedback.Rating != nil {
		rating = sql.NullInt16{Int16: int16(*feedback.Rating), Valid: true} //nolint:gosec // validated to 1..5
	}

	ib := sqlbuilder.InsertIgnoreInto("discovery_feedback")
	ib.Cols("id", "action_id", "user_id", "`signal`", "rating", "created_at")
	ib.Values(feedback.ID, feedback.ActionID, feedback.UserID, string(feedback.Signal), rating, feedback.CreatedAt.UTC())

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("appending feedback [%s]: %w", feedback.ID, err)
	}
	return nil
}

func (r *Repository) CountUserActions(
	ctx context.Context,
	userID string,
	actionType domain.ActionType,
	since time.Time,
) (int, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("discovery_actions")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("action_type", string(actionType)),
		sb.GreaterEqualThan("created_at", since.UTC()),
	)

	n, err := r.count(ctx, sb)
	if err != nil {
		return 0, fmt.Errorf("counting %s actions of [%s]: %w", actionType, userID, err)
	}
	return n, nil
}

func (r *Repository) TallyUserActions(
	ctx context.Context,
	userID string,
	from, to time.Time,
) ([]domain.ActionTally, error) {
	sb := sqlbuilder.Select("item_kind", "category", "action_type", "COUNT(*)")
	sb.From("discovery_actions")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.GreaterEqualThan("created_at", from.UTC()),
		sb.LessThan("created_at", to.UTC()),
	)
	sb.GroupBy("item_kind", "category", "action_type")

	query, args := sb.Build()
	tallies, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (domain.ActionTally, error) {
		var t domain.ActionTally
		err := row.Scan(&t.ItemKind, &t.Category, &t.ActionType, &t.Count)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("tallying actions of [%s]: %w", userID, err)
	}
	return tallies, nil
}
