package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/game-discovery/internal/domain"
)

// ActionRepository is the append-only interaction log.
type ActionRepository interface {
	ActionAppender
	ActionGetter
	FeedbackAppender
	ActionCounter
	ActionTallier
}

type ActionAppender interface {
	// AppendActions inserts actions, ignoring ids that already exist.
	AppendActions(ctx context.Context, actions []domain.DiscoveryAction) error
}

type ActionGetter interface {
	GetAction(ctx context.Context, id string) (domain.DiscoveryAction, error)
}

type FeedbackAppender interface {
	AppendFeedback(ctx context.Context, feedback domain.DiscoveryFeedback) error
}

type ActionCounter interface {
	CountUserActions(ctx context.Context, userID string, actionType domain.ActionType, since time.Time) (int, error)
}

type ActionTallier interface {
	TallyUserActions(ctx context.Context, userID string, from, to time.Time) ([]domain.ActionTally, error)
}
