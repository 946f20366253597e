package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/game-discovery/internal/domain"
)

type ActivityRepository interface {
	UserSessionLister
	UserSessionCounter
}

type UserSessionLister interface {
	ListUserSessions(ctx context.Context, userID string, since time.Time) ([]domain.GameSession, error)
}

type UserSessionCounter interface {
	CountUserSessions(ctx context.Context, userID string, since time.Time) (int, error)
}
