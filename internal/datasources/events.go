package datasources

import (
	"context"

	"github.com/jbeshir/game-discovery/internal/domain"
)

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.DiscoveryEvent) error
}

// NullEventPublisher discards events.
type NullEventPublisher struct{}

var _ EventPublisher = NullEventPublisher{}

func (NullEventPublisher) PublishEvent(_ context.Context, _ domain.DiscoveryEvent) error {
	return nil
}
