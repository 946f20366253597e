package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// streamMaxLen bounds the stream; consumers are expected to keep up well within it.
const streamMaxLen = 100_000

// EventStream publishes discovery events to a Redis stream.
type EventStream struct {
	client *goredis.Client
	stream string
}

var _ datasources.EventPublisher = (*EventStream)(nil)

func Connect(ctx context.Context, addr, stream string) (*EventStream, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &EventStream{client: client, stream: stream}, nil
}

func (s *EventStream) PublishEvent(ctx context.Context, event domain.DiscoveryEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	err = s.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: s.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{
			"type":    event.Type,
			"user_id": event.UserID,
			"payload": string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("adding event to stream [%s]: %w", s.stream, err)
	}
	return nil
}

func (s *EventStream) Close() error {
	return s.client.Close()
}
