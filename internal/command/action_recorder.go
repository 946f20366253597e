package command

import (
	"context"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/jbeshir/game-discovery/internal/metrics"
)

// ActionRecorderConfig holds configuration for the background action writer.
type ActionRecorderConfig struct {
	// BufferSize is how many actions may wait to be written before new ones are dropped.
	BufferSize int

	// BatchSize is the most actions written in one append.
	BatchSize int

	// FlushInterval is the longest a queued action waits for its batch to fill.
	FlushInterval time.Duration

	// ShutdownTimeout bounds the final flush after the run context is cancelled.
	ShutdownTimeout time.Duration
}

// ActionRecorder writes discovery actions to the action log and publishes an event for each,
// off the request path. Writes are best-effort: if the service restarts, up to the buffer size
// of actions may be lost.
type ActionRecorder struct {
	Actions datasources.ActionAppender
	Events  datasources.EventPublisher
	Config  ActionRecorderConfig

	queue chan domain.DiscoveryAction
}

func NewActionRecorder(
	actions datasources.ActionAppender,
	events datasources.EventPublisher,
	config ActionRecorderConfig,
) *ActionRecorder {
	return &ActionRecorder{
		Actions: actions,
		Events:  events,
		Config:  config,
		queue:   make(chan domain.DiscoveryAction, config.BufferSize),
	}
}

// Enqueue queues actions without blocking and returns the ones that fit. Actions that arrive
// while the buffer is full are dropped.
func (r *ActionRecorder) Enqueue(ctx context.Context, actions ...domain.DiscoveryAction) []domain.DiscoveryAction {
	queued := make([]domain.DiscoveryAction, 0, len(actions))
	for _, a := range actions {
		select {
		case r.queue <- a:
			queued = append(queued, a)
		default:
		}
	}

	if dropped := len(actions) - len(queued); dropped > 0 {
		metrics.DroppedActions.Add(float64(dropped))
		domain.LoggerFromContext(ctx).WarnContext(ctx, "action buffer full, dropping actions",
			"dropped", dropped,
		)
	}
	return queued
}

// Run drains the queue until ctx is cancelled, then flushes whatever is still buffered.
func (r *ActionRecorder) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Config.FlushInterval)
	defer ticker.Stop()

	batch := make([]domain.DiscoveryAction, 0, r.Config.BatchSize)
	for {
		select {
		case a := <-r.queue:
			batch = append(batch, a)
			if len(batch) >= r.Config.BatchSize {
				r.flush(ctx, batch)
				batch = make([]domain.DiscoveryAction, 0, r.Config.BatchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.flush(ctx, batch)
				batch = make([]domain.DiscoveryAction, 0, r.Config.BatchSize)
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.Config.ShutdownTimeout)
			defer cancel()
			r.flush(shutdownCtx, r.drain(batch))
			return nil
		}
	}
}

func (r *ActionRecorder) drain(batch []domain.DiscoveryAction) []domain.DiscoveryAction {
	for {
		select {
		case a := <-r.queue:
			batch = append(batch, a)
		default:
			return batch
		}
	}
}

func (r *ActionRecorder) flush(ctx context.Context, batch []domain.DiscoveryAction) {
	if len(batch) == 0 {
		return
	}
	logger := domain.LoggerFromContext(ctx)

	if err := r.Actions.AppendActions(ctx, batch); err != nil {
		logger.WarnContext(ctx, "failed to append discovery actions",
			"count", len(batch),
			"error", err,
		)
		return
	}

	for _, a := range batch {
		if err := r.Events.PublishEvent(ctx, domain.NewActionEvent(a)); err != nil {
			logger.WarnContext(ctx, "failed to publish discovery action event",
				"action_id", a.ID,
				"error", err,
			)
		}
	}
}
