package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type RecordFeedbackRequest struct {
	UserID   string `validate:"required"`
	Feedback domain.DiscoveryFeedback
}

// RecordFeedback stores explicit feedback on a recorded action and moves the weight of the
// category the item was surfaced for one step in the feedback's direction.
type RecordFeedback struct {
	Actions     datasources.ActionRepository
	Events      datasources.EventPublisher
	Preferences datasources.ProfileRepository
	Config      FeedbackConfig

	now func() time.Time
}

func NewRecordFeedback(
	actions datasources.ActionRepository,
	events datasources.EventPublisher,
	preferences datasources.ProfileRepository,
	config FeedbackConfig,
) *RecordFeedback {
	return &RecordFeedback{
		Actions:     actions,
		Events:      events,
		Preferences: preferences,
		Config:      config,
		now:         time.Now,
	}
}

func (c *RecordFeedback) Execute(ctx context.Context, req RecordFeedbackRequest) (domain.DiscoveryFeedback, error) {
	if err := validateStruct(req); err != nil {
		return domain.DiscoveryFeedback{}, err
	}
	logger := domain.LoggerFromContext(ctx)

	action, err := c.Actions.GetAction(ctx, req.Feedback.ActionID)
	if err != nil {
		return domain.DiscoveryFeedback{}, fmt.Errorf("getting action [%s]: %w", req.Feedback.ActionID, err)
	}
	if action.UserID != req.UserID {
		return domain.DiscoveryFeedback{}, fmt.Errorf("action [%s] belongs to another user: %w",
			req.Feedback.ActionID, domain.ErrUnauthorized)
	}

	now := c.now()
	feedback := req.Feedback
	feedback.ID = uuid.NewString()
	feedback.UserID = req.UserID
	feedback.CreatedAt = now

	if err := c.Actions.AppendFeedback(ctx, feedback); err != nil {
		logger.WarnContext(ctx, "failed to append feedback",
			"action_id", action.ID,
			"error", err,
		)
	}
	if err := c.Events.PublishEvent(ctx, domain.NewFeedbackEvent(feedback, action)); err != nil {
		logger.WarnContext(ctx, "failed to publish feedback event",
			"feedback_id", feedback.ID,
			"error", err,
		)
	}

	if dir := feedback.Direction(); dir != 0 && action.Category != "" {
		nudge := categoryNudge{category: action.Category, delta: float64(dir) * c.Config.Step}
		if _, err := nudgePreferences(ctx, c.Preferences, req.UserID, []categoryNudge{nudge}, c.Config, now); err != nil {
			logger.WarnContext(ctx, "unable to adjust weights from feedback",
				"user_id", req.UserID,
				"category", action.Category,
				"error", err,
			)
		}
	}

	return feedback, nil
}
