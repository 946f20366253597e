package command

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type RecordActionsRequest struct {
	UserID  string                   `validate:"required"`
	Actions []domain.DiscoveryAction `validate:"required,min=1,max=100,dive"`
}

type RecordActionsResult struct {
	// ActionIDs holds the ids of the actions that were queued, in request order.
	ActionIDs []string `json:"action_ids"`
	Dropped   int      `json:"dropped"`
}

// RecordActions queues user interactions for the action log. Joins and dismissals also nudge
// the weight of the category the item was surfaced for.
type RecordActions struct {
	Recorder    *ActionRecorder
	Preferences datasources.ProfileRepository
	Config      FeedbackConfig

	now func() time.Time
}

func NewRecordActions(
	recorder *ActionRecorder,
	preferences datasources.ProfileRepository,
	config FeedbackConfig,
) *RecordActions {
	return &RecordActions{
		Recorder:    recorder,
		Preferences: preferences,
		Config:      config,
		now:         time.Now,
	}
}

func (c *RecordActions) Execute(ctx context.Context, req RecordActionsRequest) (RecordActionsResult, error) {
	if err := validateStruct(req); err != nil {
		return RecordActionsResult{}, err
	}
	now := c.now()

	actions := make([]domain.DiscoveryAction, len(req.Actions))
	for i, a := range req.Actions {
		a.ID = uuid.NewString()
		a.UserID = req.UserID
		a.CreatedAt = now
		actions[i] = a
	}

	queued := c.Recorder.Enqueue(ctx, actions...)

	ids := make([]string, 0, len(queued))
	var nudges []categoryNudge
	for _, a := range queued {
		ids = append(ids, a.ID)
		if factor := a.ActionType.NudgeFactor(); factor != 0 && a.Category != "" {
			nudges = append(nudges, categoryNudge{category: a.Category, delta: factor * c.Config.Step})
		}
	}

	if len(nudges) > 0 {
		if _, err := nudgePreferences(ctx, c.Preferences, req.UserID, nudges, c.Config, now); err != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to adjust weights from actions",
				"user_id", req.UserID,
				"error", err,
			)
		}
	}

	return RecordActionsResult{ActionIDs: ids, Dropped: len(actions) - len(queued)}, nil
}
