package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// MaxAnalyticsWindow is the longest date range an engagement report may cover.
const MaxAnalyticsWindow = 366 * 24 * time.Hour

type EngagementAnalyticsRequest struct {
	UserID string    `validate:"required"`
	From   time.Time `validate:"required"`
	To     time.Time `validate:"required,gtfield=From"`
}

// EngagementAnalytics reports how surfaced items were received over a date window.
type EngagementAnalytics struct {
	Actions datasources.ActionTallier
}

func NewEngagementAnalytics(actions datasources.ActionTallier) *EngagementAnalytics {
	return &EngagementAnalytics{Actions: actions}
}

func (c *EngagementAnalytics) Execute(
	ctx context.Context, req EngagementAnalyticsRequest,
) (domain.EngagementReport, error) {
	if err := validateStruct(req); err != nil {
		return domain.EngagementReport{}, err
	}
	if req.To.Sub(req.From) > MaxAnalyticsWindow {
		return domain.EngagementReport{}, fmt.Errorf("%w: window longer than 366 days", domain.ErrValidation)
	}

	tallies, err := c.Actions.TallyUserActions(ctx, req.UserID, req.From, req.To)
	if err != nil {
		return domain.EngagementReport{}, fmt.Errorf("tallying actions: %w", err)
	}
	return domain.BuildEngagementReport(req.UserID, req.From, req.To, tallies), nil
}
