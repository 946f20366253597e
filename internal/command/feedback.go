package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// FeedbackConfig holds configuration for feedback-driven weight adjustment.
type FeedbackConfig struct {
	// Step is how far one piece of explicit feedback moves a category weight.
	Step float64

	// MinWeight is the floor a category weight can be nudged down to.
	MinWeight float64
}

type categoryNudge struct {
	category string
	delta    float64
}

// nudgePreferences applies nudges to the user's stored category weights and replaces the record.
// Nudges to unknown categories are ignored.
func nudgePreferences(
	ctx context.Context,
	store datasources.ProfileRepository,
	userID string,
	nudges []categoryNudge,
	cfg FeedbackConfig,
	now time.Time,
) (domain.DiscoveryPreferences, error) {
	prefs, err := loadPreferences(ctx, store, userID)
	if err != nil {
		return domain.DiscoveryPreferences{}, err
	}

	changed := false
	for _, n := range nudges {
		var ok bool
		prefs, ok = prefs.NudgeWeight(n.category, n.delta, cfg.MinWeight)
		changed = changed || ok
	}
	if !changed {
		return prefs, nil
	}

	prefs.UpdatedAt = now
	if err := store.ReplacePreferences(ctx, prefs); err != nil {
		return domain.DiscoveryPreferences{}, fmt.Errorf("storing preferences: %w", err)
	}
	return prefs, nil
}
