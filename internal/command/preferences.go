package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

// loadPreferences returns the stored preferences for userID, or the defaults when none are stored.
func loadPreferences(
	ctx context.Context, getter datasources.PreferencesGetter, userID string,
) (domain.DiscoveryPreferences, error) {
	prefs, err := getter.GetPreferences(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultDiscoveryPreferences(userID), nil
	}
	if err != nil {
		return domain.DiscoveryPreferences{}, fmt.Errorf("getting preferences: %w", err)
	}
	return prefs, nil
}

type GetPreferences struct {
	Preferences datasources.PreferencesGetter
}

func NewGetPreferences(preferences datasources.PreferencesGetter) *GetPreferences {
	return &GetPreferences{Preferences: preferences}
}

func (c *GetPreferences) Execute(ctx context.Context, userID string) (domain.DiscoveryPreferences, error) {
	return loadPreferences(ctx, c.Preferences, userID)
}

type UpdatePreferencesRequest struct {
	UserID string `validate:"required"`
	Patch  domain.PreferencesPatch
}

// UpdatePreferences applies a partial edit and replaces the whole preferences record.
type UpdatePreferences struct {
	Preferences datasources.ProfileRepository

	now func() time.Time
}

func NewUpdatePreferences(preferences datasources.ProfileRepository) *UpdatePreferences {
	return &UpdatePreferences{
		Preferences: preferences,
		now:         time.Now,
	}
}

func (c *UpdatePreferences) Execute(ctx context.Context, req UpdatePreferencesRequest) (domain.DiscoveryPreferences, error) {
	if err := validateStruct(req); err != nil {
		return domain.DiscoveryPreferences{}, err
	}
	if unknown := req.Patch.UnknownCategories(); len(unknown) > 0 {
		return domain.DiscoveryPreferences{}, fmt.Errorf("%w: unknown categories [%s]",
			domain.ErrValidation, strings.Join(unknown, ", "))
	}

	prefs, err := loadPreferences(ctx, c.Preferences, req.UserID)
	if err != nil {
		return domain.DiscoveryPreferences{}, err
	}

	prefs = req.Patch.Apply(prefs)
	prefs.UserID = req.UserID
	prefs.UpdatedAt = c.now()

	if err := c.Preferences.ReplacePreferences(ctx, prefs); err != nil {
		return domain.DiscoveryPreferences{}, fmt.Errorf("storing preferences: %w", err)
	}
	return prefs, nil
}
