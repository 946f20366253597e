package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/game-discovery/internal/domain"
)

type ProfileRepository interface {
	InterestProfileGetter
	InterestProfileReplacer
	StaleProfileLister
	PreferencesGetter
	PreferencesReplacer
}

type InterestProfileGetter interface {
	// GetInterestProfile returns domain.ErrNotFound when no profile is stored.
	GetInterestProfile(ctx context.Context, userID string) (domain.UserInterestProfile, error)
}

type InterestProfileReplacer interface {
	ReplaceInterestProfile(ctx context.Context, profile domain.UserInterestProfile) error
}

type StaleProfileLister interface {
	ListStaleProfileUserIDs(ctx context.Context, updatedBefore time.Time, limit int) ([]string, error)
}

type PreferencesGetter interface {
	// GetPreferences returns domain.ErrNotFound when the user has none stored.
	GetPreferences(ctx context.Context, userID string) (domain.DiscoveryPreferences, error)
}

type PreferencesReplacer interface {
	ReplacePreferences(ctx context.Context, prefs domain.DiscoveryPreferences) error
}
