package mysql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/game-discovery/internal/domain"
)

func (r *Repository) GetInterestProfile(ctx context.Context, userID string) (domain.UserInterestProfile, error) {
	sb := sqlbuilder.Select("profile")
	sb.From("interest_profiles")
	sb.Where(sb.Equal("user_id", userID))

	profile, err := queryOne(ctx, r.db, sb, func(row rowScanner) (domain.UserInterestProfile, error) {
		var raw []byte
		if err := row.Scan(&raw); err != nil {
			return domain.UserInterestProfile{}, err
		}
		var p domain.UserInterestProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return domain.UserInterestProfile{}, fmt.Errorf("decoding profile: %w", err)
		}
		return p, nil
	})
	if err != nil {
		return domain.UserInterestProfile{}, fmt.Errorf("getting interest profile of [%s]: %w", userID, err)
	}
	return profile, nil
}

func (r *Repository) ReplaceInterestProfile(ctx context.Context, profile domain.UserInterestProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	ib := sqlbuilder.ReplaceInto("interest_profiles")
	ib.Cols("user_id", "profile", "completeness", "last_updated")
	ib.Values(profile.UserID, string(raw), profile.Completeness, profile.LastUpdated.UTC())

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replacing interest profile of [%s]: %w", profile.UserID, err)
	}
	return nil
}

func (r *Repository) ListStaleProfileUserIDs(
	ctx context.Context,
	updatedBefore time.Time,
	limit int,
) ([]string, error) {
	sb := sqlbuilder.Select("user_id")
	sb.From("interest_profiles")
	sb.Where(sb.LessThan("last_updated", updatedBefore.UTC()))
	sb.OrderBy("last_updated", "user_id")
	sb.Limit(limit)

	query, args := sb.Build()
	ids, err := queryRows(ctx, r.db, query, args, func(row rowScanner) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, fmt.Errorf("listing stale profiles: %w", err)
	}
	return ids, nil
}

func (r *Repository) GetPreferences(ctx context.Context, userID string) (domain.DiscoveryPreferences, error) {
	sb := sqlbuilder.Select("preferences")
	sb.From("discovery_preferences")
	sb.Where(sb.Equal("user_id", userID))

	prefs, err := queryOne(ctx, r.db, sb, func(row rowScanner) (domain.DiscoveryPreferences, error) {
		var raw []byte
		if err := row.Scan(&raw); err != nil {
			return domain.DiscoveryPreferences{}, err
		}
		var p domain.DiscoveryPreferences
		if err := json.Unmarshal(raw, &p); err != nil {
			return domain.DiscoveryPreferences{}, fmt.Errorf("decoding preferences: %w", err)
		}
		return p, nil
	})
	if err != nil {
		return domain.DiscoveryPreferences{}, fmt.Errorf("getting preferences of [%s]: %w", userID, err)
	}
	return prefs, nil
}

func (r *Repository) ReplacePreferences(ctx context.Context, prefs domain.DiscoveryPreferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	ib := sqlbuilder.ReplaceInto("discovery_preferences")
	ib.Cols("user_id", "preferences", "updated_at")
	ib.Values(prefs.UserID, string(raw), prefs.UpdatedAt.UTC())

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replacing preferences of [%s]: %w", prefs.UserID, err)
	}
	return nil
}
