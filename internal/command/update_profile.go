package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type UpdateProfileRequest struct {
	UserID    string `validate:"required"`
	Overrides domain.ProfileOverrides
}

// UpdateProfile applies explicit user edits on top of the derived profile. The edits are stored
// with the profile so later rebuilds keep them.
type UpdateProfile struct {
	GetOrBuild *GetOrBuildProfile
	Profiles   datasources.InterestProfileReplacer

	now func() time.Time
}

func NewUpdateProfile(getOrBuild *GetOrBuildProfile, profiles datasources.InterestProfileReplacer) *UpdateProfile {
	return &UpdateProfile{
		GetOrBuild: getOrBuild,
		Profiles:   profiles,
		now:        time.Now,
	}
}

func (c *UpdateProfile) Execute(ctx context.Context, req UpdateProfileRequest) (domain.UserInterestProfile, error) {
	if err := validateStruct(req); err != nil {
		return domain.UserInterestProfile{}, err
	}
	if req.Overrides.IsZero() {
		return domain.UserInterestProfile{}, fmt.Errorf("%w: no profile fields to update", domain.ErrValidation)
	}

	baseline, err := c.GetOrBuild.Execute(ctx, GetOrBuildProfileRequest{UserID: req.UserID})
	if err != nil {
		return domain.UserInterestProfile{}, fmt.Errorf("loading profile: %w", err)
	}

	profile := baseline.ApplyOverrides(baseline.Overrides.Merge(req.Overrides))
	profile.LastUpdated = c.now()

	if err := c.Profiles.ReplaceInterestProfile(ctx, profile); err != nil {
		return domain.UserInterestProfile{}, fmt.Errorf("storing profile: %w", err)
	}
	return profile, nil
}
