package controller

import (
	"net/http"

	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type ProfileGet struct {
	GetOrBuildCmd command.Command[command.GetOrBuildProfileRequest, domain.UserInterestProfile]
}

func (c ProfileGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := c.GetOrBuildCmd.Execute(ctx, command.GetOrBuildProfileRequest{
		UserID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeError(ctx, w, err, "unable to get profile")
		return
	}

	writeJSON(ctx, w, profile, 0)
}

type ProfileUpdate struct {
	UpdateCmd command.Command[command.UpdateProfileRequest, domain.UserInterestProfile]
}

func (c ProfileUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var overrides domain.ProfileOverrides
	if err := decodeBody(w, r, &overrides); err != nil {
		writeBadRequest(ctx, w, err, "unable to parse profile overrides")
		return
	}

	profile, err := c.UpdateCmd.Execute(ctx, command.UpdateProfileRequest{
		UserID:    domain.UserIDFromContext(ctx),
		Overrides: overrides,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to update profile")
		return
	}

	writeJSON(ctx, w, profile, 0)
}
