package controller

import (
	"net/http"

	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type PreferencesGet struct {
	GetCmd command.Command[string, domain.DiscoveryPreferences]
}

func (c PreferencesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prefs, err := c.GetCmd.Execute(ctx, domain.UserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, err, "unable to get preferences")
		return
	}

	writeJSON(ctx, w, prefs, 0)
}

type PreferencesUpdate struct {
	UpdateCmd command.Command[command.UpdatePreferencesRequest, domain.DiscoveryPreferences]
}

func (c PreferencesUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch domain.PreferencesPatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeBadRequest(ctx, w, err, "unable to parse preferences")
		return
	}

	prefs, err := c.UpdateCmd.Execute(ctx, command.UpdatePreferencesRequest{
		UserID: domain.UserIDFromContext(ctx),
		Patch:  patch,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to update preferences")
		return
	}

	writeJSON(ctx, w, prefs, 0)
}
