package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type SimilarList struct {
	SimilarCmd command.Command[command.SimilarToRequest, []domain.MatchScore]
}

func (c SimilarList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	logger := domain.LoggerFromContext(r.Context()).With("source_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	kind, ok := domain.ParseCandidateKind(vars["kind"])
	if !ok {
		writeBadRequest(ctx, w, fmt.Errorf("unknown kind [%s]", vars["kind"]), "invalid similar kind")
		return
	}

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeBadRequest(ctx, w, err, "unable to parse similar limit")
		return
	}

	items, err := c.SimilarCmd.Execute(ctx, command.SimilarToRequest{
		UserID: domain.UserIDFromContext(ctx),
		Kind:   kind,
		ID:     id,
		Limit:  limit,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to list similar items")
		return
	}

	writeJSON(ctx, w, newMatchListResponse(kind, items), 0)
}
