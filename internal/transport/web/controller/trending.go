package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type Trending struct {
	TrendingCmd command.Command[command.TrendingRequest, []domain.MatchScore]
	CacheMaxAge time.Duration
}

func (c Trending) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, ok := domain.ParseCandidateKind(mux.Vars(r)["kind"])
	if !ok {
		writeBadRequest(ctx, w, fmt.Errorf("unknown kind [%s]", mux.Vars(r)["kind"]), "invalid trending kind")
		return
	}

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeBadRequest(ctx, w, err, "unable to parse trending limit")
		return
	}

	items, err := c.TrendingCmd.Execute(ctx, command.TrendingRequest{Kind: kind, Limit: limit})
	if err != nil {
		writeError(ctx, w, err, "unable to list trending items")
		return
	}

	writeJSON(ctx, w, newMatchListResponse(kind, items), c.CacheMaxAge)
}
