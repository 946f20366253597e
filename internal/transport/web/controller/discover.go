package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
)

type Discover struct {
	DiscoverCmd command.Command[domain.DiscoveryRequest, domain.DiscoveryResult]
}

type DiscoverResponse struct {
	Data     []domain.MatchScore `json:"data"`
	Metadata DiscoverMetadata    `json:"metadata"`
}

type DiscoverMetadata struct {
	domain.DiscoveryMetadata
	TotalMatched int                     `json:"total_matched"`
	Page         int                     `json:"page"`
	PageSize     int                     `json:"page_size"`
	Filters      domain.DiscoveryFilters `json:"filters"`
}

func (c Discover) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.ParseCandidateKind(mux.Vars(r)["kind"])
	logger := domain.LoggerFromContext(r.Context()).With("kind", kind)
	ctx := domain.ContextWithLogger(r.Context(), logger)
	if !ok {
		writeBadRequest(ctx, w, fmt.Errorf("unknown kind [%s]", mux.Vars(r)["kind"]), "invalid discovery kind")
		return
	}

	req, err := discoveryRequestFromQuery(r.URL.Query())
	if err != nil {
		writeBadRequest(ctx, w, err, "unable to parse discovery query")
		return
	}
	req.UserID = domain.UserIDFromContext(ctx)
	req.Kind = kind

	result, err := c.DiscoverCmd.Execute(ctx, req)
	if err != nil {
		writeError(ctx, w, err, "unable to run discovery")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(ctx, w, DiscoverResponse{
		Data: result.Items,
		Metadata: DiscoverMetadata{
			DiscoveryMetadata: result.Metadata,
			TotalMatched:      result.TotalMatched,
			Page:              result.Page,
			PageSize:          result.PageSize,
			Filters:           result.Filters,
		},
	}, 0)
}

func discoveryRequestFromQuery(q url.Values) (domain.DiscoveryRequest, error) {
	var req domain.DiscoveryRequest

	page, pageSize, err := parsePagination(q)
	if err != nil {
		return domain.DiscoveryRequest{}, err
	}
	req.Page = page
	req.PageSize = pageSize

	req.Filters.Query = q.Get("q")
	req.Filters.Tags = splitList(q, "tags")
	req.Filters.GameIDs = splitList(q, "game_ids")

	if req.Filters.MinSize, err = parseOptionalInt(q, "min_size"); err != nil {
		return domain.DiscoveryRequest{}, err
	}
	if req.Filters.MaxSize, err = parseOptionalInt(q, "max_size"); err != nil {
		return domain.DiscoveryRequest{}, err
	}

	if q.Has("online_only") {
		switch q.Get("online_only") {
		case boolTrue:
			req.Filters.OnlineOnly = true
		case boolFalse:
		default:
			return domain.DiscoveryRequest{}, fmt.Errorf("invalid online_only value [%s]", q.Get("online_only"))
		}
	}

	if q.Has("serendipity") {
		s, err := strconv.ParseFloat(q.Get("serendipity"), 64)
		if err != nil {
			return domain.DiscoveryRequest{}, fmt.Errorf("unable to parse serendipity from query: %w", err)
		}
		req.Serendipity = &s
	}

	return req, nil
}
