package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		kind       string
		query      string
		cmdErr     error
		wantStatus int
		wantCalled bool
		checkReq   func(t *testing.T, req domain.DiscoveryRequest)
	}{
		{
			name:       "defaults",
			kind:       "communities",
			wantStatus: http.StatusOK,
			wantCalled: true,
			checkReq: func(t *testing.T, req domain.DiscoveryRequest) {
				assert.Equal(t, "user456", req.UserID)
				assert.Equal(t, domain.CandidateKindCommunity, req.Kind)
				assert.Equal(t, 1, req.Page)
				assert.Equal(t, 20, req.PageSize)
				assert.Nil(t, req.Serendipity)
			},
		},
		{
			name:       "all_filters",
			kind:       "servers",
			query:      "q=viking&tags=pvp,%20coop,&game_ids=valheim&min_size=2&max_size=10&online_only=true&page=2&page_size=5&serendipity=0.5",
			wantStatus: http.StatusOK,
			wantCalled: true,
			checkReq: func(t *testing.T, req domain.DiscoveryRequest) {
				assert.Equal(t, domain.CandidateKindServer, req.Kind)
				assert.Equal(t, "viking", req.Filters.Query)
				assert.Equal(t, []string{"pvp", "coop"}, req.Filters.Tags)
				assert.Equal(t, []string{"valheim"}, req.Filters.GameIDs)
				require.NotNil(t, req.Filters.MinSize)
				assert.Equal(t, 2, *req.Filters.MinSize)
				require.NotNil(t, req.Filters.MaxSize)
				assert.Equal(t, 10, *req.Filters.MaxSize)
				assert.True(t, req.Filters.OnlineOnly)
				assert.Equal(t, 2, req.Page)
				assert.Equal(t, 5, req.PageSize)
				require.NotNil(t, req.Serendipity)
				assert.InDelta(t, 0.5, *req.Serendipity, 1e-9)
			},
		},
		{
			name:       "unknown_kind",
			kind:       "guilds",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad_page_size",
			kind:       "games",
			query:      "page_size=500",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad_online_only",
			kind:       "games",
			query:      "online_only=yes",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad_serendipity",
			kind:       "games",
			query:      "serendipity=lots",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "command_validation_error",
			kind:       "games",
			cmdErr:     fmt.Errorf("%w: min_size exceeds max_size", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
		},
		{
			name:       "dependency_unavailable",
			kind:       "players",
			cmdErr:     fmt.Errorf("listing candidate players: %w", domain.ErrTransientDependency),
			wantStatus: http.StatusServiceUnavailable,
			wantCalled: true,
		},
		{
			name:       "unknown_user",
			kind:       "players",
			cmdErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCalled: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			controller := Discover{
				DiscoverCmd: stubCommand[domain.DiscoveryRequest, domain.DiscoveryResult](
					func(_ context.Context, req domain.DiscoveryRequest) (domain.DiscoveryResult, error) {
						called = true
						if tc.checkReq != nil {
							tc.checkReq(t, req)
						}
						if tc.cmdErr != nil {
							return domain.DiscoveryResult{}, tc.cmdErr
						}
						return domain.DiscoveryResult{
							Items:        []domain.MatchScore{{Kind: req.Kind, TargetID: "t1", Overall: 0.8}},
							TotalMatched: 7,
							Page:         req.Page,
							PageSize:     req.PageSize,
							Filters:      req.Filters,
							Metadata:     domain.DiscoveryMetadata{Algorithm: "multi-factor-v1", Confidence: 0.8},
						}, nil
					}),
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/discover/"+tc.kind+"?"+tc.query, nil)
			req = testContextWithUserID("user456")(req)
			req = mux.SetURLVars(req, map[string]string{"kind": tc.kind})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalled, called)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp DiscoverResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Len(t, resp.Data, 1)
			assert.Equal(t, "t1", resp.Data[0].TargetID)
			assert.Equal(t, 7, resp.Metadata.TotalMatched)
			assert.Equal(t, "multi-factor-v1", resp.Metadata.Algorithm)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	req := testContext()(httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()

	writeError(req.Context(), rec, fmt.Errorf("dial tcp 10.0.0.1:3306: refused"), "failed")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("x: %w", domain.ErrValidation), want: http.StatusBadRequest},
		{err: fmt.Errorf("x: %w", domain.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("x: %w", domain.ErrUnauthorized), want: http.StatusForbidden},
		{err: fmt.Errorf("x: %w", domain.ErrTransientDependency), want: http.StatusServiceUnavailable},
		{err: fmt.Errorf("x"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, statusForError(tc.err))
		})
	}
}
