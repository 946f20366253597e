package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrending_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		kind          string
		query         string
		cmdErr        error
		wantStatus    int
		wantLimit     int
		wantCacheCtrl string
	}{
		{
			name:          "default_limit",
			kind:          "games",
			wantStatus:    http.StatusOK,
			wantLimit:     20,
			wantCacheCtrl: "max-age=300",
		},
		{
			name:          "explicit_limit",
			kind:          "community",
			query:         "limit=5",
			wantStatus:    http.StatusOK,
			wantLimit:     5,
			wantCacheCtrl: "max-age=300",
		},
		{
			name:       "bad_limit",
			kind:       "games",
			query:      "limit=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "players_rejected_by_command",
			kind:       "players",
			cmdErr:     domain.ErrValidation,
			wantStatus: http.StatusBadRequest,
			wantLimit:  20,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controller := Trending{
				TrendingCmd: stubCommand[command.TrendingRequest, []domain.MatchScore](
					func(_ context.Context, req command.TrendingRequest) ([]domain.MatchScore, error) {
						assert.Equal(t, tc.wantLimit, req.Limit)
						if tc.cmdErr != nil {
							return nil, tc.cmdErr
						}
						return []domain.MatchScore{{Kind: req.Kind, TargetID: "t1", Overall: 1}}, nil
					}),
				CacheMaxAge: 5 * time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/trending/"+tc.kind+"?"+tc.query, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"kind": tc.kind})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp MatchListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, 1, resp.Metadata.Count)
			assert.Equal(t, "t1", resp.Data[0].TargetID)
		})
	}
}

func TestTrendingCommunitiesRSS_ServeHTTP(t *testing.T) {
	controller := TrendingCommunitiesRSS{
		FeedHostname:     "https://discover.example.com",
		FeedPath:         "/v1/trending/communities/rss",
		FeedAuthorName:   "Discovery",
		FeedAuthorEmail:  "discovery@example.com",
		CommunityURLBase: "https://example.com/c/",
		CacheMaxAge:      10 * time.Minute,
		TrendingCmd: stubCommand[command.TrendingRequest, []domain.MatchScore](
			func(_ context.Context, req command.TrendingRequest) ([]domain.MatchScore, error) {
				assert.Equal(t, domain.CandidateKindCommunity, req.Kind)
				return []domain.MatchScore{{
					TargetID:  "vikings",
					Community: &domain.Community{ID: "vikings", Name: "Vikings", MemberCount: 40, RecentJoins: 12},
				}}, nil
			}),
	}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/trending/communities/rss", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=600", rec.Header().Get("Cache-Control"))
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "<title>Vikings</title>"), body)
	assert.Contains(t, body, "https://example.com/c/vikings")
}

func TestTrendingCommunitiesRSS_Unavailable(t *testing.T) {
	controller := TrendingCommunitiesRSS{
		TrendingCmd: stubCommand[command.TrendingRequest, []domain.MatchScore](
			func(context.Context, command.TrendingRequest) ([]domain.MatchScore, error) {
				return nil, domain.ErrTransientDependency
			}),
	}

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/trending/communities/rss", nil))
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
