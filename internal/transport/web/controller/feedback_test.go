package controller

import (
	"context"
	"encoding/json"
	"fmt"
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

func TestActionsRecord_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		cmdErr     error
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "accepted",
			body:       `{"actions":[{"item_kind":"community","item_id":"c1","action_type":"join","category":"interest"}]}`,
			wantStatus: http.StatusAccepted,
			wantCalled: true,
		},
		{
			name:       "malformed_json",
			body:       `{"actions":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_field",
			body:       `{"actions":[],"extra":true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "command_validation_error",
			body:       `{"actions":[]}`,
			cmdErr:     fmt.Errorf("%w: actions required", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			controller := ActionsRecord{
				RecordActionsCmd: stubCommand[command.RecordActionsRequest, command.RecordActionsResult](
					func(_ context.Context, req command.RecordActionsRequest) (command.RecordActionsResult, error) {
						called = true
						assert.Equal(t, "user456", req.UserID)
						if tc.cmdErr != nil {
							return command.RecordActionsResult{}, tc.cmdErr
						}
						require.Len(t, req.Actions, 1)
						assert.Equal(t, domain.ActionJoin, req.Actions[0].ActionType)
						return command.RecordActionsResult{ActionIDs: []string{"a1"}}, nil
					}),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/discover/actions", strings.NewReader(tc.body))
			req = testContextWithUserID("user456")(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalled, called)
			if tc.wantStatus == http.StatusAccepted {
				assert.JSONEq(t, `{"action_ids":["a1"],"dropped":0}`, rec.Body.String())
			}
		})
	}
}

func TestFeedbackRecord_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		cmdErr     error
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"signal":"rating","rating":5}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown_action",
			body:       `{"signal":"like"}`,
			cmdErr:     fmt.Errorf("getting action: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "someone_elses_action",
			body:       `{"signal":"like"}`,
			cmdErr:     domain.ErrUnauthorized,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "malformed_json",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controller := FeedbackRecord{
				RecordFeedbackCmd: stubCommand[command.RecordFeedbackRequest, domain.DiscoveryFeedback](
					func(_ context.Context, req command.RecordFeedbackRequest) (domain.DiscoveryFeedback, error) {
						assert.Equal(t, "user456", req.UserID)
						assert.Equal(t, "act1", req.Feedback.ActionID)
						if tc.cmdErr != nil {
							return domain.DiscoveryFeedback{}, tc.cmdErr
						}
						fb := req.Feedback
						fb.ID = "fb1"
						fb.UserID = req.UserID
						return fb, nil
					}),
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/discover/actions/act1/feedback", strings.NewReader(tc.body))
			req = testContextWithUserID("user456")(req)
			req = mux.SetURLVars(req, map[string]string{"action_id": "act1"})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusCreated {
				return
			}
			var fb domain.DiscoveryFeedback
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
			assert.Equal(t, "fb1", fb.ID)
			require.NotNil(t, fb.Rating)
			assert.Equal(t, 5, *fb.Rating)
		})
	}
}

func TestEngagementAnalytics_ServeHTTP(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		query      string
		wantStatus int
		wantFrom   time.Time
		wantTo     time.Time
	}{
		{
			name:       "default_window",
			wantStatus: http.StatusOK,
			wantFrom:   now.Add(-30 * 24 * time.Hour),
			wantTo:     now,
		},
		{
			name:       "dates",
			query:      "from=2024-01-01&to=2024-02-01",
			wantStatus: http.StatusOK,
			wantFrom:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantTo:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "rfc3339",
			query:      "from=2024-06-01T00:00:00Z",
			wantStatus: http.StatusOK,
			wantFrom:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			wantTo:     now,
		},
		{
			name:       "unparseable",
			query:      "from=last-tuesday",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			controller := EngagementAnalytics{
				Now: func() time.Time { return now },
				AnalyticsCmd: stubCommand[command.EngagementAnalyticsRequest, domain.EngagementReport](
					func(_ context.Context, req command.EngagementAnalyticsRequest) (domain.EngagementReport, error) {
						assert.True(t, tc.wantFrom.Equal(req.From), "from %s", req.From)
						assert.True(t, tc.wantTo.Equal(req.To), "to %s", req.To)
						return domain.EngagementReport{UserID: req.UserID, From: req.From, To: req.To}, nil
					}),
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/discover/analytics?"+tc.query, nil)
			req = testContextWithUserID("user456")(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
