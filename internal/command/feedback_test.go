package command

import (
	"testing"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources/mocks"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordActions(t *testing.T) {
	cases := []struct {
		name         string
		actions      []domain.DiscoveryAction
		wantErr      error
		wantNudge    bool
		wantInterest float64
	}{
		{
			name:    "empty_batch_rejected",
			wantErr: domain.ErrValidation,
		},
		{
			name: "unknown_action_type_rejected",
			actions: []domain.DiscoveryAction{
				{ItemKind: domain.CandidateKindGame, ItemID: "valheim", ActionType: "buy"},
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "click_does_not_nudge",
			actions: []domain.DiscoveryAction{
				{ItemKind: domain.CandidateKindCommunity, ItemID: "vikings", ActionType: domain.ActionClick,
					Category: domain.CategoryInterest},
			},
		},
		{
			name: "join_nudges_half_step",
			actions: []domain.DiscoveryAction{
				{ItemKind: domain.CandidateKindCommunity, ItemID: "vikings", ActionType: domain.ActionJoin,
					Category: domain.CategoryInterest},
			},
			wantNudge: true,
			// (0.4 + 0.025) / 1.025
			wantInterest: 0.425 / 1.025,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefs := mocks.NewMockProfileRepository(t)
			recorder := NewActionRecorder(mocks.NewMockActionRepository(t), mocks.NewMockEventPublisher(t),
				testRecorderConfig())
			cmd := NewRecordActions(recorder, prefs, testFeedbackConfig())
			cmd.now = fixedNow

			if tc.wantNudge {
				prefs.EXPECT().
					GetPreferences(mock.Anything, "alice").
					Return(domain.DiscoveryPreferences{}, domain.ErrNotFound)
				prefs.EXPECT().
					ReplacePreferences(mock.Anything, mock.MatchedBy(func(p domain.DiscoveryPreferences) bool {
						return assert.InDelta(t, tc.wantInterest, p.CategoryWeights[domain.CategoryInterest], 1e-9)
					})).
					Return(nil)
			}

			res, err := cmd.Execute(testContext(), RecordActionsRequest{UserID: "alice", Actions: tc.actions})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, recorder.queue)
				return
			}
			require.NoError(t, err)
			require.Len(t, res.ActionIDs, len(tc.actions))
			assert.Zero(t, res.Dropped)

			queued := <-recorder.queue
			assert.Equal(t, res.ActionIDs[0], queued.ID)
			assert.Equal(t, "alice", queued.UserID)
			assert.Equal(t, testNow, queued.CreatedAt)
		})
	}
}

func TestRecordActions_FullBufferReturnsOnlyQueuedIDs(t *testing.T) {
	config := testRecorderConfig()
	config.BufferSize = 1
	recorder := NewActionRecorder(mocks.NewMockActionRepository(t), mocks.NewMockEventPublisher(t), config)
	cmd := NewRecordActions(recorder, mocks.NewMockProfileRepository(t), testFeedbackConfig())
	cmd.now = fixedNow

	// The dismissal is dropped, so its weight nudge must not apply either.
	res, err := cmd.Execute(testContext(), RecordActionsRequest{
		UserID: "alice",
		Actions: []domain.DiscoveryAction{
			{ItemKind: domain.CandidateKindGame, ItemID: "valheim", ActionType: domain.ActionClick},
			{ItemKind: domain.CandidateKindGame, ItemID: "raft", ActionType: domain.ActionDismiss,
				Category: domain.CategoryInterest},
		},
	})

	require.NoError(t, err)
	require.Len(t, res.ActionIDs, 1)
	assert.Equal(t, 1, res.Dropped)

	queued := <-recorder.queue
	assert.Equal(t, res.ActionIDs[0], queued.ID)
	assert.Equal(t, "valheim", queued.ItemID)
	assert.Empty(t, recorder.queue)
}

func TestRecordFeedback(t *testing.T) {
	action := domain.DiscoveryAction{
		ID:         "act-1",
		UserID:     "alice",
		ItemKind:   domain.CandidateKindPlayer,
		ItemID:     "bob",
		ActionType: domain.ActionView,
		Category:   domain.CategoryMutualFriends,
	}

	cases := []struct {
		name       string
		userID     string
		feedback   domain.DiscoveryFeedback
		action     domain.DiscoveryAction
		actionErr  error
		wantErr    error
		wantWeight float64
	}{
		{
			name:     "rating_requires_value",
			userID:   "alice",
			feedback: domain.DiscoveryFeedback{ActionID: "act-1", Signal: domain.FeedbackRating},
			wantErr:  domain.ErrValidation,
		},
		{
			name:     "rating_out_of_range",
			userID:   "alice",
			feedback: domain.DiscoveryFeedback{ActionID: "act-1", Signal: domain.FeedbackRating, Rating: ptr(6)},
			wantErr:  domain.ErrValidation,
		},
		{
			name:      "unknown_action",
			userID:    "alice",
			feedback:  domain.DiscoveryFeedback{ActionID: "act-1", Signal: domain.FeedbackLike},
			actionErr: domain.ErrNotFound,
			wantErr:   domain.ErrNotFound,
		},
		{
			name:     "another_users_action",
			userID:   "mallory",
			feedback: domain.DiscoveryFeedback{ActionID: "act-1", Signal: domain.FeedbackLike},
			action:   action,
			wantErr:  domain.ErrUnauthorized,
		},
		{
			name:     "like_raises_weight",
			userID:   "alice",
			feedback: domain.DiscoveryFeedback{ActionID: "act-1", Signal: domain.FeedbackLike},
			action:   action,
			// (0.3 + 0.05) / 1.05
			wantWeight: 0.35 / 1.05,
		},
		{
			name:     "low_rating_lowers_weight",
			userID:   "alice",
			feedback: domain.DiscoveryFeedback{ActionID: "act-1", Signal: domain.FeedbackRating, Rating: ptr(1)},
			action:   action,
			// (0.3 - 0.05) / 0.95
			wantWeight: 0.25 / 0.95,
		},
		{
			name:     "neutral_rating_leaves_weights",
			userID:   "alice",
			feedback: domain.DiscoveryFeedback{ActionID: "act-1", Signal: domain.FeedbackRating, Rating: ptr(3)},
			action:   action,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actions := mocks.NewMockActionRepository(t)
			events := mocks.NewMockEventPublisher(t)
			prefs := mocks.NewMockProfileRepository(t)
			cmd := NewRecordFeedback(actions, events, prefs, testFeedbackConfig())
			cmd.now = fixedNow

			if tc.action.ID != "" || tc.actionErr != nil {
				actions.EXPECT().GetAction(mock.Anything, "act-1").Return(tc.action, tc.actionErr)
			}
			if tc.wantErr == nil {
				actions.EXPECT().
					AppendFeedback(mock.Anything, mock.MatchedBy(func(f domain.DiscoveryFeedback) bool {
						return f.ID != "" && f.UserID == "alice" && f.CreatedAt.Equal(testNow)
					})).
					Return(nil)
				events.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(nil)
			}
			if tc.wantWeight != 0 {
				prefs.EXPECT().
					GetPreferences(mock.Anything, "alice").
					Return(domain.DefaultDiscoveryPreferences("alice"), nil)
				prefs.EXPECT().
					ReplacePreferences(mock.Anything, mock.MatchedBy(func(p domain.DiscoveryPreferences) bool {
						var sum float64
						for k, v := range p.CategoryWeights {
							if kind, _ := domain.CategoryKind(k); kind == domain.CandidateKindPlayer {
								sum += v
							}
						}
						return assert.InDelta(t, tc.wantWeight, p.CategoryWeights[domain.CategoryMutualFriends], 1e-9) &&
							assert.InDelta(t, 1.0, sum, 1e-9)
					})).
					Return(nil)
			}

			feedback, err := cmd.Execute(testContext(), RecordFeedbackRequest{UserID: tc.userID, Feedback: tc.feedback})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, feedback.ID)
			assert.Equal(t, "act-1", feedback.ActionID)
		})
	}
}

func TestEngagementAnalytics(t *testing.T) {
	from := testNow.Add(-30 * 24 * time.Hour)

	cases := []struct {
		name    string
		userID  string
		from    time.Time
		to      time.Time
		wantErr error
	}{
		{name: "missing_user", from: from, to: testNow, wantErr: domain.ErrValidation},
		{name: "missing_start", userID: "alice", to: testNow, wantErr: domain.ErrValidation},
		{name: "missing_end", userID: "alice", from: from, wantErr: domain.ErrValidation},
		{name: "inverted_window", userID: "alice", from: testNow, to: from, wantErr: domain.ErrValidation},
		{name: "empty_window", userID: "alice", from: testNow, to: testNow, wantErr: domain.ErrValidation},
		{
			name:    "window_too_long",
			userID:  "alice",
			from:    testNow.Add(-367 * 24 * time.Hour),
			to:      testNow,
			wantErr: domain.ErrValidation,
		},
		{name: "full_year_window", userID: "alice", from: testNow.Add(-366 * 24 * time.Hour), to: testNow},
		{name: "valid_window", userID: "alice", from: from, to: testNow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tallier := mocks.NewMockActionRepository(t)
			if tc.wantErr == nil {
				tallier.EXPECT().
					TallyUserActions(mock.Anything, "alice", tc.from, tc.to).
					Return([]domain.ActionTally{
						{ItemKind: domain.CandidateKindGame, Category: domain.CategoryGenreMatch, ActionType: domain.ActionView, Count: 4},
						{ItemKind: domain.CandidateKindGame, Category: domain.CategoryGenreMatch, ActionType: domain.ActionClick, Count: 1},
					}, nil)
			}

			report, err := NewEngagementAnalytics(tallier).Execute(testContext(), EngagementAnalyticsRequest{
				UserID: tc.userID,
				From:   tc.from,
				To:     tc.to,
			})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4, report.TotalShown)
			assert.Equal(t, 1, report.TotalEngaged)
			assert.InDelta(t, 0.25, report.EngagementRate, 1e-9)
		})
	}
}
