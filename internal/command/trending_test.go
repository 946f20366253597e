package command

import (
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources/mocks"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrendingCommand(t *testing.T) (*Trending, *mocks.MockDirectoryRepository) {
	directory := mocks.NewMockDirectoryRepository(t)
	cmd := NewTrending(directory, TrendingConfig{
		HalfLifeDays:    7,
		Window:          7 * 24 * time.Hour,
		OverFetchFactor: 2,
	})
	cmd.now = fixedNow
	return cmd, directory
}

func TestTrending_Validation(t *testing.T) {
	cases := []struct {
		name string
		req  TrendingRequest
	}{
		{name: "players_not_supported", req: TrendingRequest{Kind: domain.CandidateKindPlayer, Limit: 10}},
		{name: "missing_kind", req: TrendingRequest{Limit: 10}},
		{name: "zero_limit", req: TrendingRequest{Kind: domain.CandidateKindGame}},
		{name: "limit_too_large", req: TrendingRequest{Kind: domain.CandidateKindGame, Limit: 101}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, _ := newTrendingCommand(t)
			_, err := cmd.Execute(testContext(), tc.req)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTrending_Communities(t *testing.T) {
	cmd, directory := newTrendingCommand(t)
	directory.EXPECT().
		ListTrendingCommunities(mock.Anything, testNow.Add(-7*24*time.Hour), 4).
		Return([]domain.Community{
			{ID: "slow", RecentJoins: 10, MemberCount: 100, LastActiveAt: testNow},
			{ID: "quiet", MemberCount: 100, LastActiveAt: testNow},
			{ID: "fast", RecentJoins: 50, MemberCount: 100, LastActiveAt: testNow},
		}, nil)

	items, err := cmd.Execute(testContext(), TrendingRequest{Kind: domain.CandidateKindCommunity, Limit: 2})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "fast", items[0].TargetID)
	assert.Equal(t, "slow", items[1].TargetID)
	assert.InDelta(t, 1.0, items[0].Overall, 1e-9)
	assert.Less(t, items[1].Overall, items[0].Overall)
	for _, item := range items {
		assert.Equal(t, domain.CandidateKindCommunity, item.Kind)
		assert.Equal(t, domain.CategoryTrending, item.PrimaryCategory)
		assert.Equal(t, testNow, item.ComputedAt)
		assert.NotNil(t, item.Community)
	}
}

func TestTrending_OlderActivityDecays(t *testing.T) {
	cmd, directory := newTrendingCommand(t)
	directory.EXPECT().
		ListTrendingGames(mock.Anything, mock.Anything, 20).
		Return([]domain.Game{
			{ID: "stale", RecentSessions: 100, LastPlayedAt: testNow.Add(-14 * 24 * time.Hour)},
			{ID: "fresh", RecentSessions: 100, LastPlayedAt: testNow},
		}, nil)

	items, err := cmd.Execute(testContext(), TrendingRequest{Kind: domain.CandidateKindGame, Limit: 10})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "fresh", items[0].TargetID)
	// Two half-lives old.
	assert.InDelta(t, 0.25, items[1].Overall, 1e-9)
}

func TestTrending_ServersByPopulation(t *testing.T) {
	cmd, directory := newTrendingCommand(t)
	directory.EXPECT().
		ListTrendingServers(mock.Anything, 20).
		Return([]domain.Server{
			{ID: "full", PlayerCount: 32, MaxPlayers: 32},
			{ID: "empty", PlayerCount: 0, MaxPlayers: 32},
			{ID: "busy", PlayerCount: 16, MaxPlayers: 32},
		}, nil)

	items, err := cmd.Execute(testContext(), TrendingRequest{Kind: domain.CandidateKindServer, Limit: 10})

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"busy", "empty", "full"},
		[]string{items[0].TargetID, items[1].TargetID, items[2].TargetID})
	assert.InDelta(t, 1.0, items[0].Overall, 1e-9)
}

func TestTrending_DirectoryError(t *testing.T) {
	cmd, directory := newTrendingCommand(t)
	directory.EXPECT().
		ListTrendingGames(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrTransientDependency)

	_, err := cmd.Execute(testContext(), TrendingRequest{Kind: domain.CandidateKindGame, Limit: 5})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransientDependency))
}
