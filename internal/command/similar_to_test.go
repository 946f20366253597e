package command

import (
	"errors"
	"slices"
	"testing"

	"github.com/jbeshir/game-discovery/internal/datasources/mocks"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type similarMocks struct {
	directory     *mocks.MockDirectoryRepository
	relationships *mocks.MockRelationshipRepository
	similarity    *mocks.MockSimilarityRepository
}

func newSimilarToCommand(t *testing.T) (*SimilarTo, similarMocks) {
	m := similarMocks{
		directory:     mocks.NewMockDirectoryRepository(t),
		relationships: mocks.NewMockRelationshipRepository(t),
		similarity:    mocks.NewMockSimilarityRepository(t),
	}
	cmd := NewSimilarTo(m.directory, m.relationships, m.similarity, SimilarToConfig{CandidateLimit: 50})
	cmd.now = fixedNow
	return cmd, m
}

func targetIDs(items []domain.MatchScore) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.TargetID)
	}
	return ids
}

func TestSimilarTo_PrivateCommunity(t *testing.T) {
	private := domain.Community{ID: "c1", OwnerID: "bob", IsPrivate: true, Tags: []string{"survival"}}

	cases := []struct {
		name        string
		memberships []domain.Community
		wantErr     error
	}{
		{
			name:    "not_a_member",
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:        "member",
			memberships: []domain.Community{{ID: "c1"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, m := newSimilarToCommand(t)
			m.directory.EXPECT().GetCommunity(mock.Anything, "c1").Return(private, nil)
			m.directory.EXPECT().ListUserCommunities(mock.Anything, "alice").Return(tc.memberships, nil)
			if tc.wantErr == nil {
				m.directory.EXPECT().
					ListCandidateCommunities(mock.Anything, mock.Anything).
					Return([]domain.Community{{ID: "c2", Tags: []string{"survival"}}}, 1, nil)
			}

			items, err := cmd.Execute(testContext(), SimilarToRequest{
				UserID: "alice", Kind: domain.CandidateKindCommunity, ID: "c1", Limit: 10,
			})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"c2"}, targetIDs(items))
		})
	}
}

func TestSimilarTo_CommunitiesByOverlap(t *testing.T) {
	cmd, m := newSimilarToCommand(t)
	source := domain.Community{
		ID: "c1", Name: "Vikings", Tags: []string{"survival", "coop"}, AllowedGames: []string{"valheim"},
	}
	m.directory.EXPECT().GetCommunity(mock.Anything, "c1").Return(source, nil)
	m.directory.EXPECT().
		ListCandidateCommunities(mock.Anything, mock.MatchedBy(func(q domain.CandidateQuery) bool {
			return slices.Equal(q.Filters.Tags, source.Tags) &&
				slices.Equal(q.ExcludeIDs, []string{"c1"}) &&
				q.Limit == 50
		})).
		Return([]domain.Community{
			{ID: "partial", Tags: []string{"Survival"}},
			{ID: "unrelated", Tags: []string{"racing"}},
			{ID: "twin", Tags: []string{"survival", "coop"}, AllowedGames: []string{"valheim"}},
		}, 3, nil)

	items, err := cmd.Execute(testContext(), SimilarToRequest{
		UserID: "alice", Kind: domain.CandidateKindCommunity, ID: "c1", Limit: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"twin", "partial"}, targetIDs(items))
	assert.InDelta(t, 1.0, items[0].Overall, 1e-9)
	assert.InDelta(t, 1.0/3, items[1].Overall, 1e-9)
	assert.Equal(t, []string{"Similar to Vikings"}, items[0].Reasons)
	assert.Equal(t, testNow, items[0].ComputedAt)
}

func TestSimilarTo_UnknownSource(t *testing.T) {
	cmd, m := newSimilarToCommand(t)
	m.directory.EXPECT().GetServer(mock.Anything, "nope").Return(domain.Server{}, domain.ErrNotFound)

	_, err := cmd.Execute(testContext(), SimilarToRequest{
		UserID: "alice", Kind: domain.CandidateKindServer, ID: "nope", Limit: 10,
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSimilarTo_PlayersExcludeSelfAndBlocked(t *testing.T) {
	cmd, m := newSimilarToCommand(t)
	m.directory.EXPECT().
		GetPlayer(mock.Anything, "bob").
		Return(domain.Player{UserID: "bob", DisplayName: "Bob", RecentGames: []string{"valheim", "raft"}}, nil)
	m.relationships.EXPECT().ListBlockedUserIDs(mock.Anything, "alice").Return([]string{"mallory"}, nil)
	m.directory.EXPECT().
		ListCandidatePlayers(mock.Anything, mock.MatchedBy(func(q domain.CandidateQuery) bool {
			return slices.Equal(q.ExcludeIDs, []string{"bob", "alice", "mallory"})
		})).
		Return([]domain.Player{{UserID: "carol", RecentGames: []string{"valheim"}}}, 1, nil)

	items, err := cmd.Execute(testContext(), SimilarToRequest{
		UserID: "alice", Kind: domain.CandidateKindPlayer, ID: "bob", Limit: 10,
	})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "carol", items[0].TargetID)
	assert.InDelta(t, 0.5, items[0].Overall, 1e-9)
}

func TestSimilarTo_GamesPreferVectors(t *testing.T) {
	cmd, m := newSimilarToCommand(t)
	m.directory.EXPECT().
		FetchGames(mock.Anything, []string{"valheim"}).
		Return(map[string]domain.Game{"valheim": {ID: "valheim", Name: "Valheim"}}, nil)
	m.similarity.EXPECT().
		ListSimilarGames(mock.Anything, "valheim", 5).
		Return([]domain.SimilarItem{{ID: "raft", Score: 0.9}, {ID: "retired", Score: 0.8}, {ID: "enshrouded", Score: 0.7}}, nil)
	m.directory.EXPECT().
		FetchGames(mock.Anything, []string{"raft", "retired", "enshrouded"}).
		Return(map[string]domain.Game{
			"raft":       {ID: "raft"},
			"enshrouded": {ID: "enshrouded"},
		}, nil)

	items, err := cmd.Execute(testContext(), SimilarToRequest{
		UserID: "alice", Kind: domain.CandidateKindGame, ID: "valheim", Limit: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"raft", "enshrouded"}, targetIDs(items))
	assert.InDelta(t, 0.9, items[0].Overall, 1e-9)
	require.NotNil(t, items[0].Game)
}

func TestSimilarTo_GamesFallBackToOverlap(t *testing.T) {
	cmd, m := newSimilarToCommand(t)
	source := domain.Game{ID: "valheim", Name: "Valheim", Genres: []string{"survival"}, Tags: []string{"coop"}}
	m.directory.EXPECT().
		FetchGames(mock.Anything, []string{"valheim"}).
		Return(map[string]domain.Game{"valheim": source}, nil)
	m.similarity.EXPECT().
		ListSimilarGames(mock.Anything, "valheim", 5).
		Return(nil, errors.New("index unavailable"))
	m.directory.EXPECT().
		ListCandidateGames(mock.Anything, mock.MatchedBy(func(q domain.CandidateQuery) bool {
			return slices.Equal(q.Filters.Tags, []string{"survival", "coop"})
		})).
		Return([]domain.Game{
			{ID: "raft", Genres: []string{"Survival"}, Tags: []string{"coop"}},
			{ID: "forza", Genres: []string{"racing"}},
		}, 2, nil)

	items, err := cmd.Execute(testContext(), SimilarToRequest{
		UserID: "alice", Kind: domain.CandidateKindGame, ID: "valheim", Limit: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"raft"}, targetIDs(items))
	assert.Equal(t, []string{"Shares genres with Valheim"}, items[0].Reasons)
}

func TestSimilarTo_UnknownGame(t *testing.T) {
	cmd, m := newSimilarToCommand(t)
	m.directory.EXPECT().FetchGames(mock.Anything, []string{"ghost"}).Return(map[string]domain.Game{}, nil)

	_, err := cmd.Execute(testContext(), SimilarToRequest{
		UserID: "alice", Kind: domain.CandidateKindGame, ID: "ghost", Limit: 5,
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
}
