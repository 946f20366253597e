package domain

import (
	"fmt"
	"maps"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

func testSubject(profile UserInterestProfile) ScoringSubject {
	return ScoringSubject{
		UserID:      profile.UserID,
		Profile:     profile,
		Preferences: DefaultDiscoveryPreferences(profile.UserID),
	}
}

func TestScoreCommunity_InterestScenario(t *testing.T) {
	profile := DefaultInterestProfile("user-1")
	profile.PreferredGames = []string{"valheim"}
	subject := testSubject(profile)

	valheim := Community{ID: "c1", AllowedGames: []string{"valheim"}, MemberCount: 120}
	chess := Community{ID: "c2", AllowedGames: []string{"chess"}, MemberCount: 120}

	s1 := ScoreCommunity(subject, valheim, 0, testNow)
	s2 := ScoreCommunity(subject, chess, 0, testNow)

	assert.Greater(t, s1.Overall, s2.Overall)
	assert.Equal(t, 1.0, s1.CategoryScores[CategoryInterest])
	assert.Equal(t, 0.0, s2.CategoryScores[CategoryInterest])
	assert.Equal(t, CategoryInterest, s1.PrimaryCategory)
	assert.Contains(t, s1.Reasons, "Focuses on valheim")
}

func TestScoreCommunity_Categories(t *testing.T) {
	profile := DefaultInterestProfile("user-1")
	profile.GenreScores = map[string]float64{"survival": 0.8}
	profile.CommunitySizePreference = map[string]float64{SizeBandLarge: 1}

	cases := []struct {
		name         string
		community    Community
		friends      int
		sessions     int
		wantInterest float64
		wantSocial   float64
		wantActivity float64
		wantSize     float64
	}{
		{
			name:         "tag_overlap_gets_partial_credit",
			community:    Community{ID: "c", Tags: []string{"Survival"}, MemberCount: 10},
			sessions:     2,
			wantInterest: 0.45,
			wantActivity: 1,
			wantSize:     0.5,
		},
		{
			name:         "friends_saturate_at_three",
			community:    Community{ID: "c", MemberCount: 1000},
			friends:      5,
			sessions:     30,
			wantSocial:   1,
			wantActivity: 1,
			wantSize:     1,
		},
		{
			name:         "one_friend_and_adjacent_band",
			community:    Community{ID: "c", MemberCount: 200},
			friends:      1,
			sessions:     2,
			wantSocial:   1.0 / 3,
			wantActivity: 0.5,
			wantSize:     0.5,
		},
		{
			name:         "opposite_bands",
			community:    Community{ID: "c", MemberCount: 5000},
			sessions:     0,
			wantActivity: 0.2,
			wantSize:     1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			subject := testSubject(profile)
			subject.RecentSessionCount = tc.sessions

			got := ScoreCommunity(subject, tc.community, tc.friends, testNow)

			assert.InDelta(t, tc.wantInterest, got.CategoryScores[CategoryInterest], 0.0001)
			assert.InDelta(t, tc.wantSocial, got.CategoryScores[CategorySocial], 0.0001)
			assert.InDelta(t, tc.wantActivity, got.CategoryScores[CategoryActivity], 0.0001)
			assert.InDelta(t, tc.wantSize, got.CategoryScores[CategorySizePreference], 0.0001)
			require.NotNil(t, got.Community)
			assert.Equal(t, tc.community.ID, got.Community.ID)
			assert.Equal(t, tc.friends, got.MutualFriends)
		})
	}
}

func TestScoreServer_PopulationScenario(t *testing.T) {
	subject := testSubject(DefaultInterestProfile("user-1"))

	quiet := ScoreServer(subject, Server{ID: "a", GameID: "g", PlayerCount: 20, MaxPlayers: 100}, testNow)
	busy := ScoreServer(subject, Server{ID: "b", GameID: "g", PlayerCount: 60, MaxPlayers: 100}, testNow)
	full := ScoreServer(subject, Server{ID: "c", GameID: "g", PlayerCount: 100, MaxPlayers: 100}, testNow)

	assert.Greater(t, busy.Overall, quiet.Overall)
	assert.Greater(t, quiet.Overall, full.Overall)
}

func TestPopulationScore(t *testing.T) {
	cases := []struct {
		name    string
		players int
		max     int
		want    float64
	}{
		{name: "empty", players: 0, max: 100, want: 0.1},
		{name: "rising", players: 15, max: 100, want: 0.55},
		{name: "comfortable_low_edge", players: 30, max: 100, want: 1},
		{name: "comfortable_high_edge", players: 85, max: 100, want: 1},
		{name: "crowded", players: 95, max: 100, want: 1 - 0.8*(0.10/0.15)},
		{name: "full", players: 100, max: 100, want: 0.1},
		{name: "over_capacity", players: 120, max: 100, want: 0.1},
		{name: "unknown_capacity", players: 10, max: 0, want: 0.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PopulationScore(Server{PlayerCount: tc.players, MaxPlayers: tc.max})
			assert.InDelta(t, tc.want, got, 0.0001)
		})
	}
}

func TestScoreServer_GameAndAffiliation(t *testing.T) {
	profile := DefaultInterestProfile("user-1")
	profile.PreferredGames = []string{"valheim", "rust", "ark", "dayz", "raft", "green-hell"}
	profile.AvoidedGames = []string{"chess"}
	subject := testSubject(profile)
	subject.CommunityIDs = map[string]struct{}{"vikings": {}}

	cases := []struct {
		name            string
		server          Server
		wantGame        float64
		wantAffiliation float64
	}{
		{name: "top_game", server: Server{ID: "s", GameID: "valheim"}, wantGame: 1},
		{name: "second_game", server: Server{ID: "s", GameID: "rust"}, wantGame: 0.9},
		{name: "rank_floor", server: Server{ID: "s", GameID: "green-hell"}, wantGame: 0.6},
		{name: "unfamiliar_game", server: Server{ID: "s", GameID: "tetris"}, wantGame: 0.2},
		{name: "avoided_game", server: Server{ID: "s", GameID: "chess"}, wantGame: 0},
		{
			name:            "member_community",
			server:          Server{ID: "s", GameID: "tetris", CommunityID: "vikings"},
			wantGame:        0.2,
			wantAffiliation: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreServer(subject, tc.server, testNow)
			assert.InDelta(t, tc.wantGame, got.CategoryScores[CategoryGame], 0.0001)
			assert.InDelta(t, tc.wantAffiliation, got.CategoryScores[CategoryCommunityAffiliation], 0.0001)
		})
	}
}

func TestScorePlayer_Symmetric(t *testing.T) {
	a := DefaultInterestProfile("alice")
	a.GenreScores = map[string]float64{"survival": 1, "sandbox": 0.4}
	a.PreferredGames = []string{"valheim", "minecraft"}
	a.PlayStyleScores = map[string]float64{PlayStyleDedicated: 0.7, PlayStyleCasual: 0.3}

	b := DefaultInterestProfile("bob")
	b.GenreScores = map[string]float64{"survival": 0.6, "strategy": 1}
	b.PreferredGames = []string{"valheim", "civ"}
	b.PlayStyleScores = map[string]float64{PlayStyleDedicated: 0.2, PlayStyleRegular: 0.8}

	ab := ScorePlayer(testSubject(a), Player{UserID: "bob"}, b, 2, testNow)
	ba := ScorePlayer(testSubject(b), Player{UserID: "alice"}, a, 2, testNow)

	require.Len(t, ab.CategoryScores, len(ba.CategoryScores))
	for k, v := range ab.CategoryScores {
		assert.InDelta(t, v, ba.CategoryScores[k], 1e-12, k)
	}
	assert.InDelta(t, ab.Overall, ba.Overall, 1e-12)
	assert.Contains(t, ab.Reasons, "You both play valheim")
	assert.Contains(t, ab.Reasons, "2 mutual friends")
}

func TestScorePlayer_DisjointGamesScoreLow(t *testing.T) {
	a := DefaultInterestProfile("alice")
	a.GenreScores = map[string]float64{"survival": 1, "sandbox": 0.5}
	a.PreferredGames = []string{"valheim", "minecraft"}
	a.PlayStyleScores = map[string]float64{PlayStyleDedicated: 1}

	b := DefaultInterestProfile("bob")
	b.GenreScores = map[string]float64{"strategy": 1, "puzzle": 0.8}
	b.PreferredGames = []string{"chess", "civ"}
	b.PlayStyleScores = map[string]float64{PlayStyleDedicated: 1}

	got := ScorePlayer(testSubject(a), Player{UserID: "bob"}, b, 0, testNow)

	assert.Less(t, got.Overall, 0.3)
	assert.Equal(t, 0.0, got.CategoryScores[CategoryMutualFriends])
}

func TestScorePlayer_DisjointGamesWithSharedGenresScoreLow(t *testing.T) {
	cases := []struct {
		name   string
		genres map[string]float64
		gamesA []string
		gamesB []string
	}{
		{
			name:   "one_game_each",
			genres: map[string]float64{"survival": 1},
			gamesA: []string{"valheim"},
			gamesB: []string{"rust"},
		},
		{
			name:   "many_shared_genres",
			genres: map[string]float64{"survival": 1, "sandbox": 1, "crafting": 1, "co-op": 1},
			gamesA: []string{"valheim"},
			gamesB: []string{"rust"},
		},
		{
			name:   "no_games_yet",
			genres: map[string]float64{"survival": 1, "sandbox": 0.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Identical default play styles, as built for users with few sessions.
			a := DefaultInterestProfile("alice")
			a.GenreScores = tc.genres
			a.PreferredGames = tc.gamesA
			a.PlayStyleScores = maps.Clone(defaultPlayStyles)

			b := DefaultInterestProfile("bob")
			b.GenreScores = tc.genres
			b.PreferredGames = tc.gamesB
			b.PlayStyleScores = maps.Clone(defaultPlayStyles)

			got := ScorePlayer(testSubject(a), Player{UserID: "bob"}, b, 0, testNow)

			assert.Less(t, got.Overall, 0.3)
			assert.LessOrEqual(t, got.CategoryScores[CategoryInterestSimilarity], DisjointGamesInterestCap)
			assert.LessOrEqual(t, got.CategoryScores[CategoryPlayStyleCompatibility],
				got.CategoryScores[CategoryInterestSimilarity])
		})
	}
}

func TestScorePlayer_SharedGameLiftsInterest(t *testing.T) {
	a := DefaultInterestProfile("alice")
	a.GenreScores = map[string]float64{"survival": 1}
	a.PreferredGames = []string{"valheim"}

	b := DefaultInterestProfile("bob")
	b.GenreScores = map[string]float64{"survival": 1}
	b.PreferredGames = []string{"valheim"}

	got := ScorePlayer(testSubject(a), Player{UserID: "bob"}, b, 0, testNow)

	assert.InDelta(t, 1.0, got.CategoryScores[CategoryInterestSimilarity], 1e-9)
	assert.Contains(t, got.Reasons, "Similar taste in games")
	assert.Contains(t, got.Reasons, "You both play valheim")
}

func TestScorePlayer_EmptyProfiles(t *testing.T) {
	got := ScorePlayer(
		testSubject(DefaultInterestProfile("alice")),
		Player{UserID: "bob"},
		DefaultInterestProfile("bob"),
		0,
		testNow,
	)
	assert.Equal(t, 0.0, got.Overall)
	assert.Empty(t, got.PrimaryCategory)
	assert.NotNil(t, got.Reasons)
}

func TestScoreGame(t *testing.T) {
	profile := DefaultInterestProfile("user-1")
	profile.GenreScores = map[string]float64{"survival": 1, "sandbox": 0.5}
	profile.PreferredGames = []string{"valheim"}
	subject := testSubject(profile)

	owned := ScoreGame(subject, Game{ID: "valheim", Genres: []string{"Survival"}, ActivePlayers: 10000}, testNow)
	fresh := ScoreGame(subject, Game{ID: "raft", Genres: []string{"Survival", "Sandbox"}, ActivePlayers: 10000}, testNow)
	unrelated := ScoreGame(subject, Game{ID: "chess", Genres: []string{"Board"}, ActivePlayers: 0}, testNow)

	assert.InDelta(t, 0.3, owned.CategoryScores[CategoryNovelty], 0.0001)
	assert.InDelta(t, 1.0, owned.CategoryScores[CategoryPopularity], 0.0001)
	assert.InDelta(t, 0.75, fresh.CategoryScores[CategoryGenreMatch], 0.0001)
	assert.Equal(t, 0.0, unrelated.CategoryScores[CategoryGenreMatch])
	assert.Greater(t, fresh.Overall, unrelated.Overall)
}

func TestScores_Bounded(t *testing.T) {
	rng := newTestRand(7)
	randMap := func(keys ...string) map[string]float64 {
		m := make(map[string]float64)
		for _, k := range keys {
			if rng.IntN(3) > 0 {
				m[k] = rng.Float64()*3 - 1
			}
		}
		return m
	}

	for i := range 200 {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			profile := DefaultInterestProfile("user")
			profile.GenreScores = randMap("survival", "sandbox", "strategy")
			profile.PlayStyleScores = randMap(PlayStyleCasual, PlayStyleDedicated)
			profile.CommunitySizePreference = randMap(SizeBandSmall, SizeBandMedium, SizeBandLarge)
			if rng.IntN(2) == 0 {
				profile.PreferredGames = []string{"valheim", "rust"}
			}

			subject := testSubject(profile)
			subject.Preferences.CategoryWeights = randMap(CategoryInterest, CategorySocial, CategoryGame,
				CategoryPopulation, CategoryMutualFriends, CategoryGenreMatch)
			subject.RecentSessionCount = rng.IntN(40)

			other := DefaultInterestProfile("other")
			other.GenreScores = randMap("survival", "puzzle")
			other.PlayStyleScores = randMap(PlayStyleRegular)

			scores := []MatchScore{
				ScoreCommunity(subject, Community{
					ID:           "c",
					Tags:         []string{"Survival"},
					AllowedGames: []string{"rust"},
					MemberCount:  rng.IntN(2000),
				}, rng.IntN(10), testNow),
				ScoreServer(subject, Server{
					ID:          "s",
					GameID:      "valheim",
					PlayerCount: rng.IntN(150),
					MaxPlayers:  rng.IntN(120),
				}, testNow),
				ScorePlayer(subject, Player{UserID: "other"}, other, rng.IntN(10), testNow),
				ScoreGame(subject, Game{ID: "g", Genres: []string{"Sandbox"}, ActivePlayers: rng.IntN(1_000_000)}, testNow),
			}

			for _, s := range scores {
				assert.GreaterOrEqual(t, s.Overall, 0.0, s.Kind)
				assert.LessOrEqual(t, s.Overall, 1.0, s.Kind)
				for k, v := range s.CategoryScores {
					assert.GreaterOrEqual(t, v, 0.0, k)
					assert.LessOrEqual(t, v, 1.0, k)
				}
			}
		})
	}
}

func TestSymmetricSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b map[string]float64
		want float64
	}{
		{name: "both_empty", want: 0},
		{name: "identical", a: map[string]float64{"x": 0.5}, b: map[string]float64{"x": 0.5}, want: 1},
		{name: "disjoint_full", a: map[string]float64{"x": 1}, b: map[string]float64{"y": 1}, want: 0},
		{name: "partial", a: map[string]float64{"x": 1, "y": 0.5}, b: map[string]float64{"x": 0.5}, want: 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, SymmetricSimilarity(tc.a, tc.b), 0.0001)
			assert.InDelta(t, tc.want, SymmetricSimilarity(tc.b, tc.a), 0.0001)
		})
	}
}
