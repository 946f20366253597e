package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(gameID string, minutes int, at time.Time) GameSession {
	return GameSession{UserID: "user-1", GameID: gameID, DurationMinutes: minutes, StartedAt: at}
}

func TestBuildInterestProfile(t *testing.T) {
	saturday := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)
	friday := saturday.AddDate(0, 0, -1)
	monday := saturday.AddDate(0, 0, -5)

	sessions := []GameSession{
		session("valheim", 150, saturday),
		session("valheim", 150, saturday.AddDate(0, 0, -7)),
		session("valheim", 150, saturday.AddDate(0, 0, -14)),
		session("minecraft", 30, friday),
		session("minecraft", 30, friday.AddDate(0, 0, -7)),
		session("chess", 10, monday),
	}
	games := map[string]Game{
		"valheim":   {ID: "valheim", Genres: []string{"Survival", "Sandbox"}, Tags: []string{"co-op"}},
		"minecraft": {ID: "minecraft", Genres: []string{"Sandbox"}},
	}
	communities := []Community{{ID: "vikings", MemberCount: 30}}

	got := BuildInterestProfile("user-1", sessions, games, communities,
		ProfileBuildOptions{TopGames: 2, MinSessionsForPlayStyle: 5}, testNow)

	assert.Equal(t, []string{"valheim", "minecraft"}, got.PreferredGames)
	assert.Equal(t, map[string]float64{"sandbox": 1, "survival": 0.5}, got.GenreScores)
	assert.Equal(t, map[string]float64{"co-op": 1}, got.FeaturePreferences)
	assert.Equal(t, map[string]float64{PlayStyleDedicated: 0.5, PlayStyleCasual: 0.5}, got.PlayStyleScores)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday, time.Saturday}, got.PreferredPlayTimes.Days)
	assert.Equal(t, PlayWindowStartHour, got.PreferredPlayTimes.StartHour)
	assert.Equal(t, map[string]float64{SizeBandSmall: 1}, got.CommunitySizePreference)
	assert.InDelta(t, 1.0, got.Completeness, 0.0001)
	assert.Equal(t, testNow, got.LastUpdated)
}

func TestBuildInterestProfile_NoHistory(t *testing.T) {
	got := BuildInterestProfile("user-1", nil, nil, nil, ProfileBuildOptions{TopGames: 5}, testNow)

	assert.Equal(t, 0.0, got.Completeness)
	assert.Empty(t, got.PreferredGames)
	assert.Empty(t, got.GenreScores)
	assert.True(t, got.PreferredPlayTimes.IsEmpty())
}

func TestBuildInterestProfile_FewSessionsUseDefaultPlayStyle(t *testing.T) {
	got := BuildInterestProfile("user-1",
		[]GameSession{session("valheim", 300, testNow)},
		nil, nil, ProfileBuildOptions{TopGames: 5, MinSessionsForPlayStyle: 5}, testNow)

	assert.Equal(t, defaultPlayStyles, got.PlayStyleScores)
	assert.Equal(t, []string{"valheim"}, got.PreferredGames)
	// Unknown games contribute no genres.
	assert.Empty(t, got.GenreScores)
}

func TestApplyOverrides(t *testing.T) {
	base := DefaultInterestProfile("user-1")
	base.PreferredGames = []string{"valheim"}
	base.Completeness = base.ComputeCompleteness()

	overrides := ProfileOverrides{
		GenreScores:  map[string]float64{"survival": 1.5, "horror": -1},
		AvoidedGames: []string{"chess"},
		PreferredPlayTimes: &PlayTimes{
			Days: []time.Weekday{time.Sunday}, StartHour: 10, EndHour: 14,
		},
	}

	got := base.ApplyOverrides(overrides)

	assert.Equal(t, map[string]float64{"survival": 1, "horror": 0}, got.GenreScores)
	assert.Equal(t, []string{"valheim"}, got.PreferredGames)
	assert.True(t, got.AvoidsGame("chess"))
	assert.Equal(t, 10, got.PreferredPlayTimes.StartHour)
	assert.Equal(t, overrides, got.Overrides)
	assert.InDelta(t, 0.65, got.Completeness, 0.0001)
}

func TestProfileOverrides_Merge(t *testing.T) {
	older := ProfileOverrides{
		GenreScores:    map[string]float64{"survival": 1},
		PreferredGames: []string{"valheim"},
	}
	newer := ProfileOverrides{PreferredGames: []string{"rust"}}

	got := older.Merge(newer)

	assert.Equal(t, map[string]float64{"survival": 1}, got.GenreScores)
	assert.Equal(t, []string{"rust"}, got.PreferredGames)
	assert.False(t, got.IsZero())
	assert.True(t, ProfileOverrides{}.IsZero())
}

func TestIsStale(t *testing.T) {
	ttl := 7 * 24 * time.Hour
	cases := []struct {
		name        string
		lastUpdated time.Time
		want        bool
	}{
		{name: "never_built", want: true},
		{name: "fresh", lastUpdated: testNow.Add(-time.Hour), want: false},
		{name: "just_expired", lastUpdated: testNow.Add(-ttl), want: true},
		{name: "old", lastUpdated: testNow.AddDate(0, -1, 0), want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := UserInterestProfile{LastUpdated: tc.lastUpdated}
			assert.Equal(t, tc.want, p.IsStale(testNow, ttl))
		})
	}
}

func TestNormalizeByMax(t *testing.T) {
	got := NormalizeByMax(map[string]float64{"a": 4, "b": 2, "c": 0})
	require.Len(t, got, 3)
	assert.Equal(t, 1.0, got["a"])
	assert.Equal(t, 0.5, got["b"])
	assert.Equal(t, 0.0, got["c"])

	assert.Empty(t, NormalizeByMax(map[string]float64{"a": 0}))
}
