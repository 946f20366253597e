package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumWeights(m map[string]float64) float64 {
	var s float64
	for _, v := range m {
		s += v
	}
	return s
}

func TestWeightsFor(t *testing.T) {
	cases := []struct {
		name  string
		prefs func(p *DiscoveryPreferences)
		kind  CandidateKind
		want  map[string]float64
	}{
		{
			name: "defaults",
			kind: CandidateKindCommunity,
			want: map[string]float64{
				CategoryInterest:       0.4,
				CategorySocial:         0.3,
				CategoryActivity:       0.15,
				CategorySizePreference: 0.15,
			},
		},
		{
			name: "friend_activity_disabled",
			kind: CandidateKindPlayer,
			prefs: func(p *DiscoveryPreferences) {
				p.IncludeFriendActivity = false
			},
			want: map[string]float64{
				CategoryInterestSimilarity:     4.0 / 7,
				CategoryMutualFriends:          0,
				CategoryPlayStyleCompatibility: 3.0 / 7,
			},
		},
		{
			name: "configured_weights_are_normalized",
			kind: CandidateKindServer,
			prefs: func(p *DiscoveryPreferences) {
				p.CategoryWeights = map[string]float64{CategoryGame: 1, CategoryPopulation: 1, CategoryCommunityAffiliation: 2}
			},
			want: map[string]float64{
				CategoryGame:                 0.25,
				CategoryPopulation:           0.25,
				CategoryCommunityAffiliation: 0.5,
			},
		},
		{
			name: "all_zero_falls_back_to_defaults",
			kind: CandidateKindGame,
			prefs: func(p *DiscoveryPreferences) {
				p.CategoryWeights = map[string]float64{CategoryGenreMatch: 0, CategoryPopularity: 0, CategoryNovelty: 0}
			},
			want: DefaultWeights(CandidateKindGame),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefs := DefaultDiscoveryPreferences("user-1")
			if tc.prefs != nil {
				tc.prefs(&prefs)
			}

			got := prefs.WeightsFor(tc.kind)

			require.Len(t, got, len(tc.want))
			for k, v := range tc.want {
				assert.InDelta(t, v, got[k], 0.0001, k)
			}
			assert.InDelta(t, 1.0, sumWeights(got), 0.0001)
		})
	}
}

func TestNudgeWeight(t *testing.T) {
	cases := []struct {
		name      string
		start     map[string]float64
		category  string
		delta     float64
		wantOK    bool
		wantValue float64
	}{
		{
			name:      "positive_nudge_from_defaults",
			category:  CategoryInterest,
			delta:     0.05,
			wantOK:    true,
			wantValue: 0.45 / 1.05,
		},
		{
			name:      "negative_nudge_clamps_to_minimum",
			start:     map[string]float64{CategoryGame: 0.05, CategoryPopulation: 0.5, CategoryCommunityAffiliation: 0.45},
			category:  CategoryGame,
			delta:     -0.05,
			wantOK:    true,
			wantValue: 0.05,
		},
		{
			name:     "unknown_category",
			category: "weather",
			delta:    0.05,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefs := DefaultDiscoveryPreferences("user-1")
			prefs.CategoryWeights = tc.start

			got, ok := prefs.NudgeWeight(tc.category, tc.delta, 0.05)

			assert.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				assert.Equal(t, prefs, got)
				return
			}
			assert.InDelta(t, tc.wantValue, got.CategoryWeights[tc.category], 0.0001)

			kind, _ := CategoryKind(tc.category)
			var groupSum float64
			for k := range DefaultWeights(kind) {
				groupSum += got.CategoryWeights[k]
			}
			assert.InDelta(t, 1.0, groupSum, 0.0001)
		})
	}
}

func TestNudgeWeight_LeavesOtherKindsAlone(t *testing.T) {
	prefs := DefaultDiscoveryPreferences("user-1")
	prefs.CategoryWeights = map[string]float64{CategoryGenreMatch: 0.7}

	got, ok := prefs.NudgeWeight(CategorySocial, 0.05, 0.05)

	require.True(t, ok)
	assert.Equal(t, 0.7, got.CategoryWeights[CategoryGenreMatch])
	assert.Equal(t, 0.7, prefs.CategoryWeights[CategoryGenreMatch])
	_, touched := prefs.CategoryWeights[CategorySocial]
	assert.False(t, touched, "original preferences were modified")
}

func TestBlocksAny(t *testing.T) {
	prefs := DefaultDiscoveryPreferences("user-1")
	prefs.BlockedCategories = []string{"Horror"}

	assert.True(t, prefs.BlocksAny([]string{"survival"}, []string{"horror"}))
	assert.False(t, prefs.BlocksAny([]string{"survival"}, nil))
	assert.False(t, DefaultDiscoveryPreferences("user-2").BlocksAny([]string{"horror"}))
}
