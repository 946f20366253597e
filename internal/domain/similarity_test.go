package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccard(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want float64
	}{
		{name: "both_empty", want: 0},
		{name: "one_empty", a: []string{"rpg"}, want: 0},
		{name: "identical", a: []string{"rpg", "coop"}, b: []string{"coop", "rpg"}, want: 1},
		{name: "case_insensitive", a: []string{"RPG"}, b: []string{"rpg"}, want: 1},
		{name: "partial", a: []string{"rpg", "coop"}, b: []string{"coop", "pvp", "survival"}, want: 0.25},
		{name: "duplicates_ignored", a: []string{"rpg", "rpg"}, b: []string{"rpg"}, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Jaccard(tc.a, tc.b), 1e-9)
		})
	}
}

func TestCommunityFeatures(t *testing.T) {
	c := Community{Tags: []string{"Survival"}, AllowedGames: []string{"valheim"}}
	assert.Equal(t, []string{"Survival", "game:valheim"}, CommunityFeatures(c))
}

func TestSimilarResult(t *testing.T) {
	m := SimilarResult(CandidateKindGame, "alice", "raft", 1.4, "Shares 3 tags")

	assert.Equal(t, 1.0, m.Overall)
	assert.Equal(t, CategorySimilarity, m.PrimaryCategory)
	assert.Equal(t, []string{"Shares 3 tags"}, m.Reasons)
}
