package domain

import (
	"math"
	"time"
)

// CategoryTrending is the single category reported on non-personalized trending results.
const CategoryTrending = "trending"

// RecencyWeight decays exponentially with the age of ts: weight = exp(-lambda * days_ago)
// where lambda = ln(2) / halfLifeDays. A zero timestamp has weight 0.
func RecencyWeight(ts time.Time, halfLifeDays float64, now time.Time) float64 {
	if ts.IsZero() || halfLifeDays <= 0 {
		return 0
	}
	daysAgo := max(0, now.Sub(ts).Hours()/24)
	return math.Exp(-math.Ln2 / halfLifeDays * daysAgo)
}

// CommunityTrendingScore ranks communities by recent join growth, decayed by how long ago the
// community was last active.
func CommunityTrendingScore(c Community, halfLifeDays float64, now time.Time) float64 {
	if c.RecentJoins <= 0 {
		return 0
	}
	growth := float64(c.RecentJoins) / float64(max(1, c.MemberCount))
	return math.Log1p(float64(c.RecentJoins)) * (1 + min(1, growth)) * RecencyWeight(c.LastActiveAt, halfLifeDays, now)
}

// GameTrendingScore ranks games by recent session volume, decayed by time since last play.
func GameTrendingScore(g Game, halfLifeDays float64, now time.Time) float64 {
	if g.RecentSessions <= 0 {
		return 0
	}
	return math.Log1p(float64(g.RecentSessions)) * RecencyWeight(g.LastPlayedAt, halfLifeDays, now)
}

// TrendingResults wraps raw trending scores as match scores, scaling by the top score so
// Overall stays in [0,1]. The input order is preserved; callers sort afterwards.
func TrendingResults(kind CandidateKind, items []MatchScore, raw []float64) []MatchScore {
	var top float64
	for _, r := range raw {
		top = max(top, r)
	}
	for i := range items {
		score := 0.0
		if top > 0 {
			score = Clamp01(raw[i] / top)
		}
		items[i].Kind = kind
		items[i].Overall = score
		items[i].CategoryScores = map[string]float64{CategoryTrending: score}
		items[i].PrimaryCategory = CategoryTrending
		if items[i].Reasons == nil {
			items[i].Reasons = []string{}
		}
	}
	return items
}
