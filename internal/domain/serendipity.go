package domain

import (
	"math"
	"math/rand/v2"
)

// InjectSerendipity builds one page from a ranked list. The top round((1-level)*pageSize) items are
// kept in rank order and the rest of the page is sampled uniformly, without replacement, from the
// items ranked beyond the top pageSize. When there are too few of those, the page is topped up with
// the next-ranked items inside the top pageSize. It returns the page and the number of exploratory
// picks, which are marked Exploratory and placed after the deterministic items.
//
// ranked is not modified. A list shorter than pageSize is returned whole, and a nil rng disables
// exploration.
func InjectSerendipity(ranked []MatchScore, level float64, pageSize int, rng *rand.Rand) ([]MatchScore, int) {
	if pageSize <= 0 || len(ranked) == 0 {
		return []MatchScore{}, 0
	}
	if len(ranked) <= pageSize {
		return append([]MatchScore(nil), ranked...), 0
	}
	if rng == nil {
		return append([]MatchScore(nil), ranked[:pageSize]...), 0
	}

	level = Clamp01(level)
	deterministic := int(math.Round((1 - level) * float64(pageSize)))
	deterministic = min(max(deterministic, 0), pageSize)

	page := make([]MatchScore, 0, pageSize)
	page = append(page, ranked[:deterministic]...)

	pool := ranked[pageSize:]
	explore := min(pageSize-deterministic, len(pool))

	// Top up from inside the top page when the pool beyond it is too small.
	fill := pageSize - deterministic - explore
	page = append(page, ranked[deterministic:deterministic+fill]...)

	if explore == 0 {
		return page, 0
	}

	// Partial Fisher-Yates over pool indices.
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < explore; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]

		pick := pool[idx[i]]
		pick.Exploratory = true
		page = append(page, pick)
	}
	return page, explore
}
