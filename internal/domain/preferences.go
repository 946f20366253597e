package domain

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// Scoring categories, grouped by the candidate kind that produces them.
const (
	CategoryInterest       = "interest"
	CategorySocial         = "social"
	CategoryActivity       = "activity"
	CategorySizePreference = "size_preference"

	CategoryGame                 = "game"
	CategoryPopulation           = "population"
	CategoryCommunityAffiliation = "community_affiliation"

	CategoryInterestSimilarity     = "interest_similarity"
	CategoryMutualFriends          = "mutual_friends"
	CategoryPlayStyleCompatibility = "play_style_compatibility"

	CategoryGenreMatch = "genre_match"
	CategoryPopularity = "popularity"
	CategoryNovelty    = "novelty"
)

var defaultWeights = map[CandidateKind]map[string]float64{
	CandidateKindCommunity: {
		CategoryInterest:       0.4,
		CategorySocial:         0.3,
		CategoryActivity:       0.15,
		CategorySizePreference: 0.15,
	},
	CandidateKindServer: {
		CategoryGame:                 0.4,
		CategoryPopulation:           0.3,
		CategoryCommunityAffiliation: 0.3,
	},
	CandidateKindPlayer: {
		CategoryInterestSimilarity:     0.4,
		CategoryMutualFriends:          0.3,
		CategoryPlayStyleCompatibility: 0.3,
	},
	CandidateKindGame: {
		CategoryGenreMatch: 0.5,
		CategoryPopularity: 0.3,
		CategoryNovelty:    0.2,
	},
}

// socialCategories are switched off when a user disables friend activity.
var socialCategories = []string{CategorySocial, CategoryMutualFriends}

// DefaultWeights returns a copy of the documented default weights for kind.
func DefaultWeights(kind CandidateKind) map[string]float64 {
	return maps.Clone(defaultWeights[kind])
}

// CategoryKind returns the candidate kind whose score uses category.
func CategoryKind(category string) (CandidateKind, bool) {
	for kind, weights := range defaultWeights {
		if _, ok := weights[category]; ok {
			return kind, true
		}
	}
	return "", false
}

// DiscoveryPreferences are a user's tunable discovery settings.
type DiscoveryPreferences struct {
	UserID                     string             `json:"user_id"`
	CategoryWeights            map[string]float64 `json:"category_weights" validate:"omitempty,dive,keys,min=1,max=64,endkeys,min=0,max=1"`
	SerendipityLevel           float64            `json:"serendipity_level" validate:"min=0,max=1"`
	PreferredAlgorithms        []string           `json:"preferred_algorithms" validate:"omitempty,max=10,dive,min=1,max=64"`
	IncludeTrending            bool               `json:"include_trending"`
	IncludeFriendActivity      bool               `json:"include_friend_activity"`
	CrossDomainRecommendations bool               `json:"cross_domain_recommendations"`
	DailyRecommendationCap     int                `json:"daily_recommendation_cap" validate:"min=0,max=1000"`
	// BlockedCategories are content categories (tags or genres) the user never wants surfaced.
	BlockedCategories []string  `json:"blocked_categories" validate:"omitempty,max=100,dive,min=1,max=64"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultDiscoveryPreferences returns the preferences used when a user has none stored.
func DefaultDiscoveryPreferences(userID string) DiscoveryPreferences {
	return DiscoveryPreferences{
		UserID:                userID,
		CategoryWeights:       map[string]float64{},
		SerendipityLevel:      0.2,
		PreferredAlgorithms:   []string{},
		IncludeTrending:       true,
		IncludeFriendActivity: true,
		BlockedCategories:     []string{},
	}
}

// WeightsFor resolves the weights used to score kind: configured values where present,
// defaults otherwise, social categories zeroed when friend activity is disabled, and
// the result normalized to sum to 1.
func (p DiscoveryPreferences) WeightsFor(kind CandidateKind) map[string]float64 {
	weights := DefaultWeights(kind)
	for k := range weights {
		if v, ok := p.CategoryWeights[k]; ok {
			weights[k] = Clamp01(v)
		}
	}
	if !p.IncludeFriendActivity {
		for _, k := range socialCategories {
			if _, ok := weights[k]; ok {
				weights[k] = 0
			}
		}
	}

	normalized, ok := normalizeSum(weights)
	if !ok {
		return DefaultWeights(kind)
	}
	return normalized
}

// NudgeWeight moves category's weight by delta, clamps it to [minWeight,1] and renormalizes the
// category's kind group to sum to 1. It returns false when category is unknown.
func (p DiscoveryPreferences) NudgeWeight(category string, delta, minWeight float64) (DiscoveryPreferences, bool) {
	kind, ok := CategoryKind(category)
	if !ok {
		return p, false
	}

	group := DefaultWeights(kind)
	for k := range group {
		if v, ok := p.CategoryWeights[k]; ok {
			group[k] = Clamp01(v)
		}
	}
	group, _ = normalizeSum(group)
	group[category] = min(1, max(minWeight, group[category]+delta))

	normalized, ok := normalizeSum(group)
	if !ok {
		return p, false
	}

	weights := maps.Clone(p.CategoryWeights)
	if weights == nil {
		weights = make(map[string]float64, len(normalized))
	}
	maps.Copy(weights, normalized)
	p.CategoryWeights = weights
	return p, true
}

// BlocksAny reports whether any of the given tags or genres is a blocked category.
func (p DiscoveryPreferences) BlocksAny(categories ...[]string) bool {
	if len(p.BlockedCategories) == 0 {
		return false
	}
	for _, list := range categories {
		for _, c := range list {
			if slices.ContainsFunc(p.BlockedCategories, func(b string) bool {
				return strings.EqualFold(b, c)
			}) {
				return true
			}
		}
	}
	return false
}

func normalizeSum(m map[string]float64) (map[string]float64, bool) {
	var sum float64
	for _, v := range m {
		sum += v
	}
	if sum <= 0 {
		return m, false
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v / sum
	}
	return out, true
}

// PreferencesPatch is a partial edit of DiscoveryPreferences. Nil fields are left unchanged.
type PreferencesPatch struct {
	CategoryWeights            map[string]float64 `json:"category_weights,omitempty" validate:"omitempty,dive,keys,min=1,max=64,endkeys,min=0,max=1"`
	SerendipityLevel           *float64           `json:"serendipity_level,omitempty" validate:"omitempty,min=0,max=1"`
	PreferredAlgorithms        []string           `json:"preferred_algorithms,omitempty" validate:"omitempty,max=10,dive,min=1,max=64"`
	IncludeTrending            *bool              `json:"include_trending,omitempty"`
	IncludeFriendActivity      *bool              `json:"include_friend_activity,omitempty"`
	CrossDomainRecommendations *bool              `json:"cross_domain_recommendations,omitempty"`
	DailyRecommendationCap     *int               `json:"daily_recommendation_cap,omitempty" validate:"omitempty,min=0,max=1000"`
	BlockedCategories          []string           `json:"blocked_categories,omitempty" validate:"omitempty,max=100,dive,min=1,max=64"`
}

// UnknownCategories returns weight keys that no candidate kind scores.
func (p PreferencesPatch) UnknownCategories() []string {
	var unknown []string
	for _, k := range sortedKeys(p.CategoryWeights) {
		if _, ok := CategoryKind(k); !ok {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

// Apply returns prefs with every set field of p copied over. Category weights are merged per key.
func (p PreferencesPatch) Apply(prefs DiscoveryPreferences) DiscoveryPreferences {
	if p.CategoryWeights != nil {
		weights := maps.Clone(prefs.CategoryWeights)
		if weights == nil {
			weights = make(map[string]float64, len(p.CategoryWeights))
		}
		maps.Copy(weights, p.CategoryWeights)
		prefs.CategoryWeights = weights
	}
	if p.SerendipityLevel != nil {
		prefs.SerendipityLevel = *p.SerendipityLevel
	}
	if p.PreferredAlgorithms != nil {
		prefs.PreferredAlgorithms = slices.Clone(p.PreferredAlgorithms)
	}
	if p.IncludeTrending != nil {
		prefs.IncludeTrending = *p.IncludeTrending
	}
	if p.IncludeFriendActivity != nil {
		prefs.IncludeFriendActivity = *p.IncludeFriendActivity
	}
	if p.CrossDomainRecommendations != nil {
		prefs.CrossDomainRecommendations = *p.CrossDomainRecommendations
	}
	if p.DailyRecommendationCap != nil {
		prefs.DailyRecommendationCap = *p.DailyRecommendationCap
	}
	if p.BlockedCategories != nil {
		prefs.BlockedCategories = slices.Clone(p.BlockedCategories)
	}
	return prefs
}
