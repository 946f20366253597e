package domain

import (
	"math"
	"slices"
	"time"
)

// Community size bands used by size preferences and activity matching.
const (
	SizeBandSmall  = "small"
	SizeBandMedium = "medium"
	SizeBandLarge  = "large"
)

// PlayTimes is the set of days and the hour window a user usually plays in.
type PlayTimes struct {
	Days      []time.Weekday `json:"days" validate:"max=7,dive,min=0,max=6"`
	StartHour int            `json:"start_hour" validate:"min=0,max=23"`
	EndHour   int            `json:"end_hour" validate:"min=0,max=24"`
}

// IsEmpty reports whether no play days are known.
func (p PlayTimes) IsEmpty() bool {
	return len(p.Days) == 0
}

// UserInterestProfile is a derived summary of a user's gameplay interests.
// Score maps hold values in [0,1].
type UserInterestProfile struct {
	UserID                  string             `json:"user_id"`
	GenreScores             map[string]float64 `json:"genre_scores"`
	PlayStyleScores         map[string]float64 `json:"play_style_scores"`
	FeaturePreferences      map[string]float64 `json:"feature_preferences"`
	CommunitySizePreference map[string]float64 `json:"community_size_preference"`
	PreferredGames          []string           `json:"preferred_games"`
	AvoidedGames            []string           `json:"avoided_games"`
	PreferredPlayTimes      PlayTimes          `json:"preferred_play_times"`
	Completeness            float64            `json:"completeness"`
	LastUpdated             time.Time          `json:"last_updated"`
	Overrides               ProfileOverrides   `json:"overrides"`
}

// ProfileOverrides are explicit user edits applied on top of the derived profile.
// Nil fields leave the derived value untouched.
type ProfileOverrides struct {
	GenreScores             map[string]float64 `json:"genre_scores,omitempty" validate:"omitempty,dive,keys,min=1,max=64,endkeys,min=0,max=1"`
	PlayStyleScores         map[string]float64 `json:"play_style_scores,omitempty" validate:"omitempty,dive,keys,min=1,max=64,endkeys,min=0,max=1"`
	FeaturePreferences      map[string]float64 `json:"feature_preferences,omitempty" validate:"omitempty,dive,keys,min=1,max=64,endkeys,min=0,max=1"`
	CommunitySizePreference map[string]float64 `json:"community_size_preference,omitempty" validate:"omitempty,dive,keys,oneof=small medium large,endkeys,min=0,max=1"`
	PreferredGames          []string           `json:"preferred_games,omitempty" validate:"omitempty,max=50,dive,min=1,max=64"`
	AvoidedGames            []string           `json:"avoided_games,omitempty" validate:"omitempty,max=200,dive,min=1,max=64"`
	PreferredPlayTimes      *PlayTimes         `json:"preferred_play_times,omitempty"`
}

// IsZero reports whether no override is set.
func (o ProfileOverrides) IsZero() bool {
	return o.GenreScores == nil && o.PlayStyleScores == nil && o.FeaturePreferences == nil &&
		o.CommunitySizePreference == nil && o.PreferredGames == nil && o.AvoidedGames == nil &&
		o.PreferredPlayTimes == nil
}

// Merge returns o with every field set in newer replacing the existing value.
func (o ProfileOverrides) Merge(newer ProfileOverrides) ProfileOverrides {
	if newer.GenreScores != nil {
		o.GenreScores = newer.GenreScores
	}
	if newer.PlayStyleScores != nil {
		o.PlayStyleScores = newer.PlayStyleScores
	}
	if newer.FeaturePreferences != nil {
		o.FeaturePreferences = newer.FeaturePreferences
	}
	if newer.CommunitySizePreference != nil {
		o.CommunitySizePreference = newer.CommunitySizePreference
	}
	if newer.PreferredGames != nil {
		o.PreferredGames = newer.PreferredGames
	}
	if newer.AvoidedGames != nil {
		o.AvoidedGames = newer.AvoidedGames
	}
	if newer.PreferredPlayTimes != nil {
		o.PreferredPlayTimes = newer.PreferredPlayTimes
	}
	return o
}

// DefaultInterestProfile returns the empty, zero-completeness profile used when a user has no history
// or no stored profile.
func DefaultInterestProfile(userID string) UserInterestProfile {
	return UserInterestProfile{
		UserID:                  userID,
		GenreScores:             map[string]float64{},
		PlayStyleScores:         map[string]float64{},
		FeaturePreferences:      map[string]float64{},
		CommunitySizePreference: map[string]float64{},
		PreferredGames:          []string{},
		AvoidedGames:            []string{},
	}
}

// ApplyOverrides copies every set override onto the profile and remembers the overrides
// so they survive later rebuilds.
func (p UserInterestProfile) ApplyOverrides(o ProfileOverrides) UserInterestProfile {
	if o.GenreScores != nil {
		p.GenreScores = clampScoreMap(o.GenreScores)
	}
	if o.PlayStyleScores != nil {
		p.PlayStyleScores = clampScoreMap(o.PlayStyleScores)
	}
	if o.FeaturePreferences != nil {
		p.FeaturePreferences = clampScoreMap(o.FeaturePreferences)
	}
	if o.CommunitySizePreference != nil {
		p.CommunitySizePreference = clampScoreMap(o.CommunitySizePreference)
	}
	if o.PreferredGames != nil {
		p.PreferredGames = slices.Clone(o.PreferredGames)
	}
	if o.AvoidedGames != nil {
		p.AvoidedGames = slices.Clone(o.AvoidedGames)
	}
	if o.PreferredPlayTimes != nil {
		p.PreferredPlayTimes = *o.PreferredPlayTimes
	}
	p.Overrides = o
	p.Completeness = p.ComputeCompleteness()
	return p
}

// completenessWeights sum to 1.
var completenessWeights = struct {
	genres, games, playStyles, playTimes, communitySize, features float64
}{
	genres:        0.25,
	games:         0.25,
	playStyles:    0.15,
	playTimes:     0.15,
	communitySize: 0.10,
	features:      0.10,
}

// ComputeCompleteness returns the weighted share of non-empty profile facets, clamped to [0,1].
func (p UserInterestProfile) ComputeCompleteness() float64 {
	var c float64
	if len(p.GenreScores) > 0 {
		c += completenessWeights.genres
	}
	if len(p.PreferredGames) > 0 {
		c += completenessWeights.games
	}
	if len(p.PlayStyleScores) > 0 {
		c += completenessWeights.playStyles
	}
	if !p.PreferredPlayTimes.IsEmpty() {
		c += completenessWeights.playTimes
	}
	if len(p.CommunitySizePreference) > 0 {
		c += completenessWeights.communitySize
	}
	if len(p.FeaturePreferences) > 0 {
		c += completenessWeights.features
	}
	return Clamp01(c)
}

// IsStale reports whether the profile is older than ttl at now.
func (p UserInterestProfile) IsStale(now time.Time, ttl time.Duration) bool {
	return p.LastUpdated.IsZero() || now.Sub(p.LastUpdated) >= ttl
}

// PrefersGame reports whether gameID is in the preferred list, and its rank.
func (p UserInterestProfile) PrefersGame(gameID string) (int, bool) {
	idx := slices.Index(p.PreferredGames, gameID)
	return idx, idx >= 0
}

// AvoidsGame reports whether gameID is on the avoided list.
func (p UserInterestProfile) AvoidsGame(gameID string) bool {
	return slices.Contains(p.AvoidedGames, gameID)
}

// NormalizeByMax scales the map so its largest value becomes 1.
// Genre scores accumulate additively while building a profile; normalizing at write time keeps
// every stored score map inside [0,1].
func NormalizeByMax(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	var maxVal float64
	for _, v := range m {
		maxVal = max(maxVal, v)
	}
	if maxVal <= 0 {
		return out
	}
	for k, v := range m {
		out[k] = Clamp01(v / maxVal)
	}
	return out
}

// CommunitySizeBand buckets a member count into small/medium/large.
func CommunitySizeBand(memberCount int) string {
	switch {
	case memberCount < 50:
		return SizeBandSmall
	case memberCount <= 500:
		return SizeBandMedium
	default:
		return SizeBandLarge
	}
}

func clampScoreMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = Clamp01(v)
	}
	return out
}

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
