package domain

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"time"
)

// Play style buckets derived from session lengths.
const (
	PlayStyleCasual    = "casual"
	PlayStyleRegular   = "regular"
	PlayStyleDedicated = "dedicated"
)

// Preferred play-time window applied to the most active days.
const (
	PlayWindowStartHour = 18
	PlayWindowEndHour   = 23
)

var defaultPlayStyles = map[string]float64{
	PlayStyleCasual:    0.5,
	PlayStyleRegular:   0.3,
	PlayStyleDedicated: 0.2,
}

// ProfileBuildOptions tunes profile derivation.
type ProfileBuildOptions struct {
	// TopGames is how many games by total minutes become preferred games.
	TopGames int
	// MinSessionsForPlayStyle is the session count below which the default play-style
	// distribution is used.
	MinSessionsForPlayStyle int
}

// BuildInterestProfile derives a profile from a user's sessions and community memberships.
// games maps game id to its directory record and may be missing entries; unknown games still rank as
// preferred but contribute no genres or features. A user with no sessions and no memberships gets
// the default profile.
func BuildInterestProfile(
	userID string,
	sessions []GameSession,
	games map[string]Game,
	communities []Community,
	opts ProfileBuildOptions,
	now time.Time,
) UserInterestProfile {
	profile := DefaultInterestProfile(userID)
	profile.LastUpdated = now
	if len(sessions) == 0 && len(communities) == 0 {
		return profile
	}

	profile.PreferredGames = rankGamesByMinutes(sessions, opts.TopGames)

	genres := make(map[string]float64)
	features := make(map[string]float64)
	for _, gameID := range profile.PreferredGames {
		g, ok := games[gameID]
		if !ok {
			continue
		}
		for _, genre := range g.Genres {
			genres[strings.ToLower(genre)]++
		}
		for _, tag := range g.Tags {
			features[strings.ToLower(tag)]++
		}
	}
	profile.GenreScores = NormalizeByMax(genres)
	profile.FeaturePreferences = NormalizeByMax(features)

	if len(sessions) > 0 {
		profile.PlayStyleScores = derivePlayStyles(sessions, opts.MinSessionsForPlayStyle)
		profile.PreferredPlayTimes = derivePlayTimes(sessions)
	}

	sizes := make(map[string]float64)
	for _, c := range communities {
		sizes[CommunitySizeBand(c.MemberCount)]++
	}
	profile.CommunitySizePreference = NormalizeByMax(sizes)

	profile.Completeness = profile.ComputeCompleteness()
	return profile
}

func rankGamesByMinutes(sessions []GameSession, topN int) []string {
	minutes := make(map[string]int)
	for _, s := range sessions {
		if s.GameID == "" {
			continue
		}
		minutes[s.GameID] += max(0, s.DurationMinutes)
	}

	ids := make([]string, 0, len(minutes))
	for id := range minutes {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if c := cmp.Compare(minutes[b], minutes[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if topN > 0 && len(ids) > topN {
		ids = ids[:topN]
	}
	return ids
}

// derivePlayStyles buckets sessions as casual (<60m), regular (60-119m) or dedicated (120m+)
// and returns the share of each.
func derivePlayStyles(sessions []GameSession, minSessions int) map[string]float64 {
	if len(sessions) < minSessions {
		return maps.Clone(defaultPlayStyles)
	}

	counts := make(map[string]float64, 3)
	for _, s := range sessions {
		switch {
		case s.DurationMinutes < 60:
			counts[PlayStyleCasual]++
		case s.DurationMinutes < 120:
			counts[PlayStyleRegular]++
		default:
			counts[PlayStyleDedicated]++
		}
	}
	out := make(map[string]float64, len(counts))
	for k, v := range counts {
		out[k] = Clamp01(v / float64(len(sessions)))
	}
	return out
}

// derivePlayTimes picks the three weekdays with the most session starts.
func derivePlayTimes(sessions []GameSession) PlayTimes {
	var histogram [7]int
	for _, s := range sessions {
		histogram[s.StartedAt.Weekday()]++
	}

	days := make([]time.Weekday, 0, 7)
	for d, n := range histogram {
		if n > 0 {
			days = append(days, time.Weekday(d))
		}
	}
	slices.SortStableFunc(days, func(a, b time.Weekday) int {
		return cmp.Compare(histogram[b], histogram[a])
	})
	if len(days) > 3 {
		days = days[:3]
	}
	slices.Sort(days)

	return PlayTimes{
		Days:      days,
		StartHour: PlayWindowStartHour,
		EndHour:   PlayWindowEndHour,
	}
}
