package domain

import (
	"cmp"
	"slices"
	"time"
)

// CandidateKind tags the entity a MatchScore was computed for.
type CandidateKind string

const (
	CandidateKindCommunity CandidateKind = "community"
	CandidateKindServer    CandidateKind = "server"
	CandidateKindPlayer    CandidateKind = "player"
	CandidateKindGame      CandidateKind = "game"
)

var ValidCandidateKinds = []CandidateKind{
	CandidateKindCommunity,
	CandidateKindServer,
	CandidateKindPlayer,
	CandidateKindGame,
}

// ParseCandidateKind accepts both singular and plural forms ("community", "communities").
func ParseCandidateKind(s string) (CandidateKind, bool) {
	switch s {
	case "community", "communities":
		return CandidateKindCommunity, true
	case "server", "servers":
		return CandidateKindServer, true
	case "player", "players":
		return CandidateKindPlayer, true
	case "game", "games":
		return CandidateKindGame, true
	default:
		return "", false
	}
}

// MatchScore is the bounded compatibility between a user and one candidate.
// Exactly one of the candidate payload fields is set, matching Kind.
type MatchScore struct {
	Kind           CandidateKind      `json:"kind"`
	SubjectUserID  string             `json:"subject_user_id"`
	TargetID       string             `json:"target_id"`
	Overall        float64            `json:"overall"`
	CategoryScores map[string]float64 `json:"category_scores"`
	Reasons        []string           `json:"reasons"`
	ComputedAt     time.Time          `json:"computed_at"`

	// PrimaryCategory is the category that contributed most to Overall.
	PrimaryCategory string `json:"primary_category"`
	// Exploratory marks items placed by serendipity rather than rank.
	Exploratory bool `json:"exploratory"`

	Community     *Community `json:"community,omitempty"`
	Server        *Server    `json:"server,omitempty"`
	Player        *Player    `json:"player,omitempty"`
	Game          *Game      `json:"game,omitempty"`
	MutualFriends int        `json:"mutual_friends,omitempty"`
}

// newMatchScore combines category scores with weights into a bounded overall score.
// Categories missing from weights contribute nothing.
func newMatchScore(
	kind CandidateKind,
	subjectUserID, targetID string,
	scores, weights map[string]float64,
	reasons []string,
	now time.Time,
) MatchScore {
	var overall, best float64
	var primary string
	for _, k := range sortedKeys(scores) {
		contribution := weights[k] * Clamp01(scores[k])
		overall += contribution
		if contribution > best {
			best = contribution
			primary = k
		}
	}
	if reasons == nil {
		reasons = []string{}
	}

	return MatchScore{
		Kind:            kind,
		SubjectUserID:   subjectUserID,
		TargetID:        targetID,
		Overall:         Clamp01(overall),
		CategoryScores:  scores,
		Reasons:         reasons,
		ComputedAt:      now,
		PrimaryCategory: primary,
	}
}

// SortByOverall orders scores descending by Overall, breaking ties by TargetID.
func SortByOverall(scores []MatchScore) {
	slices.SortStableFunc(scores, func(a, b MatchScore) int {
		if c := cmp.Compare(b.Overall, a.Overall); c != 0 {
			return c
		}
		return cmp.Compare(a.TargetID, b.TargetID)
	})
}

// MeanOverall returns the mean Overall of scores, or 0 for an empty slice.
func MeanOverall(scores []MatchScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s.Overall
	}
	return sum / float64(len(scores))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
