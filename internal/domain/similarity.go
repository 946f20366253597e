package domain

import "strings"

// CategorySimilarity is the single category reported on similar-item results.
const CategorySimilarity = "similarity"

// Jaccard returns |a∩b| / |a∪b| over case-folded values. Two empty sets have similarity 0.
func Jaccard(a, b []string) float64 {
	setA := foldSet(a)
	setB := foldSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	shared := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(setA)+len(setB)-shared)
}

// CommunityFeatures are the values communities are compared on: tags and allowed games.
func CommunityFeatures(c Community) []string {
	out := make([]string, 0, len(c.Tags)+len(c.AllowedGames))
	out = append(out, c.Tags...)
	for _, g := range c.AllowedGames {
		out = append(out, "game:"+g)
	}
	return out
}

func ServerFeatures(s Server) []string {
	out := make([]string, 0, len(s.Tags)+1)
	out = append(out, s.Tags...)
	if s.GameID != "" {
		out = append(out, "game:"+s.GameID)
	}
	return out
}

func GameFeatures(g Game) []string {
	out := make([]string, 0, len(g.Genres)+len(g.Tags))
	out = append(out, g.Genres...)
	return append(out, g.Tags...)
}

// SimilarResult wraps a similarity score as a match score.
func SimilarResult(kind CandidateKind, subjectUserID, targetID string, score float64, reason string) MatchScore {
	score = Clamp01(score)
	reasons := []string{}
	if reason != "" {
		reasons = append(reasons, reason)
	}
	return MatchScore{
		Kind:            kind,
		SubjectUserID:   subjectUserID,
		TargetID:        targetID,
		Overall:         score,
		CategoryScores:  map[string]float64{CategorySimilarity: score},
		Reasons:         reasons,
		PrimaryCategory: CategorySimilarity,
	}
}

func foldSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		out[strings.ToLower(v)] = struct{}{}
	}
	return out
}
