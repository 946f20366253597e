package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// SocialSaturation is the friend count at which social signals reach 1.0.
const SocialSaturation = 3

// ScoringSubject is everything about the requesting user that the scorers read.
// It is built once per request and shared read-only across scoring goroutines.
type ScoringSubject struct {
	UserID             string
	Profile            UserInterestProfile
	Preferences        DiscoveryPreferences
	RecentSessionCount int
	CommunityIDs       map[string]struct{}
}

// IsMemberOf reports whether the subject belongs to communityID.
func (s ScoringSubject) IsMemberOf(communityID string) bool {
	if communityID == "" {
		return false
	}
	_, ok := s.CommunityIDs[communityID]
	return ok
}

// ScoreCommunity scores a community from interest overlap, friends already in it,
// activity fit and size preference.
func ScoreCommunity(subject ScoringSubject, c Community, friendMembers int, now time.Time) MatchScore {
	var reasons []string

	interest, interestReason := communityInterest(subject.Profile, c)
	if interestReason != "" {
		reasons = append(reasons, interestReason)
	}

	social := Saturating(friendMembers, SocialSaturation)
	switch {
	case friendMembers == 1:
		reasons = append(reasons, "A friend is already a member")
	case friendMembers > 1:
		reasons = append(reasons, fmt.Sprintf("%d friends are already members", friendMembers))
	}

	activity := activityFit(subject.RecentSessionCount, c.MemberCount)
	if activity >= 1 {
		reasons = append(reasons, "Activity level matches the community's size")
	}

	band := CommunitySizeBand(c.MemberCount)
	sizePref := 0.5
	if v, ok := subject.Profile.CommunitySizePreference[band]; ok {
		sizePref = Clamp01(v)
		if sizePref >= 0.7 {
			reasons = append(reasons, fmt.Sprintf("You tend to enjoy %s communities", band))
		}
	}

	scores := map[string]float64{
		CategoryInterest:       interest,
		CategorySocial:         social,
		CategoryActivity:       activity,
		CategorySizePreference: sizePref,
	}
	m := newMatchScore(CandidateKindCommunity, subject.UserID, c.ID, scores,
		subject.Preferences.WeightsFor(CandidateKindCommunity), reasons, now)
	m.Community = &c
	m.MutualFriends = friendMembers
	return m
}

// ScoreServer scores a game server from game preference, population comfort and
// community affiliation.
func ScoreServer(subject ScoringSubject, s Server, now time.Time) MatchScore {
	var reasons []string

	game := serverGameScore(subject.Profile, s.GameID)
	if game >= 0.6 {
		reasons = append(reasons, "Runs one of your favourite games")
	}

	population := PopulationScore(s)
	if population >= 1 {
		reasons = append(reasons, fmt.Sprintf("Active but not crowded (%d/%d players)", s.PlayerCount, s.MaxPlayers))
	}

	affiliation := 0.0
	if subject.IsMemberOf(s.CommunityID) {
		affiliation = 1
		reasons = append(reasons, "Hosted by a community you belong to")
	}

	scores := map[string]float64{
		CategoryGame:                 game,
		CategoryPopulation:           population,
		CategoryCommunityAffiliation: affiliation,
	}
	m := newMatchScore(CandidateKindServer, subject.UserID, s.ID, scores,
		subject.Preferences.WeightsFor(CandidateKindServer), reasons, now)
	m.Server = &s
	return m
}

// DisjointGamesInterestCap bounds interest similarity between players who share no preferred
// game, however close their genre tastes are.
const DisjointGamesInterestCap = 0.25

// ScorePlayer scores another player. The category scores are symmetric in the two profiles.
func ScorePlayer(
	subject ScoringSubject,
	p Player,
	candidateProfile UserInterestProfile,
	mutualFriends int,
	now time.Time,
) MatchScore {
	var reasons []string

	interest := SymmetricSimilarity(interestVector(subject.Profile), interestVector(candidateProfile))
	shared := intersectFold(subject.Profile.PreferredGames, candidateProfile.PreferredGames)
	if len(shared) == 0 {
		interest = min(interest, DisjointGamesInterestCap)
	}
	if interest >= 0.7 {
		reasons = append(reasons, "Similar taste in games")
	}
	if len(shared) > 0 {
		reasons = append(reasons, "You both play "+strings.Join(shared, ", "))
	}

	mutual := Saturating(mutualFriends, SocialSaturation)
	if mutualFriends > 0 {
		reasons = append(reasons, pluralize(mutualFriends, "mutual friend", "mutual friends"))
	}

	// Style agreement counts only as far as interests agree.
	style := SymmetricSimilarity(subject.Profile.PlayStyleScores, candidateProfile.PlayStyleScores) * interest
	if style >= 0.7 {
		reasons = append(reasons, "Compatible play style")
	}

	scores := map[string]float64{
		CategoryInterestSimilarity:     interest,
		CategoryMutualFriends:          mutual,
		CategoryPlayStyleCompatibility: style,
	}
	m := newMatchScore(CandidateKindPlayer, subject.UserID, p.UserID, scores,
		subject.Preferences.WeightsFor(CandidateKindPlayer), reasons, now)
	m.Player = &p
	m.MutualFriends = mutualFriends
	return m
}

// ScoreGame scores a game from genre match, popularity and novelty.
func ScoreGame(subject ScoringSubject, g Game, now time.Time) MatchScore {
	var reasons []string

	genre := genreMatch(subject.Profile.GenreScores, g.Genres)
	if genre >= 0.6 {
		reasons = append(reasons, "Matches genres you play most")
	}

	popularity := 0.0
	if g.ActivePlayers > 0 {
		popularity = Clamp01(math.Log1p(float64(g.ActivePlayers)) / math.Log1p(10000))
	}
	if popularity >= 0.75 {
		reasons = append(reasons, "Popular right now")
	}

	novelty := 1.0
	if _, ok := subject.Profile.PrefersGame(g.ID); ok {
		novelty = 0.3
	} else if genre > 0 {
		reasons = append(reasons, "Something new in a genre you like")
	}

	scores := map[string]float64{
		CategoryGenreMatch: genre,
		CategoryPopularity: popularity,
		CategoryNovelty:    novelty,
	}
	m := newMatchScore(CandidateKindGame, subject.UserID, g.ID, scores,
		subject.Preferences.WeightsFor(CandidateKindGame), reasons, now)
	m.Game = &g
	return m
}

// PopulationScore rewards servers in a comfortable fill band and penalizes near-empty and
// near-full ones. Servers with unknown capacity or no free slots score 0.1.
func PopulationScore(s Server) float64 {
	fill := s.FillRatio()
	switch {
	case fill < 0 || fill >= 1:
		return 0.1
	case fill < 0.3:
		return 0.1 + 0.9*(fill/0.3)
	case fill <= 0.85:
		return 1
	default:
		return Clamp01(1 - 0.8*((fill-0.85)/0.15))
	}
}

// SymmetricSimilarity averages 1-|a-b| over the union of keys, treating missing keys as 0.
// Two empty maps have similarity 0.
func SymmetricSimilarity(a, b map[string]float64) float64 {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	if len(keys) == 0 {
		return 0
	}

	var sum float64
	for k := range keys {
		sum += 1 - math.Abs(Clamp01(a[k])-Clamp01(b[k]))
	}
	return Clamp01(sum / float64(len(keys)))
}

// Saturating maps a count onto [0,1], reaching 1 at saturation.
func Saturating(count, saturation int) float64 {
	if count <= 0 || saturation <= 0 {
		return 0
	}
	return Clamp01(float64(count) / float64(saturation))
}

// interestVector merges genre scores with the preferred games, weighted by rank, so that
// users who play entirely different games are not rated similar on genre alone.
func interestVector(p UserInterestProfile) map[string]float64 {
	v := make(map[string]float64, len(p.GenreScores)+len(p.PreferredGames))
	for k, score := range p.GenreScores {
		v["genre:"+k] = Clamp01(score)
	}
	for rank, gameID := range p.PreferredGames {
		v["game:"+strings.ToLower(gameID)] = max(0.5, 1-0.1*float64(rank))
	}
	return v
}

func communityInterest(profile UserInterestProfile, c Community) (float64, string) {
	if shared := intersectFold(profile.PreferredGames, c.AllowedGames); len(shared) > 0 {
		return 1, "Focuses on " + strings.Join(shared, ", ")
	}

	var best float64
	var matched string
	for _, tag := range c.Tags {
		if v, ok := profile.GenreScores[strings.ToLower(tag)]; ok && (matched == "" || v > best) {
			best = v
			matched = tag
		}
	}
	if matched == "" {
		return 0, ""
	}
	return 0.25 + 0.25*Clamp01(best), "Tagged " + matched + ", a genre you play"
}

// activityFit compares the user's activity band with the community's size band.
func activityFit(sessionCount, memberCount int) float64 {
	var userBand int
	switch {
	case sessionCount < 5:
		userBand = 0
	case sessionCount <= 20:
		userBand = 1
	default:
		userBand = 2
	}

	communityBand := 0
	switch CommunitySizeBand(memberCount) {
	case SizeBandMedium:
		communityBand = 1
	case SizeBandLarge:
		communityBand = 2
	}

	switch d := userBand - communityBand; {
	case d == 0:
		return 1
	case d == 1 || d == -1:
		return 0.5
	default:
		return 0.2
	}
}

func serverGameScore(profile UserInterestProfile, gameID string) float64 {
	if profile.AvoidsGame(gameID) {
		return 0
	}
	if rank, ok := profile.PrefersGame(gameID); ok {
		return max(0.6, 1-0.1*float64(rank))
	}
	// Nonzero floor so servers for unfamiliar games can still surface.
	return 0.2
}

func genreMatch(genreScores map[string]float64, genres []string) float64 {
	if len(genres) == 0 {
		return 0
	}
	var sum float64
	for _, g := range genres {
		sum += Clamp01(genreScores[strings.ToLower(g)])
	}
	return Clamp01(sum / float64(len(genres)))
}

func intersectFold(a, b []string) []string {
	var out []string
	for _, x := range a {
		if slices.ContainsFunc(b, func(y string) bool { return strings.EqualFold(x, y) }) &&
			!slices.Contains(out, x) {
			out = append(out, x)
		}
	}
	return out
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}
