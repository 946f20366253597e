package command

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/jbeshir/game-discovery/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// DiscoverAlgorithm identifies the ranking pipeline in result metadata.
const DiscoverAlgorithm = "multi-factor-v1"

// DiscoverConfig holds configuration for personalized discovery.
type DiscoverConfig struct {
	// OverFetchFactor is how many candidates per requested item are fetched before scoring.
	OverFetchFactor int

	// MaxCandidates caps the fetched candidate superset.
	MaxCandidates int

	// ScoringConcurrency bounds concurrent per-candidate signal lookups.
	ScoringConcurrency int

	// ActivityWindow is the period the user's session count is taken over for activity matching.
	ActivityWindow time.Duration
}

// Discover returns one page of personalized, ranked and diversified candidates of one kind.
type Discover struct {
	Profiles      *GetOrBuildProfile
	StoredProfile datasources.InterestProfileGetter
	Preferences   datasources.PreferencesGetter
	Directory     datasources.DirectoryRepository
	Relationships datasources.RelationshipRepository
	Activity      datasources.UserSessionCounter
	Views         datasources.ActionCounter
	Recorder      *ActionRecorder
	Trending      *Trending
	Config        DiscoverConfig

	now     func() time.Time
	newRand func() *rand.Rand
}

func NewDiscover(
	profiles *GetOrBuildProfile,
	storedProfile datasources.InterestProfileGetter,
	preferences datasources.PreferencesGetter,
	directory datasources.DirectoryRepository,
	relationships datasources.RelationshipRepository,
	activity datasources.UserSessionCounter,
	views datasources.ActionCounter,
	recorder *ActionRecorder,
	trending *Trending,
	config DiscoverConfig,
) *Discover {
	return &Discover{
		Profiles:      profiles,
		StoredProfile: storedProfile,
		Preferences:   preferences,
		Directory:     directory,
		Relationships: relationships,
		Activity:      activity,
		Views:         views,
		Recorder:      recorder,
		Trending:      trending,
		Config:        config,
		now:           time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not security sensitive
		},
	}
}

// discoverRun carries per-request state through the pipeline.
type discoverRun struct {
	req     domain.DiscoveryRequest
	subject domain.ScoringSubject
	query   domain.CandidateQuery
	now     time.Time
	// withTrending merges trending candidates that pass the same hard filters into the pool.
	withTrending bool
}

func (c *Discover) Execute(ctx context.Context, req domain.DiscoveryRequest) (domain.DiscoveryResult, error) {
	start := time.Now()
	result, err := c.execute(ctx, req)

	outcome := "ok"
	switch {
	case errors.Is(err, domain.ErrValidation):
		outcome = "invalid"
	case err != nil:
		outcome = "error"
	}
	metrics.DiscoveryRequests.WithLabelValues(string(req.Kind), outcome).Inc()
	metrics.DiscoveryDuration.WithLabelValues(string(req.Kind)).Observe(time.Since(start).Seconds())
	return result, err
}

func (c *Discover) execute(ctx context.Context, req domain.DiscoveryRequest) (domain.DiscoveryResult, error) {
	if err := validateStruct(req); err != nil {
		return domain.DiscoveryResult{}, err
	}
	if err := req.Filters.CheckBounds(); err != nil {
		return domain.DiscoveryResult{}, err
	}

	logger := domain.LoggerFromContext(ctx).With("user_id", req.UserID, "kind", req.Kind)
	ctx = domain.ContextWithLogger(ctx, logger)
	now := c.now()
	start := time.Now()

	profile, err := c.Profiles.Execute(ctx, GetOrBuildProfileRequest{UserID: req.UserID})
	if err != nil {
		return domain.DiscoveryResult{}, fmt.Errorf("loading profile: %w", err)
	}
	prefs, err := loadPreferences(ctx, c.Preferences, req.UserID)
	if err != nil {
		return domain.DiscoveryResult{}, err
	}

	level := prefs.SerendipityLevel
	if req.Serendipity != nil {
		level = *req.Serendipity
	}
	level = domain.Clamp01(level)

	result := domain.DiscoveryResult{
		Items:    []domain.MatchScore{},
		Page:     req.Page,
		PageSize: req.PageSize,
		Filters:  req.Filters,
		Metadata: domain.DiscoveryMetadata{
			Algorithm:        DiscoverAlgorithm,
			WeightsUsed:      prefs.WeightsFor(req.Kind),
			Explanations:     []string{},
			GeneratedAt:      now,
			SerendipityLevel: level,
		},
	}

	remaining := c.remainingToday(ctx, req.UserID, prefs, now)
	if remaining == 0 {
		result.Metadata.CapReached = true
		result.Metadata.Explanations = append(result.Metadata.Explanations,
			"Daily recommendation limit reached")
		result.Metadata.ProcessingTimeMS = time.Since(start).Milliseconds()
		return result, nil
	}

	run, err := c.prepare(ctx, req, profile, prefs, now)
	if err != nil {
		return domain.DiscoveryResult{}, err
	}

	ranked, err := c.rank(ctx, run)
	if err != nil {
		return domain.DiscoveryResult{}, err
	}

	var page []domain.MatchScore
	exploratory := 0
	if offset := (req.Page - 1) * req.PageSize; offset < len(ranked.items) {
		page, exploratory = domain.InjectSerendipity(ranked.items[offset:], level, req.PageSize, c.newRand())
	}

	if remaining > 0 && len(page) > remaining {
		page = page[:remaining]
		result.Metadata.CapReached = true
	}
	if page != nil {
		result.Items = page
	}

	result.TotalMatched = max(ranked.total, len(result.Items))
	result.Metadata.Confidence = domain.MeanOverall(result.Items)
	result.Metadata.ExploratoryCount = min(exploratory, len(result.Items))
	result.Metadata.DroppedCount = ranked.dropped
	result.Metadata.TrendingCount = ranked.countTrending(result.Items)
	result.Metadata.Explanations = append(result.Metadata.Explanations,
		explain(result.Metadata, profile)...)
	result.Metadata.ProcessingTimeMS = time.Since(start).Milliseconds()

	c.recordViews(ctx, req.UserID, result.Items, now)

	logger.DebugContext(ctx, "discovery complete",
		"returned", len(result.Items),
		"total_matched", result.TotalMatched,
		"dropped", ranked.dropped,
		"exploratory", result.Metadata.ExploratoryCount,
	)
	return result, nil
}

// remainingToday returns how many more items may be shown today, or -1 when there is no cap.
// Failing to count views never blocks discovery.
func (c *Discover) remainingToday(
	ctx context.Context, userID string, prefs domain.DiscoveryPreferences, now time.Time,
) int {
	if prefs.DailyRecommendationCap <= 0 {
		return -1
	}

	year, month, day := now.UTC().Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	shown, err := c.Views.CountUserActions(ctx, userID, domain.ActionView, midnight)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to check daily recommendation cap",
			"error", err,
		)
		return -1
	}
	return max(0, prefs.DailyRecommendationCap-shown)
}

// prepare builds the scoring subject and the hard-filter candidate query.
func (c *Discover) prepare(
	ctx context.Context,
	req domain.DiscoveryRequest,
	profile domain.UserInterestProfile,
	prefs domain.DiscoveryPreferences,
	now time.Time,
) (discoverRun, error) {
	logger := domain.LoggerFromContext(ctx)

	subject := domain.ScoringSubject{
		UserID:       req.UserID,
		Profile:      profile,
		Preferences:  prefs,
		CommunityIDs: map[string]struct{}{},
	}

	query := domain.CandidateQuery{
		RequesterID:    req.UserID,
		Filters:        req.Filters,
		ExcludeGameIDs: slices.Clone(profile.AvoidedGames),
		Limit:          min(req.Page*req.PageSize*max(1, c.Config.OverFetchFactor), c.Config.MaxCandidates),
	}

	switch req.Kind {
	case domain.CandidateKindPlayer:
		blocked, err := c.Relationships.ListBlockedUserIDs(ctx, req.UserID)
		if err != nil {
			return discoverRun{}, fmt.Errorf("listing blocked users: %w", err)
		}
		query.ExcludeIDs = append([]string{req.UserID}, blocked...)
	case domain.CandidateKindCommunity, domain.CandidateKindServer:
		memberships, err := c.Directory.ListUserCommunities(ctx, req.UserID)
		if err != nil {
			return discoverRun{}, fmt.Errorf("listing communities: %w", err)
		}
		for _, m := range memberships {
			subject.CommunityIDs[m.ID] = struct{}{}
		}
	}

	if req.Kind == domain.CandidateKindCommunity {
		count, err := c.Activity.CountUserSessions(ctx, req.UserID, now.Add(-c.Config.ActivityWindow))
		if err != nil {
			logger.WarnContext(ctx, "unable to count recent sessions", "error", err)
		}
		subject.RecentSessionCount = count
	}

	return discoverRun{
		req:          req,
		subject:      subject,
		query:        query,
		now:          now,
		withTrending: prefs.IncludeTrending && req.Kind != domain.CandidateKindPlayer,
	}, nil
}

// rankedCandidates is the scored candidate pool, best first.
type rankedCandidates struct {
	items []domain.MatchScore
	// total is the directory's match count less candidates excluded in memory or dropped.
	total    int
	dropped  int
	trending map[string]struct{}
}

func (r rankedCandidates) countTrending(items []domain.MatchScore) int {
	n := 0
	for _, item := range items {
		if _, ok := r.trending[item.TargetID]; ok {
			n++
		}
	}
	return n
}

// candidatePool is the filtered, unscored candidate set for one request.
type candidatePool[T any] struct {
	candidates []T
	total      int
	trending   map[string]struct{}
}

// rank fetches the candidate superset, scores it and returns it sorted best first.
func (c *Discover) rank(ctx context.Context, run discoverRun) (rankedCandidates, error) {
	switch run.req.Kind {
	case domain.CandidateKindCommunity:
		pool, err := gatherCandidates(ctx, c, run, c.Directory.ListCandidateCommunities,
			func(cm domain.Community) string { return cm.ID },
			func(cm domain.Community) bool {
				return cm.IsPrivate || run.subject.IsMemberOf(cm.ID) || run.subject.Preferences.BlocksAny(cm.Tags)
			})
		if err != nil {
			return rankedCandidates{}, fmt.Errorf("listing candidate communities: %w", err)
		}
		return scoreAll(ctx, c.Config.ScoringConcurrency, run.req.Kind, pool, c.communityScorer(run))
	case domain.CandidateKindServer:
		pool, err := gatherCandidates(ctx, c, run, c.Directory.ListCandidateServers,
			func(s domain.Server) string { return s.ID },
			func(s domain.Server) bool {
				return run.subject.Profile.AvoidsGame(s.GameID) || run.subject.Preferences.BlocksAny(s.Tags)
			})
		if err != nil {
			return rankedCandidates{}, fmt.Errorf("listing candidate servers: %w", err)
		}
		return scoreAll(ctx, c.Config.ScoringConcurrency, run.req.Kind, pool,
			func(_ context.Context, s domain.Server) (domain.MatchScore, error) {
				return domain.ScoreServer(run.subject, s, run.now), nil
			})
	case domain.CandidateKindPlayer:
		pool, err := gatherCandidates(ctx, c, run, c.Directory.ListCandidatePlayers,
			func(p domain.Player) string { return p.UserID },
			func(p domain.Player) bool {
				return slices.Contains(run.query.ExcludeIDs, p.UserID)
			})
		if err != nil {
			return rankedCandidates{}, fmt.Errorf("listing candidate players: %w", err)
		}
		return scoreAll(ctx, c.Config.ScoringConcurrency, run.req.Kind, pool, c.playerScorer(run))
	case domain.CandidateKindGame:
		pool, err := gatherCandidates(ctx, c, run, c.Directory.ListCandidateGames,
			func(g domain.Game) string { return g.ID },
			func(g domain.Game) bool {
				return run.subject.Profile.AvoidsGame(g.ID) || run.subject.Preferences.BlocksAny(g.Genres, g.Tags)
			})
		if err != nil {
			return rankedCandidates{}, fmt.Errorf("listing candidate games: %w", err)
		}
		return scoreAll(ctx, c.Config.ScoringConcurrency, run.req.Kind, pool,
			func(_ context.Context, g domain.Game) (domain.MatchScore, error) {
				return domain.ScoreGame(run.subject, g, run.now), nil
			})
	default:
		return rankedCandidates{}, fmt.Errorf("%w: unknown kind [%s]", domain.ErrValidation, run.req.Kind)
	}
}

// gatherCandidates lists the candidate superset and, when the fetch limit cut the directory's
// matches short, adds trending candidates that pass the same query. In-memory exclusions are
// subtracted from the total.
func gatherCandidates[T any](
	ctx context.Context,
	c *Discover,
	run discoverRun,
	list func(context.Context, domain.CandidateQuery) ([]T, int, error),
	idOf func(T) string,
	excluded func(T) bool,
) (candidatePool[T], error) {
	candidates, total, err := list(ctx, run.query)
	if err != nil {
		return candidatePool[T]{}, err
	}

	pool := candidatePool[T]{trending: map[string]struct{}{}}
	if run.withTrending && total > len(candidates) {
		seen := make(map[string]struct{}, len(candidates))
		for _, cand := range candidates {
			seen[idOf(cand)] = struct{}{}
		}

		for _, cand := range trendingCandidates(ctx, c, run, seen, list) {
			id := idOf(cand)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			candidates = append(candidates, cand)
			pool.trending[id] = struct{}{}
		}
	}

	before := len(candidates)
	pool.candidates = slices.DeleteFunc(candidates, excluded)
	pool.total = max(0, total-(before-len(pool.candidates)))
	return pool, nil
}

// trendingCandidates re-reads trending items not already fetched through the request's candidate
// query, so they are subject to every hard filter. Failures only cost the trending candidates.
func trendingCandidates[T any](
	ctx context.Context,
	c *Discover,
	run discoverRun,
	seen map[string]struct{},
	list func(context.Context, domain.CandidateQuery) ([]T, int, error),
) []T {
	logger := domain.LoggerFromContext(ctx)

	trending, err := c.Trending.Execute(ctx, TrendingRequest{Kind: run.req.Kind, Limit: min(run.req.PageSize*2, 100)})
	if err != nil {
		logger.WarnContext(ctx, "unable to list trending candidates", "error", err)
		return nil
	}

	var ids []string
	for _, item := range trending {
		if _, ok := seen[item.TargetID]; !ok {
			ids = append(ids, item.TargetID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	query := run.query
	query.OnlyIDs = ids
	query.Limit = len(ids)
	candidates, _, err := list(ctx, query)
	if err != nil {
		logger.WarnContext(ctx, "unable to fetch trending candidates", "error", err)
		return nil
	}
	return candidates
}

func (c *Discover) communityScorer(run discoverRun) func(context.Context, domain.Community) (domain.MatchScore, error) {
	return func(ctx context.Context, cm domain.Community) (domain.MatchScore, error) {
		friends := 0
		if run.subject.Preferences.IncludeFriendActivity {
			var err error
			friends, err = c.Relationships.CountFriendMembers(ctx, run.subject.UserID, cm.ID)
			if err != nil {
				return domain.MatchScore{}, fmt.Errorf("counting friend members: %w", err)
			}
		}
		return domain.ScoreCommunity(run.subject, cm, friends, run.now), nil
	}
}

func (c *Discover) playerScorer(run discoverRun) func(context.Context, domain.Player) (domain.MatchScore, error) {
	return func(ctx context.Context, p domain.Player) (domain.MatchScore, error) {
		mutual := 0
		if run.subject.Preferences.IncludeFriendActivity {
			var err error
			mutual, err = c.Relationships.CountMutualFriends(ctx, run.subject.UserID, p.UserID)
			if err != nil {
				return domain.MatchScore{}, fmt.Errorf("counting mutual friends: %w", err)
			}
		}

		profile, err := c.StoredProfile.GetInterestProfile(ctx, p.UserID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			profile = domain.DefaultInterestProfile(p.UserID)
		case err != nil:
			return domain.MatchScore{}, fmt.Errorf("getting candidate profile: %w", err)
		}
		return domain.ScorePlayer(run.subject, p, profile, mutual, run.now), nil
	}
}

// scoreAll scores candidates on a bounded worker pool. A candidate whose scoring fails is logged
// and dropped. Cancellation of ctx stops new work from being submitted.
func scoreAll[T any](
	ctx context.Context,
	concurrency int,
	kind domain.CandidateKind,
	pool candidatePool[T],
	score func(context.Context, T) (domain.MatchScore, error),
) (rankedCandidates, error) {
	logger := domain.LoggerFromContext(ctx)
	results := make([]*domain.MatchScore, len(pool.candidates))
	var dropped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, concurrency))
	for i, candidate := range pool.candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			s, err := score(gctx, candidate)
			if err != nil {
				dropped.Add(1)
				logger.WarnContext(gctx, "dropping candidate after failed lookup",
					"candidate_id", candidateID(candidate),
					"error", err,
				)
				return nil
			}
			results[i] = &s
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return rankedCandidates{}, fmt.Errorf("scoring candidates: %w", err)
	}

	ranked := rankedCandidates{
		items:    make([]domain.MatchScore, 0, len(results)),
		total:    pool.total,
		trending: pool.trending,
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		if _, ok := pool.trending[r.TargetID]; ok {
			r.Reasons = append(r.Reasons, "Trending right now")
		}
		ranked.items = append(ranked.items, *r)
	}
	domain.SortByOverall(ranked.items)

	if n := int(dropped.Load()); n > 0 {
		metrics.DroppedCandidates.WithLabelValues(string(kind)).Add(float64(n))
		ranked.total = max(0, ranked.total-n)
		ranked.dropped = n
	}
	return ranked, nil
}

func candidateID(candidate any) string {
	switch v := candidate.(type) {
	case domain.Community:
		return v.ID
	case domain.Server:
		return v.ID
	case domain.Player:
		return v.UserID
	case domain.Game:
		return v.ID
	default:
		return ""
	}
}

// recordViews queues a view action for every returned item without blocking the response.
func (c *Discover) recordViews(ctx context.Context, userID string, items []domain.MatchScore, now time.Time) {
	if len(items) == 0 {
		return
	}
	actions := make([]domain.DiscoveryAction, 0, len(items))
	for _, item := range items {
		actions = append(actions, domain.DiscoveryAction{
			ID:         uuid.NewString(),
			UserID:     userID,
			ItemKind:   item.Kind,
			ItemID:     item.TargetID,
			ActionType: domain.ActionView,
			Category:   item.PrimaryCategory,
			CreatedAt:  now,
		})
	}
	c.Recorder.Enqueue(ctx, actions...)
}

func explain(meta domain.DiscoveryMetadata, profile domain.UserInterestProfile) []string {
	var out []string

	weights := make([]string, 0, len(meta.WeightsUsed))
	for _, k := range sortedWeightKeys(meta.WeightsUsed) {
		weights = append(weights, fmt.Sprintf("%s %.0f%%", k, meta.WeightsUsed[k]*100))
	}
	out = append(out, "Ranked by "+strings.Join(weights, ", "))

	if profile.Completeness < 0.5 {
		out = append(out, "Your gaming profile is still sparse, so matches are approximate")
	}
	if meta.ExploratoryCount > 0 {
		out = append(out, fmt.Sprintf("%d exploratory picks included for variety", meta.ExploratoryCount))
	}
	if meta.TrendingCount > 0 {
		out = append(out, fmt.Sprintf("%d trending items included", meta.TrendingCount))
	}
	if meta.DroppedCount > 0 {
		out = append(out, fmt.Sprintf("%d candidates skipped because their details were unavailable", meta.DroppedCount))
	}
	if meta.CapReached {
		out = append(out, "Daily recommendation limit reached")
	}
	return out
}

// sortedWeightKeys orders categories by weight, heaviest first.
func sortedWeightKeys(weights map[string]float64) []string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		switch {
		case weights[a] > weights[b]:
			return -1
		case weights[a] < weights[b]:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})
	return keys
}
