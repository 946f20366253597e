package resilient

import (
	"context"
	"time"

	"github.com/jbeshir/game-discovery/internal/datasources"
	"github.com/jbeshir/game-discovery/internal/domain"
)

var (
	_ datasources.RelationshipRepository = (*Relationships)(nil)
	_ datasources.ActivityRepository     = (*Activity)(nil)
	_ datasources.ProfileRepository      = (*Profiles)(nil)
	_ datasources.SimilarityRepository   = (*Similarity)(nil)
	_ datasources.ActionRepository       = (*Actions)(nil)
)

type Relationships struct {
	next    datasources.RelationshipRepository
	backend *Backend
}

func NewRelationships(next datasources.RelationshipRepository, backend *Backend) *Relationships {
	return &Relationships{next: next, backend: backend}
}

func (r *Relationships) ListBlockedUserIDs(ctx context.Context, userID string) ([]string, error) {
	return call(ctx, r.backend, "list blocked users", func(ctx context.Context) ([]string, error) {
		return r.next.ListBlockedUserIDs(ctx, userID)
	})
}

func (r *Relationships) CountMutualFriends(ctx context.Context, userID, otherUserID string) (int, error) {
	return call(ctx, r.backend, "count mutual friends", func(ctx context.Context) (int, error) {
		return r.next.CountMutualFriends(ctx, userID, otherUserID)
	})
}

func (r *Relationships) CountFriendMembers(ctx context.Context, userID, communityID string) (int, error) {
	return call(ctx, r.backend, "count friend members", func(ctx context.Context) (int, error) {
		return r.next.CountFriendMembers(ctx, userID, communityID)
	})
}

type Activity struct {
	next    datasources.ActivityRepository
	backend *Backend
}

func NewActivity(next datasources.ActivityRepository, backend *Backend) *Activity {
	return &Activity{next: next, backend: backend}
}

func (a *Activity) ListUserSessions(ctx context.Context, userID string, since time.Time) ([]domain.GameSession, error) {
	return call(ctx, a.backend, "list user sessions", func(ctx context.Context) ([]domain.GameSession, error) {
		return a.next.ListUserSessions(ctx, userID, since)
	})
}

func (a *Activity) CountUserSessions(ctx context.Context, userID string, since time.Time) (int, error) {
	return call(ctx, a.backend, "count user sessions", func(ctx context.Context) (int, error) {
		return a.next.CountUserSessions(ctx, userID, since)
	})
}

// Profiles retries reads and whole-record replaces; both are idempotent.
type Profiles struct {
	next    datasources.ProfileRepository
	backend *Backend
}

func NewProfiles(next datasources.ProfileRepository, backend *Backend) *Profiles {
	return &Profiles{next: next, backend: backend}
}

func (p *Profiles) GetInterestProfile(ctx context.Context, userID string) (domain.UserInterestProfile, error) {
	return call(ctx, p.backend, "get interest profile", func(ctx context.Context) (domain.UserInterestProfile, error) {
		return p.next.GetInterestProfile(ctx, userID)
	})
}

func (p *Profiles) ReplaceInterestProfile(ctx context.Context, profile domain.UserInterestProfile) error {
	_, err := call(ctx, p.backend, "replace interest profile", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.next.ReplaceInterestProfile(ctx, profile)
	})
	return err
}

func (p *Profiles) ListStaleProfileUserIDs(ctx context.Context, updatedBefore time.Time, limit int) ([]string, error) {
	return call(ctx, p.backend, "list stale profiles", func(ctx context.Context) ([]string, error) {
		return p.next.ListStaleProfileUserIDs(ctx, updatedBefore, limit)
	})
}

func (p *Profiles) GetPreferences(ctx context.Context, userID string) (domain.DiscoveryPreferences, error) {
	return call(ctx, p.backend, "get preferences", func(ctx context.Context) (domain.DiscoveryPreferences, error) {
		return p.next.GetPreferences(ctx, userID)
	})
}

func (p *Profiles) ReplacePreferences(ctx context.Context, prefs domain.DiscoveryPreferences) error {
	_, err := call(ctx, p.backend, "replace preferences", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.next.ReplacePreferences(ctx, prefs)
	})
	return err
}

type Similarity struct {
	next    datasources.SimilarityRepository
	backend *Backend
}

func NewSimilarity(next datasources.SimilarityRepository, backend *Backend) *Similarity {
	return &Similarity{next: next, backend: backend}
}

func (s *Similarity) ListSimilarGames(ctx context.Context, gameID string, limit int) ([]domain.SimilarItem, error) {
	return call(ctx, s.backend, "list similar games", func(ctx context.Context) ([]domain.SimilarItem, error) {
		return s.next.ListSimilarGames(ctx, gameID, limit)
	})
}

// Actions retries log writes as well as reads; appends ignore ids that already exist.
type Actions struct {
	next    datasources.ActionRepository
	backend *Backend
}

func NewActions(next datasources.ActionRepository, backend *Backend) *Actions {
	return &Actions{next: next, backend: backend}
}

func (a *Actions) AppendActions(ctx context.Context, actions []domain.DiscoveryAction) error {
	_, err := call(ctx, a.backend, "append actions", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.next.AppendActions(ctx, actions)
	})
	return err
}

func (a *Actions) GetAction(ctx context.Context, id string) (domain.DiscoveryAction, error) {
	return call(ctx, a.backend, "get action", func(ctx context.Context) (domain.DiscoveryAction, error) {
		return a.next.GetAction(ctx, id)
	})
}

func (a *Actions) AppendFeedback(ctx context.Context, feedback domain.DiscoveryFeedback) error {
	_, err := call(ctx, a.backend, "append feedback", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.next.AppendFeedback(ctx, feedback)
	})
	return err
}

func (a *Actions) CountUserActions(
	ctx context.Context, userID string, actionType domain.ActionType, since time.Time,
) (int, error) {
	return call(ctx, a.backend, "count user actions", func(ctx context.Context) (int, error) {
		return a.next.CountUserActions(ctx, userID, actionType, since)
	})
}

func (a *Actions) TallyUserActions(ctx context.Context, userID string, from, to time.Time) ([]domain.ActionTally, error) {
	return call(ctx, a.backend, "tally user actions", func(ctx context.Context) ([]domain.ActionTally, error) {
		return a.next.TallyUserActions(ctx, userID, from, to)
	})
}
