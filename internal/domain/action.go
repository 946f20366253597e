package domain

import (
	"cmp"
	"slices"
	"time"
)

// ActionType is what a user did with a surfaced item.
type ActionType string

const (
	ActionView    ActionType = "view"
	ActionClick   ActionType = "click"
	ActionJoin    ActionType = "join"
	ActionDismiss ActionType = "dismiss"
)

// NudgeFactor is the fraction of a feedback step applied to the item's category weight when the
// action is recorded. Only joins and dismissals move weights.
func (a ActionType) NudgeFactor() float64 {
	switch a {
	case ActionJoin:
		return 0.5
	case ActionDismiss:
		return -0.5
	default:
		return 0
	}
}

// DiscoveryAction is an append-only record of a user interacting with a surfaced item.
type DiscoveryAction struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	ItemKind   CandidateKind `json:"item_kind" validate:"required,oneof=community server player game"`
	ItemID     string        `json:"item_id" validate:"required,max=64"`
	ActionType ActionType    `json:"action_type" validate:"required,oneof=view click join dismiss"`
	// Category is the scoring category that contributed most when the item was surfaced.
	Category  string    `json:"category" validate:"omitempty,max=64"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackSignal is the kind of explicit feedback given on an action.
type FeedbackSignal string

const (
	FeedbackLike    FeedbackSignal = "like"
	FeedbackDislike FeedbackSignal = "dislike"
	FeedbackRating  FeedbackSignal = "rating"
)

// DiscoveryFeedback is an append-only explicit signal about a previously recorded action.
type DiscoveryFeedback struct {
	ID        string         `json:"id"`
	ActionID  string         `json:"action_id" validate:"required,max=64"`
	UserID    string         `json:"user_id"`
	Signal    FeedbackSignal `json:"signal" validate:"required,oneof=like dislike rating"`
	Rating    *int           `json:"rating,omitempty" validate:"required_if=Signal rating,omitempty,min=1,max=5"`
	CreatedAt time.Time      `json:"created_at"`
}

// Direction is +1 for positive feedback, -1 for negative and 0 for neutral.
// Ratings of 4 or more are positive and 2 or less negative.
func (f DiscoveryFeedback) Direction() int {
	switch f.Signal {
	case FeedbackLike:
		return 1
	case FeedbackDislike:
		return -1
	case FeedbackRating:
		if f.Rating == nil {
			return 0
		}
		switch {
		case *f.Rating >= 4:
			return 1
		case *f.Rating <= 2:
			return -1
		}
	}
	return 0
}

// DiscoveryEvent is published to the event sink for each recorded action or feedback.
type DiscoveryEvent struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	ItemKind   CandidateKind  `json:"item_kind,omitempty"`
	ItemID     string         `json:"item_id,omitempty"`
	Action     ActionType     `json:"action,omitempty"`
	Signal     FeedbackSignal `json:"signal,omitempty"`
	Category   string         `json:"category,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

const (
	EventTypeAction   = "discovery.action"
	EventTypeFeedback = "discovery.feedback"
)

func NewActionEvent(a DiscoveryAction) DiscoveryEvent {
	return DiscoveryEvent{
		Type:       EventTypeAction,
		ID:         a.ID,
		UserID:     a.UserID,
		ItemKind:   a.ItemKind,
		ItemID:     a.ItemID,
		Action:     a.ActionType,
		Category:   a.Category,
		OccurredAt: a.CreatedAt,
	}
}

func NewFeedbackEvent(f DiscoveryFeedback, a DiscoveryAction) DiscoveryEvent {
	return DiscoveryEvent{
		Type:       EventTypeFeedback,
		ID:         f.ID,
		UserID:     f.UserID,
		ItemKind:   a.ItemKind,
		ItemID:     a.ItemID,
		Signal:     f.Signal,
		Category:   a.Category,
		OccurredAt: f.CreatedAt,
	}
}

// ActionTally is a count of actions of one type, grouped by item kind and category.
type ActionTally struct {
	ItemKind   CandidateKind
	Category   string
	ActionType ActionType
	Count      int
}

// EngagementCount summarizes how items of one kind and category were received.
type EngagementCount struct {
	ItemKind       CandidateKind `json:"item_kind"`
	Category       string        `json:"category"`
	Shown          int           `json:"shown"`
	Clicked        int           `json:"clicked"`
	Joined         int           `json:"joined"`
	Dismissed      int           `json:"dismissed"`
	EngagementRate float64       `json:"engagement_rate"`
}

// EngagementReport is the engagement summary for one user over [From, To).
type EngagementReport struct {
	UserID         string            `json:"user_id"`
	From           time.Time         `json:"from"`
	To             time.Time         `json:"to"`
	Counts         []EngagementCount `json:"counts"`
	TotalShown     int               `json:"total_shown"`
	TotalEngaged   int               `json:"total_engaged"`
	EngagementRate float64           `json:"engagement_rate"`
}

// BuildEngagementReport folds tallies into per kind and category counts. Clicks and joins count as
// engagement; the rate is engaged over shown and 0 when nothing was shown.
func BuildEngagementReport(userID string, from, to time.Time, tallies []ActionTally) EngagementReport {
	type key struct {
		kind     CandidateKind
		category string
	}
	byKey := make(map[key]*EngagementCount)
	for _, t := range tallies {
		k := key{kind: t.ItemKind, category: t.Category}
		c, ok := byKey[k]
		if !ok {
			c = &EngagementCount{ItemKind: t.ItemKind, Category: t.Category}
			byKey[k] = c
		}
		switch t.ActionType {
		case ActionView:
			c.Shown += t.Count
		case ActionClick:
			c.Clicked += t.Count
		case ActionJoin:
			c.Joined += t.Count
		case ActionDismiss:
			c.Dismissed += t.Count
		}
	}

	report := EngagementReport{
		UserID: userID,
		From:   from,
		To:     to,
		Counts: make([]EngagementCount, 0, len(byKey)),
	}
	for _, c := range byKey {
		c.EngagementRate = engagementRate(c.Clicked+c.Joined, c.Shown)
		report.TotalShown += c.Shown
		report.TotalEngaged += c.Clicked + c.Joined
		report.Counts = append(report.Counts, *c)
	}
	report.EngagementRate = engagementRate(report.TotalEngaged, report.TotalShown)

	slices.SortFunc(report.Counts, func(a, b EngagementCount) int {
		if c := cmp.Compare(a.ItemKind, b.ItemKind); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return report
}

func engagementRate(engaged, shown int) float64 {
	if shown <= 0 {
		return 0
	}
	return Clamp01(float64(engaged) / float64(shown))
}
