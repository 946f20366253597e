package domain

import (
	"fmt"
	"time"
)

// DiscoveryFilters are the hard filters applied before scoring.
type DiscoveryFilters struct {
	Query      string   `json:"query,omitempty" validate:"max=200"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=64"`
	GameIDs    []string `json:"game_ids,omitempty" validate:"omitempty,max=50,dive,min=1,max=64"`
	MinSize    *int     `json:"min_size,omitempty" validate:"omitempty,min=0"`
	MaxSize    *int     `json:"max_size,omitempty" validate:"omitempty,min=0"`
	OnlineOnly bool     `json:"online_only,omitempty"`
}

// CheckBounds reports an inverted size range, which struct tags cannot express on pointers.
func (f DiscoveryFilters) CheckBounds() error {
	if f.MinSize != nil && f.MaxSize != nil && *f.MinSize > *f.MaxSize {
		return fmt.Errorf("%w: min_size %d exceeds max_size %d", ErrValidation, *f.MinSize, *f.MaxSize)
	}
	return nil
}

// DiscoveryRequest is a personalized discovery query for one candidate kind.
type DiscoveryRequest struct {
	UserID   string           `json:"user_id" validate:"required"`
	Kind     CandidateKind    `json:"kind" validate:"required,oneof=community server player game"`
	Filters  DiscoveryFilters `json:"filters"`
	Page     int              `json:"page" validate:"min=1,max=1000"`
	PageSize int              `json:"page_size" validate:"min=1,max=100"`
	// Serendipity overrides the stored serendipity level for this request only.
	Serendipity *float64 `json:"serendipity,omitempty" validate:"omitempty,min=0,max=1"`
}

// CandidateQuery is what the directory receives to fetch a bounded candidate superset.
type CandidateQuery struct {
	RequesterID string
	Filters     DiscoveryFilters
	// ExcludeIDs are candidate ids that must never be returned.
	ExcludeIDs []string
	// ExcludeGameIDs drops candidates tied to these games (servers by game, games by id).
	ExcludeGameIDs []string
	// OnlyIDs, when set, restricts results to these candidate ids on top of every other condition.
	OnlyIDs []string
	Limit   int
}

// DiscoveryMetadata explains how a discovery result was produced.
type DiscoveryMetadata struct {
	Algorithm        string             `json:"algorithm"`
	Confidence       float64            `json:"confidence"`
	WeightsUsed      map[string]float64 `json:"weights_used"`
	Explanations     []string           `json:"explanations"`
	GeneratedAt      time.Time          `json:"generated_at"`
	ProcessingTimeMS int64              `json:"processing_time_ms"`
	SerendipityLevel float64            `json:"serendipity_level"`
	ExploratoryCount int                `json:"exploratory_count"`
	DroppedCount     int                `json:"dropped_count"`
	// TrendingCount is how many returned items entered the candidate pool from the trending list.
	TrendingCount int  `json:"trending_count,omitempty"`
	CapReached    bool `json:"cap_reached,omitempty"`
}

// DiscoveryResult is one page of ranked, diversified candidates.
type DiscoveryResult struct {
	Items        []MatchScore      `json:"items"`
	TotalMatched int               `json:"total_matched"`
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
	Filters      DiscoveryFilters  `json:"filters"`
	Metadata     DiscoveryMetadata `json:"metadata"`
}
