package domain

import "time"

// GameSession is one play session read from the activity store.
type GameSession struct {
	UserID          string
	GameID          string
	DurationMinutes int
	StartedAt       time.Time
}

type Game struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Genres         []string  `json:"genres"`
	Tags           []string  `json:"tags"`
	ActivePlayers  int       `json:"active_players"`
	RecentSessions int       `json:"recent_sessions,omitempty"`
	LastPlayedAt   time.Time `json:"last_played_at"`
}

type Community struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	OwnerID      string    `json:"owner_id"`
	Tags         []string  `json:"tags"`
	AllowedGames []string  `json:"allowed_games"`
	MemberCount  int       `json:"member_count"`
	RecentJoins  int       `json:"recent_joins,omitempty"`
	IsPrivate    bool      `json:"is_private"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

type Server struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	GameID      string   `json:"game_id"`
	CommunityID string   `json:"community_id,omitempty"`
	PlayerCount int      `json:"player_count"`
	MaxPlayers  int      `json:"max_players"`
	IsOnline    bool     `json:"is_online"`
	Region      string   `json:"region"`
	Tags        []string `json:"tags"`
}

// FillRatio returns how full the server is, or -1 when capacity is unknown.
func (s Server) FillRatio() float64 {
	if s.MaxPlayers <= 0 {
		return -1
	}
	return float64(s.PlayerCount) / float64(s.MaxPlayers)
}

type Player struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	IsOnline    bool      `json:"is_online"`
	LastSeenAt  time.Time `json:"last_seen_at"`
	RecentGames []string  `json:"recent_games"`
}

// SimilarItem is a candidate returned by a similarity lookup.
type SimilarItem struct {
	ID    string
	Score float64
}
