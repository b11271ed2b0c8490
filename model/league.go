package model

import "encoding/json"

// League mirrors the metadata for a single Sleeper league. It is
// created or overwritten wholesale on every sync.
type League struct {
	LeagueID     string          `json:"leagueId"`
	Name         string          `json:"name"`
	TotalRosters int             `json:"totalRosters"`
	Season       string          `json:"season"`
	Avatar       string          `json:"avatar,omitempty"`
	Settings     json.RawMessage `json:"settings"`
}

// Roster is a team within a league. RosterID is the small stable
// identifier (1..N) Sleeper assigns, distinct from the owning user.
type Roster struct {
	LeagueID string          `json:"leagueId"`
	RosterID int             `json:"rosterId"`
	OwnerID  string          `json:"ownerId,omitempty"`
	Players  []string        `json:"players,omitempty"`
	Starters []string        `json:"starters,omitempty"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// User is the display identity behind a roster, scoped to a league.
type User struct {
	UserID      string `json:"userId"`
	LeagueID    string `json:"leagueId"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar,omitempty"`
}
