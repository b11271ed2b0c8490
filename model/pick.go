package model

import "fmt"

// DraftPick is one future draft slot in a league's ledger.
//
// RosterID is the roster whose slot this historically is, OwnerID is
// whoever holds it after trades, and PreviousOwnerID (when set) is the
// immediate prior holder. That direction is applied uniformly: trades
// never change RosterID, only OwnerID/PreviousOwnerID.
//
// Exactly one pick exists per (LeagueID, Season, Round, RosterID).
// The ledger is rebuilt wholesale on every sync; PickSlot and Comment
// are carried forward across rebuilds by that synthetic key.
type DraftPick struct {
	ID              int64  `json:"id"`
	LeagueID        string `json:"leagueId"`
	Season          string `json:"season"`
	Round           int    `json:"round"`
	RosterID        int    `json:"rosterId"`
	OwnerID         int    `json:"ownerId"`
	PreviousOwnerID *int   `json:"previousOwnerId,omitempty"`
	PickSlot        string `json:"pickSlot,omitempty"`
	Comment         string `json:"comment,omitempty"`
}

// Key returns the synthetic key identifying a pick independently of
// its row id. Used to carry manual fields across ledger rebuilds.
func (p *DraftPick) Key() string {
	return PickKey(p.Season, p.Round, p.RosterID)
}

func PickKey(season string, round, rosterID int) string {
	return fmt.Sprintf("%s:%d:%d", season, round, rosterID)
}

// TradedPick is a Sleeper trade record: the slot belonging to RosterID
// in (Season, Round) is now held by OwnerID.
type TradedPick struct {
	Season          string `json:"season"`
	Round           int    `json:"round"`
	RosterID        int    `json:"roster_id"`
	OwnerID         int    `json:"owner_id"`
	PreviousOwnerID int    `json:"previous_owner_id"`
}

// PickPrediction is a per-user free-text note on a pick. It overlays
// the canonical Comment field and is never touched by syncs.
type PickPrediction struct {
	PickID  int64  `json:"pickId"`
	UserID  string `json:"userId"`
	Comment string `json:"comment"`
}

// DraftType distinguishes how rounds after the first are ordered.
type DraftType string

const (
	DraftSnake  DraftType = "snake"
	DraftLinear DraftType = "linear"
)

// Draft describes one season's draft: the type and, when Sleeper has
// assigned slots, the mapping of draft slot (1-based) to roster id.
type Draft struct {
	DraftID      string
	Season       string
	Type         DraftType
	SlotToRoster map[int]int
}
