package model

import (
	"encoding/json"
	"fmt"
)

// Sleeper "settings" blobs are free-form JSON whose field names have
// drifted across API versions. Every known variant and default policy
// lives here so the engines never poke at raw JSON themselves.

const DefaultDraftRounds = 3

// ResolveRoundCount extracts the number of draft rounds from a league
// settings blob. Missing, zero or malformed settings default to
// DefaultDraftRounds rather than failing the sync.
func ResolveRoundCount(settings json.RawMessage) int {
	if len(settings) == 0 {
		return DefaultDraftRounds
	}

	var s struct {
		DraftRounds  int `json:"draft_rounds"`
		Rounds       int `json:"rounds"`
		DraftRounds2 int `json:"draftRounds"`
	}
	if err := json.Unmarshal(settings, &s); err != nil {
		return DefaultDraftRounds
	}

	switch {
	case s.DraftRounds > 0:
		return s.DraftRounds
	case s.Rounds > 0:
		return s.Rounds
	case s.DraftRounds2 > 0:
		return s.DraftRounds2
	default:
		return DefaultDraftRounds
	}
}

// Record is the win/loss shape buried in a roster settings blob.
type Record struct {
	Wins      int
	Losses    int
	Ties      int
	PointsFor float64
}

// String formats the record the way Sleeper renders it, with total
// points appended. Used both for display and as the stable input to
// the placeholder needs hash.
func (r Record) String() string {
	return fmt.Sprintf("%d-%d-%d/%.2f", r.Wins, r.Losses, r.Ties, r.PointsFor)
}

// ResolveRecord extracts the win/loss record from a roster settings
// blob. Sleeper splits points-for into integer and decimal fields.
func ResolveRecord(settings json.RawMessage) Record {
	if len(settings) == 0 {
		return Record{}
	}

	var s struct {
		Wins        int `json:"wins"`
		Losses      int `json:"losses"`
		Ties        int `json:"ties"`
		Fpts        int `json:"fpts"`
		FptsDecimal int `json:"fpts_decimal"`
	}
	if err := json.Unmarshal(settings, &s); err != nil {
		return Record{}
	}

	return Record{
		Wins:      s.Wins,
		Losses:    s.Losses,
		Ties:      s.Ties,
		PointsFor: float64(s.Fpts) + float64(s.FptsDecimal)/100.0,
	}
}

// ResolveDraftPosition extracts a roster's manually configured draft
// slot from a roster settings blob, or 0 when none is set.
func ResolveDraftPosition(settings json.RawMessage) int {
	if len(settings) == 0 {
		return 0
	}

	var s struct {
		DraftPosition int `json:"draft_position"`
		DraftSlot     int `json:"draft_slot"`
	}
	if err := json.Unmarshal(settings, &s); err != nil {
		return 0
	}

	if s.DraftPosition > 0 {
		return s.DraftPosition
	}
	return s.DraftSlot
}
