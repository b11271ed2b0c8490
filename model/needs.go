package model

// TeamNeed is a derived (position, score) pair for one roster. Higher
// score means greater positional weakness relative to the league.
// Needs are recomputed on every read and never persisted.
type TeamNeed struct {
	Position Position `json:"position"`
	Score    int      `json:"score"`
}
