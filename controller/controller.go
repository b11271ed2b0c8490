package controller

import (
	"context"

	"github.com/cole-dav/sleeper-draft-tool/db"
	"github.com/cole-dav/sleeper-draft-tool/model"
	"github.com/cole-dav/sleeper-draft-tool/platforms/fantasycalc"
	"github.com/cole-dav/sleeper-draft-tool/sleeper"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// SyncLeague pulls everything for a league from sleeper and rebuilds
	// the persisted mirror, including the full pick ledger. A failure
	// leaves previously persisted data untouched.
	SyncLeague(ctx context.Context, leagueID string) error

	// GetLeagueData assembles the combined dashboard view from the
	// persisted mirror, recomputing team needs on every read.
	GetLeagueData(ctx context.Context, leagueID string) (*LeagueData, error)

	// UpdatePick patches the manual pickSlot/comment fields. Nil pointers
	// leave the corresponding field untouched.
	UpdatePick(ctx context.Context, id int64, pickSlot, comment *string) (*model.DraftPick, error)

	SetTeamOrder(ctx context.Context, leagueID string, order []int) error

	// SavePrediction stores a per-user note on a pick. An empty comment
	// deletes the prediction.
	SavePrediction(ctx context.Context, pickID int64, userID, comment string) error

	// GetSleeperUser resolves a sleeper username to its identity. This is
	// the dashboard's whole login story.
	GetSleeperUser(ctx context.Context, username string) (*model.User, error)
}

// LeagueData is the combined view served to the dashboard.
type LeagueData struct {
	League          *model.League              `json:"league"`
	Rosters         []model.Roster             `json:"rosters"`
	Users           []model.User               `json:"users"`
	Picks           []model.DraftPick          `json:"picks"`
	TeamNeeds       map[int][]model.TeamNeed   `json:"teamNeeds"`
	TeamOrder       []int                      `json:"teamOrder,omitempty"`
	TeamPlayers     map[int][]model.Player     `json:"teamPlayers,omitempty"`
	PickPredictions []model.PickPrediction     `json:"pickPredictions,omitempty"`
}

type controller struct {
	clock   clock.Clock
	db      db.DB
	sleeper sleeper.Client
	values  fantasycalc.Client
}

func New(clock clock.Clock, db db.DB, sleeper sleeper.Client, values fantasycalc.Client) (C, error) {
	c := &controller{
		clock:   clock,
		db:      db,
		sleeper: sleeper,
		values:  values,
	}
	return c, nil
}
