package db

import (
	"context"

	"github.com/cole-dav/sleeper-draft-tool/model"
)

type DB interface {
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)
	SaveLeague(ctx context.Context, l *model.League) error

	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	SaveRosters(ctx context.Context, leagueID string, rosters []model.Roster) error

	GetUsers(ctx context.Context, leagueID string) ([]model.User, error)
	SaveUsers(ctx context.Context, leagueID string, users []model.User) error

	GetPicks(ctx context.Context, leagueID string) ([]model.DraftPick, error)
	GetPick(ctx context.Context, id int64) (*model.DraftPick, error)
	// ReplacePicks swaps the entire pick ledger for a league in a single
	// transaction. Predictions attached to old rows are re-keyed onto the
	// new rows by synthetic pick key; readers never observe a partially
	// rebuilt ledger.
	ReplacePicks(ctx context.Context, leagueID string, picks []model.DraftPick) error
	// UpdatePick patches only the fields whose pointers are non-nil and
	// returns the updated pick.
	UpdatePick(ctx context.Context, id int64, pickSlot, comment *string) (*model.DraftPick, error)

	GetTeamOrder(ctx context.Context, leagueID string) ([]int, error)
	SetTeamOrder(ctx context.Context, leagueID string, order []int) error

	GetPredictions(ctx context.Context, leagueID string) ([]model.PickPrediction, error)
	SavePrediction(ctx context.Context, p *model.PickPrediction) error
	DeletePrediction(ctx context.Context, pickID int64, userID string) error
}
