package mockdb

import (
	"context"

	"github.com/cole-dav/sleeper-draft-tool/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	args := db.Called(ctx, leagueID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (db *DB) SaveLeague(ctx context.Context, l *model.League) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	args := db.Called(ctx, leagueID)

	var r []model.Roster
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Roster)
	}
	return r, args.Error(1)
}

func (db *DB) SaveRosters(ctx context.Context, leagueID string, rosters []model.Roster) error {
	args := db.Called(ctx, leagueID, rosters)
	return args.Error(0)
}

func (db *DB) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	args := db.Called(ctx, leagueID)

	var u []model.User
	if args.Get(0) != nil {
		u = args.Get(0).([]model.User)
	}
	return u, args.Error(1)
}

func (db *DB) SaveUsers(ctx context.Context, leagueID string, users []model.User) error {
	args := db.Called(ctx, leagueID, users)
	return args.Error(0)
}

func (db *DB) GetPicks(ctx context.Context, leagueID string) ([]model.DraftPick, error) {
	args := db.Called(ctx, leagueID)

	var p []model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).([]model.DraftPick)
	}
	return p, args.Error(1)
}

func (db *DB) GetPick(ctx context.Context, id int64) (*model.DraftPick, error) {
	args := db.Called(ctx, id)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (db *DB) ReplacePicks(ctx context.Context, leagueID string, picks []model.DraftPick) error {
	args := db.Called(ctx, leagueID, picks)
	return args.Error(0)
}

func (db *DB) UpdatePick(ctx context.Context, id int64, pickSlot, comment *string) (*model.DraftPick, error) {
	args := db.Called(ctx, id, pickSlot, comment)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (db *DB) GetTeamOrder(ctx context.Context, leagueID string) ([]int, error) {
	args := db.Called(ctx, leagueID)

	var o []int
	if args.Get(0) != nil {
		o = args.Get(0).([]int)
	}
	return o, args.Error(1)
}

func (db *DB) SetTeamOrder(ctx context.Context, leagueID string, order []int) error {
	args := db.Called(ctx, leagueID, order)
	return args.Error(0)
}

func (db *DB) GetPredictions(ctx context.Context, leagueID string) ([]model.PickPrediction, error) {
	args := db.Called(ctx, leagueID)

	var p []model.PickPrediction
	if args.Get(0) != nil {
		p = args.Get(0).([]model.PickPrediction)
	}
	return p, args.Error(1)
}

func (db *DB) SavePrediction(ctx context.Context, p *model.PickPrediction) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeletePrediction(ctx context.Context, pickID int64, userID string) error {
	args := db.Called(ctx, pickID, userID)
	return args.Error(0)
}
