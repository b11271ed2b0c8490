package mockcontroller

import (
	"context"

	"github.com/cole-dav/sleeper-draft-tool/controller"
	"github.com/cole-dav/sleeper-draft-tool/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) SyncLeague(ctx context.Context, leagueID string) error {
	args := c.Called(ctx, leagueID)
	return args.Error(0)
}

func (c *C) GetLeagueData(ctx context.Context, leagueID string) (*controller.LeagueData, error) {
	args := c.Called(ctx, leagueID)

	var d *controller.LeagueData
	if args.Get(0) != nil {
		d = args.Get(0).(*controller.LeagueData)
	}
	return d, args.Error(1)
}

func (c *C) UpdatePick(ctx context.Context, id int64, pickSlot, comment *string) (*model.DraftPick, error) {
	args := c.Called(ctx, id, pickSlot, comment)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (c *C) SetTeamOrder(ctx context.Context, leagueID string, order []int) error {
	args := c.Called(ctx, leagueID, order)
	return args.Error(0)
}

func (c *C) SavePrediction(ctx context.Context, pickID int64, userID, comment string) error {
	args := c.Called(ctx, pickID, userID, comment)
	return args.Error(0)
}

func (c *C) GetSleeperUser(ctx context.Context, username string) (*model.User, error) {
	args := c.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}
