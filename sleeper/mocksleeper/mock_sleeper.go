package mocksleeper

import (
	"github.com/cole-dav/sleeper-draft-tool/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetUser(username string) (*model.User, error) {
	args := c.Called(username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (c *Client) GetLeague(leagueID string) (*model.League, error) {
	args := c.Called(leagueID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *Client) GetLeagueUsers(leagueID string) ([]model.User, error) {
	args := c.Called(leagueID)

	var u []model.User
	if args.Get(0) != nil {
		u = args.Get(0).([]model.User)
	}
	return u, args.Error(1)
}

func (c *Client) GetRosters(leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)

	var r []model.Roster
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Roster)
	}
	return r, args.Error(1)
}

func (c *Client) GetTradedPicks(leagueID string) ([]model.TradedPick, error) {
	args := c.Called(leagueID)

	var t []model.TradedPick
	if args.Get(0) != nil {
		t = args.Get(0).([]model.TradedPick)
	}
	return t, args.Error(1)
}

func (c *Client) GetDrafts(leagueID string) ([]model.Draft, error) {
	args := c.Called(leagueID)

	var d []model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).([]model.Draft)
	}
	return d, args.Error(1)
}

func (c *Client) LoadPlayers() (map[string]model.Player, error) {
	args := c.Called()

	var p map[string]model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(map[string]model.Player)
	}
	return p, args.Error(1)
}
