package controller

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cole-dav/sleeper-draft-tool/db"
	"github.com/cole-dav/sleeper-draft-tool/model"
	"github.com/cole-dav/sleeper-draft-tool/platforms/fantasycalc"
)

var ErrEmptyTeamOrder = errors.New("team order must not be empty")

func (c *controller) GetLeagueData(ctx context.Context, leagueID string) (*LeagueData, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	rosters, err := c.db.GetRosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading rosters for league %s: %w", leagueID, err)
	}
	users, err := c.db.GetUsers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading users for league %s: %w", leagueID, err)
	}
	picks, err := c.db.GetPicks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading picks for league %s: %w", leagueID, err)
	}
	order, err := c.db.GetTeamOrder(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading team order for league %s: %w", leagueID, err)
	}
	predictions, err := c.db.GetPredictions(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading predictions for league %s: %w", leagueID, err)
	}

	// Player directory and market values are best-effort. Either one
	// missing lowers the fidelity of the needs scores instead of
	// failing the read.
	players, err := c.sleeper.LoadPlayers()
	if err != nil {
		log.Printf("player directory unavailable, team needs degrade to placeholders: %v", err)
		players = nil
	}

	var values map[string]float64
	if players != nil {
		values, err = c.values.GetValues(fantasycalc.ValueParams{
			Dynasty:  true,
			NumQBs:   1,
			NumTeams: league.TotalRosters,
			PPR:      1,
		})
		if err != nil {
			log.Printf("market values unavailable, team needs degrade to depth counts: %v", err)
			values = nil
		}
	}

	return &LeagueData{
		League:          league,
		Rosters:         rosters,
		Users:           users,
		Picks:           picks,
		TeamNeeds:       calculateTeamNeeds(rosters, players, values),
		TeamOrder:       order,
		TeamPlayers:     resolveTeamPlayers(rosters, players),
		PickPredictions: predictions,
	}, nil
}

// resolveTeamPlayers maps each roster to its tracked-position players,
// for roster display. Nil when the directory isn't loaded.
func resolveTeamPlayers(rosters []model.Roster, players map[string]model.Player) map[int][]model.Player {
	if len(players) == 0 {
		return nil
	}

	result := make(map[int][]model.Player, len(rosters))
	for _, r := range rosters {
		resolved := make([]model.Player, 0, len(r.Players))
		for _, id := range r.Players {
			if p, found := players[id]; found {
				resolved = append(resolved, p)
			}
		}
		result[r.RosterID] = resolved
	}
	return result
}

func (c *controller) UpdatePick(ctx context.Context, id int64, pickSlot, comment *string) (*model.DraftPick, error) {
	return c.db.UpdatePick(ctx, id, pickSlot, comment)
}

func (c *controller) SetTeamOrder(ctx context.Context, leagueID string, order []int) error {
	if len(order) == 0 {
		return ErrEmptyTeamOrder
	}
	return c.db.SetTeamOrder(ctx, leagueID, order)
}

func (c *controller) SavePrediction(ctx context.Context, pickID int64, userID, comment string) error {
	// Make sure the pick exists so the handler can 404 on bad ids.
	if _, err := c.db.GetPick(ctx, pickID); err != nil {
		return err
	}

	if comment == "" {
		err := c.db.DeletePrediction(ctx, pickID, userID)
		if errors.Is(err, db.ErrPredictionNotFound) {
			return nil
		}
		return err
	}

	return c.db.SavePrediction(ctx, &model.PickPrediction{
		PickID:  pickID,
		UserID:  userID,
		Comment: comment,
	})
}

func (c *controller) GetSleeperUser(ctx context.Context, username string) (*model.User, error) {
	return c.sleeper.GetUser(username)
}
