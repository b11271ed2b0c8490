package controller

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/cole-dav/sleeper-draft-tool/model"
)

// SyncLeague mirrors a league from sleeper: league metadata, users and
// rosters are upserted, then the pick ledger is rebuilt wholesale.
//
// Every input is fetched and the new ledger fully staged in memory
// before the first write, so a failed fetch never leaves a half-synced
// league behind. Optional inputs (traded picks, drafts) degrade to
// empty rather than failing the sync.
func (c *controller) SyncLeague(ctx context.Context, leagueID string) error {
	league, err := c.sleeper.GetLeague(leagueID)
	if err != nil {
		return fmt.Errorf("error fetching league %s: %w", leagueID, err)
	}

	users, err := c.sleeper.GetLeagueUsers(leagueID)
	if err != nil {
		return fmt.Errorf("error fetching users for league %s: %w", leagueID, err)
	}

	rosters, err := c.sleeper.GetRosters(leagueID)
	if err != nil {
		return fmt.Errorf("error fetching rosters for league %s: %w", leagueID, err)
	}

	traded, err := c.sleeper.GetTradedPicks(leagueID)
	if err != nil {
		log.Printf("no traded pick data for league %s, keeping picks with original owners: %v", leagueID, err)
		traded = nil
	}

	drafts, err := c.sleeper.GetDrafts(leagueID)
	if err != nil {
		log.Printf("no draft data for league %s, skipping pick slot resolution: %v", leagueID, err)
		drafts = nil
	}

	previous, err := c.db.GetPicks(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error loading existing picks for league %s: %w", leagueID, err)
	}

	picks := buildPickLedger(ledgerInput{
		leagueID:      leagueID,
		currentSeason: c.resolveSeason(league.Season),
		rounds:        model.ResolveRoundCount(league.Settings),
		rosters:       rosters,
		traded:        traded,
		drafts:        drafts,
	})
	carryForward(picks, previous)

	if err := c.db.SaveLeague(ctx, league); err != nil {
		return fmt.Errorf("error saving league %s: %w", leagueID, err)
	}
	if err := c.db.SaveUsers(ctx, leagueID, users); err != nil {
		return fmt.Errorf("error saving users for league %s: %w", leagueID, err)
	}
	if err := c.db.SaveRosters(ctx, leagueID, rosters); err != nil {
		return fmt.Errorf("error saving rosters for league %s: %w", leagueID, err)
	}
	if err := c.db.ReplacePicks(ctx, leagueID, picks); err != nil {
		return fmt.Errorf("error replacing picks for league %s: %w", leagueID, err)
	}

	log.Printf("synced league %s: %d rosters, %d picks", leagueID, len(rosters), len(picks))
	return nil
}

// resolveSeason parses the league's season label, falling back to the
// current calendar year when sleeper sends something unusable.
func (c *controller) resolveSeason(season string) int {
	year, err := strconv.Atoi(season)
	if err != nil || year <= 0 {
		fallback := c.clock.Now().UTC().Year()
		log.Printf("unparsable season %q, using %d", season, fallback)
		return fallback
	}
	return year
}
