package controller

import (
	"fmt"

	"github.com/cole-dav/sleeper-draft-tool/model"
)

// The ledger always covers the current season plus this many more.
const futureSeasons = 3

type ledgerInput struct {
	leagueID      string
	currentSeason int
	rounds        int
	rosters       []model.Roster
	traded        []model.TradedPick
	drafts        []model.Draft
}

// buildPickLedger produces the complete pick set for a league: one pick
// per (season, round, roster) across futureSeasons seasons, with trades
// applied and round slots resolved where a usable draft order exists.
func buildPickLedger(in ledgerInput) []model.DraftPick {
	trades := indexTrades(in.traded)
	orders := resolveSeasonOrders(in.drafts, in.rosters)

	picks := make([]model.DraftPick, 0, futureSeasons*in.rounds*len(in.rosters))
	for year := in.currentSeason; year < in.currentSeason+futureSeasons; year++ {
		season := fmt.Sprintf("%d", year)
		for round := 1; round <= in.rounds; round++ {
			for _, roster := range in.rosters {
				p := model.DraftPick{
					LeagueID: in.leagueID,
					Season:   season,
					Round:    round,
					RosterID: roster.RosterID,
					OwnerID:  roster.RosterID,
				}

				if t, found := trades[model.PickKey(season, round, roster.RosterID)]; found {
					p.OwnerID = t.OwnerID
					prev := t.PreviousOwnerID
					p.PreviousOwnerID = &prev
				}

				if order, found := orders[season]; found {
					p.PickSlot = formatPickSlot(round, order.slotFor(round, roster.RosterID))
				}

				picks = append(picks, p)
			}
		}
	}

	return picks
}

// indexTrades keys trade records by (season, round, original roster).
// Upstream duplicates are possible; the first record wins so repeated
// syncs stay deterministic.
func indexTrades(traded []model.TradedPick) map[string]model.TradedPick {
	trades := make(map[string]model.TradedPick, len(traded))
	for _, t := range traded {
		key := model.PickKey(t.Season, t.Round, t.RosterID)
		if _, exists := trades[key]; !exists {
			trades[key] = t
		}
	}
	return trades
}

// draftOrder is the resolved round 1 ordering for one season.
type draftOrder struct {
	round1 []int // roster ids in round 1 pick order
	snake  bool
}

// slotFor returns the zero-based position of a roster within the given
// round's order, or -1 if the roster isn't in the order.
func (o *draftOrder) slotFor(round, rosterID int) int {
	for i, id := range o.round1 {
		if id == rosterID {
			if o.snake && round%2 == 0 {
				return len(o.round1) - 1 - i
			}
			return i
		}
	}
	return -1
}

// resolveSeasonOrders derives a canonical round 1 order per season from
// the league's draft records. A draft only counts when its slot map
// covers every roster exactly once; otherwise slot display for that
// season is skipped entirely.
func resolveSeasonOrders(drafts []model.Draft, rosters []model.Roster) map[string]*draftOrder {
	known := make(map[int]bool, len(rosters))
	for _, r := range rosters {
		known[r.RosterID] = true
	}

	orders := make(map[string]*draftOrder)
	for _, d := range drafts {
		if _, exists := orders[d.Season]; exists {
			continue
		}
		if order := orderFromDraft(&d, known); order != nil {
			orders[d.Season] = order
		}
	}
	return orders
}

func orderFromDraft(d *model.Draft, known map[int]bool) *draftOrder {
	if len(d.SlotToRoster) != len(known) || len(known) == 0 {
		return nil
	}

	round1 := make([]int, len(known))
	seen := make(map[int]bool, len(known))
	for slot := 1; slot <= len(known); slot++ {
		rosterID, found := d.SlotToRoster[slot]
		if !found || !known[rosterID] || seen[rosterID] {
			return nil
		}
		round1[slot-1] = rosterID
		seen[rosterID] = true
	}

	return &draftOrder{
		round1: round1,
		snake:  d.Type == model.DraftSnake,
	}
}

func formatPickSlot(round, position int) string {
	if position < 0 {
		return ""
	}
	return fmt.Sprintf("%d.%02d", round, position+1)
}

// carryForward re-applies manual fields from a previous ledger
// generation onto the freshly built picks, matched by synthetic key.
// The rebuild is wholesale, so without this every user override would
// vanish on each sync.
func carryForward(picks []model.DraftPick, previous []model.DraftPick) {
	if len(previous) == 0 {
		return
	}

	old := make(map[string]*model.DraftPick, len(previous))
	for i := range previous {
		old[previous[i].Key()] = &previous[i]
	}

	for i := range picks {
		prev, found := old[picks[i].Key()]
		if !found {
			continue
		}
		// A manually set slot beats the derived one.
		if prev.PickSlot != "" {
			picks[i].PickSlot = prev.PickSlot
		}
		if prev.Comment != "" {
			picks[i].Comment = prev.Comment
		}
	}
}
