package controller

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/cole-dav/sleeper-draft-tool/model"
)

func makeRosters(n int) []model.Roster {
	rosters := make([]model.Roster, 0, n)
	for i := 1; i <= n; i++ {
		rosters = append(rosters, model.Roster{LeagueID: "L1", RosterID: i})
	}
	return rosters
}

func TestBuildPickLedger_fullCoverage(t *testing.T) {
	picks := buildPickLedger(ledgerInput{
		leagueID:      "L1",
		currentSeason: 2025,
		rounds:        4,
		rosters:       makeRosters(10),
	})

	if len(picks) != 4*futureSeasons*10 {
		t.Fatalf("expected %d picks, got %d", 4*futureSeasons*10, len(picks))
	}

	// Exactly one pick per (season, round, roster), owner = original.
	seen := make(map[string]bool)
	for _, p := range picks {
		if seen[p.Key()] {
			t.Errorf("duplicate pick for key %s", p.Key())
		}
		seen[p.Key()] = true

		if p.OwnerID != p.RosterID {
			t.Errorf("pick %s: expected owner %d, got %d", p.Key(), p.RosterID, p.OwnerID)
		}
		if p.PreviousOwnerID != nil {
			t.Errorf("pick %s: expected nil previous owner", p.Key())
		}
	}
	for year := 2025; year < 2025+futureSeasons; year++ {
		for round := 1; round <= 4; round++ {
			for roster := 1; roster <= 10; roster++ {
				key := model.PickKey(fmt.Sprintf("%d", year), round, roster)
				if !seen[key] {
					t.Errorf("missing pick for key %s", key)
				}
			}
		}
	}
}

func TestBuildPickLedger_trades(t *testing.T) {
	picks := buildPickLedger(ledgerInput{
		leagueID:      "L1",
		currentSeason: 2025,
		rounds:        3,
		rosters:       makeRosters(10),
		traded: []model.TradedPick{
			{Season: "2025", Round: 1, RosterID: 3, OwnerID: 7, PreviousOwnerID: 3},
		},
	})

	for _, p := range picks {
		if p.Season == "2025" && p.Round == 1 && p.RosterID == 3 {
			if p.OwnerID != 7 {
				t.Errorf("expected traded pick owner 7, got %d", p.OwnerID)
			}
			if p.PreviousOwnerID == nil || *p.PreviousOwnerID != 3 {
				t.Errorf("expected previous owner 3, got %v", p.PreviousOwnerID)
			}
			continue
		}
		if p.OwnerID != p.RosterID {
			t.Errorf("pick %s should be untraded, owner was %d", p.Key(), p.OwnerID)
		}
	}
}

func TestBuildPickLedger_duplicateTradesFirstWins(t *testing.T) {
	in := ledgerInput{
		leagueID:      "L1",
		currentSeason: 2025,
		rounds:        1,
		rosters:       makeRosters(4),
		traded: []model.TradedPick{
			{Season: "2025", Round: 1, RosterID: 2, OwnerID: 3, PreviousOwnerID: 2},
			{Season: "2025", Round: 1, RosterID: 2, OwnerID: 4, PreviousOwnerID: 2},
		},
	}

	first := buildPickLedger(in)
	second := buildPickLedger(in)

	for _, p := range first {
		if p.RosterID == 2 && p.OwnerID != 3 {
			t.Errorf("expected first trade record to win, owner was %d", p.OwnerID)
		}
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("ledger build is not deterministic")
	}
}

func TestBuildPickLedger_snakeSlots(t *testing.T) {
	rosters := makeRosters(10)
	slots := make(map[int]int, 10)
	for i := 1; i <= 10; i++ {
		slots[i] = 11 - i // round 1 order: 10, 9, ..., 1
	}

	picks := buildPickLedger(ledgerInput{
		leagueID:      "L1",
		currentSeason: 2025,
		rounds:        3,
		rosters:       rosters,
		drafts: []model.Draft{
			{DraftID: "d1", Season: "2025", Type: model.DraftSnake, SlotToRoster: slots},
		},
	})

	slotOf := func(season string, round, roster int) string {
		for _, p := range picks {
			if p.Season == season && p.Round == round && p.RosterID == roster {
				return p.PickSlot
			}
		}
		t.Fatalf("pick %s/%d/%d not found", season, round, roster)
		return ""
	}

	// Roster 10 picks first in round 1, last in round 2, first again in round 3.
	if got := slotOf("2025", 1, 10); got != "1.01" {
		t.Errorf("round 1: expected slot 1.01, got %s", got)
	}
	if got := slotOf("2025", 2, 10); got != "2.10" {
		t.Errorf("round 2: expected slot 2.10, got %s", got)
	}
	if got := slotOf("2025", 3, 10); got != "3.01" {
		t.Errorf("round 3: expected slot 3.01, got %s", got)
	}

	// And the inverse for roster 1.
	if got := slotOf("2025", 1, 1); got != "1.10" {
		t.Errorf("round 1: expected slot 1.10, got %s", got)
	}
	if got := slotOf("2025", 2, 1); got != "2.01" {
		t.Errorf("round 2: expected slot 2.01, got %s", got)
	}

	// No draft data for later seasons, so no slots there.
	if got := slotOf("2026", 1, 10); got != "" {
		t.Errorf("2026 should have no slot, got %s", got)
	}
}

func TestBuildPickLedger_linearSlots(t *testing.T) {
	picks := buildPickLedger(ledgerInput{
		leagueID:      "L1",
		currentSeason: 2025,
		rounds:        2,
		rosters:       makeRosters(3),
		drafts: []model.Draft{
			{DraftID: "d1", Season: "2025", Type: model.DraftLinear, SlotToRoster: map[int]int{1: 2, 2: 3, 3: 1}},
		},
	})

	expected := map[string]string{
		model.PickKey("2025", 1, 2): "1.01",
		model.PickKey("2025", 1, 3): "1.02",
		model.PickKey("2025", 1, 1): "1.03",
		model.PickKey("2025", 2, 2): "2.01",
		model.PickKey("2025", 2, 3): "2.02",
		model.PickKey("2025", 2, 1): "2.03",
	}
	for _, p := range picks {
		if p.PickSlot != expected[p.Key()] {
			t.Errorf("pick %s: expected slot %q, got %q", p.Key(), expected[p.Key()], p.PickSlot)
		}
	}
}

func TestBuildPickLedger_incompleteSlotMap(t *testing.T) {
	tests := map[string]map[int]int{
		"missing roster":   {1: 1, 2: 2, 3: 3},
		"duplicate roster": {1: 1, 2: 2, 3: 3, 4: 3},
		"unknown roster":   {1: 1, 2: 2, 3: 3, 4: 99},
		"gap in slots":     {1: 1, 2: 2, 3: 3, 5: 4},
		"empty":            {},
	}

	for name, slots := range tests {
		t.Run(name, func(t *testing.T) {
			picks := buildPickLedger(ledgerInput{
				leagueID:      "L1",
				currentSeason: 2025,
				rounds:        1,
				rosters:       makeRosters(4),
				drafts: []model.Draft{
					{DraftID: "d1", Season: "2025", Type: model.DraftSnake, SlotToRoster: slots},
				},
			})

			for _, p := range picks {
				if p.PickSlot != "" {
					t.Errorf("pick %s: expected no slot, got %q", p.Key(), p.PickSlot)
				}
			}
		})
	}
}

func TestCarryForward(t *testing.T) {
	picks := buildPickLedger(ledgerInput{
		leagueID:      "L1",
		currentSeason: 2025,
		rounds:        3,
		rosters:       makeRosters(4),
	})

	previous := []model.DraftPick{
		{LeagueID: "L1", Season: "2025", Round: 1, RosterID: 2, PickSlot: "1.04", Comment: "taking a QB"},
		{LeagueID: "L1", Season: "2026", Round: 3, RosterID: 1, Comment: "throwaway"},
		// A key that no longer exists in the new generation.
		{LeagueID: "L1", Season: "2020", Round: 1, RosterID: 1, Comment: "stale"},
	}

	carryForward(picks, previous)

	carried := 0
	for _, p := range picks {
		switch p.Key() {
		case model.PickKey("2025", 1, 2):
			if p.PickSlot != "1.04" || p.Comment != "taking a QB" {
				t.Errorf("manual fields not carried: %+v", p)
			}
			carried++
		case model.PickKey("2026", 3, 1):
			if p.Comment != "throwaway" {
				t.Errorf("comment not carried: %+v", p)
			}
			carried++
		default:
			if p.PickSlot != "" || p.Comment != "" {
				t.Errorf("unexpected carried fields on %s: %+v", p.Key(), p)
			}
		}
	}
	if carried != 2 {
		t.Errorf("expected 2 picks with carried fields, got %d", carried)
	}
}

func TestCarryForward_manualSlotBeatsDerived(t *testing.T) {
	picks := buildPickLedger(ledgerInput{
		leagueID:      "L1",
		currentSeason: 2025,
		rounds:        1,
		rosters:       makeRosters(2),
		drafts: []model.Draft{
			{DraftID: "d1", Season: "2025", Type: model.DraftLinear, SlotToRoster: map[int]int{1: 1, 2: 2}},
		},
	})

	previous := []model.DraftPick{
		{LeagueID: "L1", Season: "2025", Round: 1, RosterID: 1, PickSlot: "Early 1st"},
	}
	carryForward(picks, previous)

	for _, p := range picks {
		if p.RosterID == 1 && p.PickSlot != "Early 1st" {
			t.Errorf("expected manual slot override to survive, got %q", p.PickSlot)
		}
		if p.RosterID == 2 && p.PickSlot != "1.02" {
			t.Errorf("expected derived slot 1.02, got %q", p.PickSlot)
		}
	}
}
