package sleeper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/cole-dav/sleeper-draft-tool/model"
	"github.com/cole-dav/sleeper-draft-tool/testutils"
)

func TestLoadPlayers_success(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	expected := map[string]model.Player{
		"6904":  {FirstName: "Jalen", LastName: "Hurts", Position: model.POS_QB, Team: "PHI"},
		"4984":  {FirstName: "Josh", LastName: "Allen", Position: model.POS_QB, Team: "BUF"},
		"9509":  {FirstName: "Bijan", LastName: "Robinson", Position: model.POS_RB, Team: "ATL"},
		"8155":  {FirstName: "Breece", LastName: "Hall", Position: model.POS_RB, Team: "NYJ"},
		"6786":  {FirstName: "CeeDee", LastName: "Lamb", Position: model.POS_WR, Team: "DAL"},
		"2374":  {FirstName: "Tyler", LastName: "Lockett", Position: model.POS_WR, Team: "SEA"},
		"5844":  {FirstName: "T.J.", LastName: "Hockenson", Position: model.POS_TE, Team: "MIN"},
		"11596": {FirstName: "Ben", LastName: "Sinnott", Position: model.POS_TE, Team: "WAS"},
	}

	players, err := c.LoadPlayers()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	// The directory fixture also contains a kicker, which is not a
	// tracked position and must be dropped.
	if len(players) != len(expected) {
		t.Fatalf("wrong number of players, expected %d, got %d", len(expected), len(players))
	}

	for id, p := range players {
		e, found := expected[id]
		if !found {
			t.Fatalf("unexpected player in the response %s", id)
		}

		if p.ID != id {
			t.Errorf("expected player id %s, got %s", id, p.ID)
		}
		if p.FirstName != e.FirstName {
			t.Errorf("expected first name %s, got %s", e.FirstName, p.FirstName)
		}
		if p.LastName != e.LastName {
			t.Errorf("expected last name %s, got %s", e.LastName, p.LastName)
		}
		if p.Position != e.Position {
			t.Errorf("expected position %v, got %v", e.Position, p.Position)
		}
		if p.Team != e.Team {
			t.Errorf("expected team %v, got %v", e.Team, p.Team)
		}
	}
}

func TestLoadPlayers_cached(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	first, err := c.LoadPlayers()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	second, err := c.LoadPlayers()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	if got := fakeSleeper.PlayerRequests.Load(); got != 1 {
		t.Errorf("expected 1 request to the player directory, got %d", got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached directory does not match the fetched one")
	}
}

func TestLoadPlayers_httpError(t *testing.T) {
	fakeSleeper := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL)

	players, err := c.LoadPlayers()
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if players != nil {
		t.Fatalf("players should have been nil")
	}
}

func TestGetUser(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	tests := []struct {
		username string
		expected *model.User
		err      error
	}{
		{username: "dynasty_dan", expected: &model.User{UserID: "342397313982976000", DisplayName: "dynasty_dan", Avatar: "av1"}},
		{username: "nosuchuser", expected: nil, err: ErrUserNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.username, func(t *testing.T) {
			u, err := c.GetUser(tc.username)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected err to be: '%v', got '%v' instead", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("error was not nil, was %v", err)
			}
			if !reflect.DeepEqual(u, tc.expected) {
				t.Errorf("expected user %v, got %v", tc.expected, u)
			}
		})
	}
}

func TestGetLeague(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	l, err := c.GetLeague(testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}
	if l.LeagueID != testutils.TestLeagueID {
		t.Errorf("expected league id %s, got %s", testutils.TestLeagueID, l.LeagueID)
	}
	if l.Name != "Footclan Dynasty" {
		t.Errorf("expected league name 'Footclan Dynasty', got '%s'", l.Name)
	}
	if l.TotalRosters != 4 {
		t.Errorf("expected 4 rosters, got %d", l.TotalRosters)
	}
	if l.Season != "2025" {
		t.Errorf("expected season 2025, got %s", l.Season)
	}
	if rounds := model.ResolveRoundCount(l.Settings); rounds != 3 {
		t.Errorf("expected 3 draft rounds from settings, got %d", rounds)
	}

	if _, err := c.GetLeague("1234"); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got %v", err)
	}
}

func TestGetLeagueUsers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	users, err := c.GetLeagueUsers(testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}

	expected := []model.User{
		{UserID: "342397313982976000", LeagueID: testutils.TestLeagueID, DisplayName: "dynasty_dan", Avatar: "av1"},
		{UserID: "342397313982976001", LeagueID: testutils.TestLeagueID, DisplayName: "pick_hoarder", Avatar: "av2"},
		{UserID: "342397313982976002", LeagueID: testutils.TestLeagueID, DisplayName: "rebuild_szn"},
		{UserID: "342397313982976003", LeagueID: testutils.TestLeagueID, DisplayName: "taco", Avatar: "av4"},
	}
	if !reflect.DeepEqual(users, expected) {
		t.Errorf("expected users to be: %v, but was: %v", expected, users)
	}
}

func TestGetRosters(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	rosters, err := c.GetRosters(testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}
	if len(rosters) != 4 {
		t.Fatalf("expected 4 rosters, got %d", len(rosters))
	}

	r1 := rosters[0]
	if r1.RosterID != 1 {
		t.Errorf("expected roster id 1, got %d", r1.RosterID)
	}
	if r1.LeagueID != testutils.TestLeagueID {
		t.Errorf("expected league id %s, got %s", testutils.TestLeagueID, r1.LeagueID)
	}
	if r1.OwnerID != "342397313982976000" {
		t.Errorf("unexpected owner id: %s", r1.OwnerID)
	}
	if !reflect.DeepEqual(r1.Players, []string{"6904", "9509", "6786", "5844"}) {
		t.Errorf("unexpected players list: %v", r1.Players)
	}
	if rec := model.ResolveRecord(r1.Settings); rec.String() != "8-5-0/1500.50" {
		t.Errorf("unexpected record: %s", rec.String())
	}

	// Rosters with no player data come through with a nil list.
	r4 := rosters[3]
	if r4.Players != nil {
		t.Errorf("expected nil players for roster 4, got %v", r4.Players)
	}
}

func TestGetTradedPicks(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	picks, err := c.GetTradedPicks(testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}

	expected := []model.TradedPick{
		{Season: "2025", Round: 1, RosterID: 3, OwnerID: 2, PreviousOwnerID: 3},
		{Season: "2026", Round: 2, RosterID: 1, OwnerID: 4, PreviousOwnerID: 2},
	}
	if !reflect.DeepEqual(picks, expected) {
		t.Errorf("expected picks to be: %v, but was: %v", expected, picks)
	}
}

func TestGetDrafts(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	drafts, err := c.GetDrafts(testutils.TestLeagueID)
	if err != nil {
		t.Fatalf("error was not nil, was %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}

	d := drafts[0]
	if d.Season != "2025" {
		t.Errorf("expected season 2025, got %s", d.Season)
	}
	if d.Type != model.DraftSnake {
		t.Errorf("expected a snake draft, got %v", d.Type)
	}
	expectedSlots := map[int]int{1: 2, 2: 4, 3: 1, 4: 3}
	if !reflect.DeepEqual(d.SlotToRoster, expectedSlots) {
		t.Errorf("expected slots %v, got %v", expectedSlots, d.SlotToRoster)
	}

	// Sleeper leaves slot_to_roster_id null until the draft order is set.
	if len(drafts[1].SlotToRoster) != 0 {
		t.Errorf("expected no slots for the 2026 draft, got %v", drafts[1].SlotToRoster)
	}
}
