package sleeper

import (
	"encoding/json"
	"strconv"

	"github.com/cole-dav/sleeper-draft-tool/model"
)

type sleeperUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

func (u *sleeperUser) toUser(leagueID string) *model.User {
	name := u.DisplayName
	if name == "" {
		name = "Unknown"
	}
	return &model.User{
		UserID:      u.UserID,
		LeagueID:    leagueID,
		DisplayName: name,
		Avatar:      u.Avatar,
	}
}

type sleeperLeague struct {
	LeagueID     string          `json:"league_id"`
	Name         string          `json:"name"`
	TotalRosters int             `json:"total_rosters"`
	Season       string          `json:"season"`
	Avatar       string          `json:"avatar"`
	Settings     json.RawMessage `json:"settings"`
}

func (l *sleeperLeague) toLeague() *model.League {
	return &model.League{
		LeagueID:     l.LeagueID,
		Name:         l.Name,
		TotalRosters: l.TotalRosters,
		Season:       l.Season,
		Avatar:       l.Avatar,
		Settings:     l.Settings,
	}
}

type sleeperRoster struct {
	RosterID int             `json:"roster_id"`
	OwnerID  string          `json:"owner_id"`
	Players  []string        `json:"players"`
	Starters []string        `json:"starters"`
	Settings json.RawMessage `json:"settings"`
}

func (r *sleeperRoster) toRoster(leagueID string) *model.Roster {
	return &model.Roster{
		LeagueID: leagueID,
		RosterID: r.RosterID,
		OwnerID:  r.OwnerID,
		Players:  r.Players,
		Starters: r.Starters,
		Settings: r.Settings,
	}
}

type sleeperDraft struct {
	DraftID      string         `json:"draft_id"`
	Season       string         `json:"season"`
	Type         string         `json:"type"`
	SlotToRoster map[string]int `json:"slot_to_roster_id"`
}

func (d *sleeperDraft) toDraft() *model.Draft {
	draftType := model.DraftLinear
	if d.Type == "snake" {
		draftType = model.DraftSnake
	}

	// slot_to_roster_id arrives keyed by the slot as a string. Slots
	// that don't parse as positive ints are dropped rather than failing
	// the whole draft.
	slots := make(map[int]int, len(d.SlotToRoster))
	for k, rosterID := range d.SlotToRoster {
		slot, err := strconv.Atoi(k)
		if err != nil || slot < 1 {
			continue
		}
		slots[slot] = rosterID
	}

	return &model.Draft{
		DraftID:      d.DraftID,
		Season:       d.Season,
		Type:         draftType,
		SlotToRoster: slots,
	}
}

type sleeperPlayer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

func (p *sleeperPlayer) toPlayer(id string) *model.Player {
	return &model.Player{
		ID:        id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      p.Team,
	}
}
