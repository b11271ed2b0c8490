package model

// Player is one entry in the Sleeper player directory. The directory
// is large and slow-changing, so only the fields the dashboard needs
// are kept.
type Player struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Position  Position `json:"position"`
	Team      string   `json:"team,omitempty"`
}

func (p *Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}
