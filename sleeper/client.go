package sleeper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cole-dav/sleeper-draft-tool/model"
	cache "github.com/patrickmn/go-cache"
)

const SleeperURL = "https://api.sleeper.app"

// The full player directory is ~5000 entries and changes slowly, so it
// is cached for hours rather than fetched per request.
const playerCacheTTL = 6 * time.Hour

const playerCacheKey = "players/nfl"

var (
	ErrLeagueNotFound = errors.New("league not found")
	ErrUserNotFound   = errors.New("user not found")
)

type Client interface {
	// GetUser looks up a sleeper user by username. This is the only
	// "login" the dashboard has.
	GetUser(username string) (*model.User, error)
	GetLeague(leagueID string) (*model.League, error)
	GetLeagueUsers(leagueID string) ([]model.User, error)
	GetRosters(leagueID string) ([]model.Roster, error)
	GetTradedPicks(leagueID string) ([]model.TradedPick, error)
	GetDrafts(leagueID string) ([]model.Draft, error)
	// LoadPlayers returns the full player directory keyed by player id,
	// served from a process-lifetime TTL cache.
	LoadPlayers() (map[string]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
	players    *cache.Cache
}

func New() (Client, error) {
	return newClient(SleeperURL), nil
}

func NewForTest(url string) Client {
	return newClient(url)
}

func newClient(url string) *client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		players: cache.New(playerCacheTTL, 10*time.Minute),
	}
}

func (c *client) GetUser(username string) (*model.User, error) {
	var parsed *sleeperUser
	if err := c.get(fmt.Sprintf("/v1/user/%s", username), &parsed); err != nil {
		return nil, err
	}
	// Sleeper returns a 200 with a "null" body for unknown usernames.
	if parsed == nil || parsed.UserID == "" {
		return nil, ErrUserNotFound
	}
	return parsed.toUser(""), nil
}

func (c *client) GetLeague(leagueID string) (*model.League, error) {
	var parsed *sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/league/%s", leagueID), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil || parsed.LeagueID == "" {
		return nil, ErrLeagueNotFound
	}
	return parsed.toLeague(), nil
}

func (c *client) GetLeagueUsers(leagueID string) ([]model.User, error) {
	var parsed []sleeperUser
	if err := c.get(fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		result = append(result, *u.toUser(leagueID))
	}
	return result, nil
}

func (c *client) GetRosters(leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.get(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		result = append(result, *r.toRoster(leagueID))
	}
	return result, nil
}

func (c *client) GetTradedPicks(leagueID string) ([]model.TradedPick, error) {
	var parsed []model.TradedPick
	if err := c.get(fmt.Sprintf("/v1/league/%s/traded_picks", leagueID), &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func (c *client) GetDrafts(leagueID string) ([]model.Draft, error) {
	var parsed []sleeperDraft
	if err := c.get(fmt.Sprintf("/v1/league/%s/drafts", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Draft, 0, len(parsed))
	for _, d := range parsed {
		result = append(result, *d.toDraft())
	}
	return result, nil
}

func (c *client) LoadPlayers() (map[string]model.Player, error) {
	if cached, found := c.players.Get(playerCacheKey); found {
		return cached.(map[string]model.Player), nil
	}

	var parsed map[string]sleeperPlayer
	if err := c.get("/v1/players/nfl", &parsed); err != nil {
		return nil, err
	}

	// Keep only players at the positions the needs engine tracks.
	result := make(map[string]model.Player, len(parsed))
	for id, p := range parsed {
		pos := model.ParsePosition(p.Position)
		if pos == model.POS_UNKNOWN {
			continue
		}
		result[id] = *p.toPlayer(id)
	}

	c.players.SetDefault(playerCacheKey, result)
	return result, nil
}

func (c *client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrLeagueNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
