// Package fantasycalc fetches dynasty market values from the
// FantasyCalc API. Values feed the team needs engine; when the API is
// unavailable the engine degrades to uniform player weights, so every
// error here is survivable by callers.
package fantasycalc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	cache "github.com/patrickmn/go-cache"
)

const FantasyCalcURL = "https://api.fantasycalc.com"

// Market values move slowly relative to request traffic.
const valuesCacheTTL = 1 * time.Hour

type Client interface {
	// GetValues returns market values keyed by sleeper player id for the
	// given scoring context. Responses are cached per parameter set.
	GetValues(params ValueParams) (map[string]float64, error)
}

// ValueParams is the scoring context a valuation is parameterized by.
type ValueParams struct {
	Dynasty  bool
	NumQBs   int
	NumTeams int
	PPR      float64
}

func (p ValueParams) cacheKey() string {
	return fmt.Sprintf("values:%t:%d:%d:%g", p.Dynasty, p.NumQBs, p.NumTeams, p.PPR)
}

type client struct {
	url        string
	httpClient *http.Client
	values     *cache.Cache
}

func New() (Client, error) {
	return newClient(FantasyCalcURL), nil
}

func NewForTest(url string) Client {
	return newClient(url)
}

func newClient(apiURL string) *client {
	return &client{
		url: apiURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		values: cache.New(valuesCacheTTL, 10*time.Minute),
	}
}

type fcEntry struct {
	Player struct {
		SleeperID string `json:"sleeperId"`
	} `json:"player"`
	Value float64 `json:"value"`
}

func (c *client) GetValues(params ValueParams) (map[string]float64, error) {
	if cached, found := c.values.Get(params.cacheKey()); found {
		return cached.(map[string]float64), nil
	}

	q := url.Values{}
	q.Set("isDynasty", fmt.Sprintf("%t", params.Dynasty))
	q.Set("numQbs", fmt.Sprintf("%d", params.NumQBs))
	q.Set("numTeams", fmt.Sprintf("%d", params.NumTeams))
	q.Set("ppr", fmt.Sprintf("%g", params.PPR))

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/values/current?%s", c.url, q.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed []fcEntry
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing response from fantasycalc: %w", err)
	}

	result := make(map[string]float64, len(parsed))
	for _, e := range parsed {
		if e.Player.SleeperID == "" {
			continue
		}
		result[e.Player.SleeperID] = e.Value
	}

	c.values.SetDefault(params.cacheKey(), result)
	return result, nil
}
