package yahoo

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mww/yahoo_sync/platforms/yahoo/internal"
	"github.com/mww/yahoo_sync/serialize"
)

const YahooURL = "https://fantasysports.yahooapis.com"

// Object is a normalized yahoo API entity. Field access goes through the
// serialize package, which tolerates missing and oddly typed values.
type Object = map[string]any

type Client interface {
	// GetLeagues returns the logged-in user's leagues for one game code
	// and season. The user is identified by the oauth token carried in
	// httpClient.
	GetLeagues(httpClient *http.Client, gameCode string, season int) ([]Object, error)
	GetStandings(httpClient *http.Client, leagueKey string) ([]Object, error)
	// GetScoreboard fetches the matchups for a week. A week of zero or
	// less asks for the league's current scoring period.
	GetScoreboard(httpClient *http.Client, leagueKey string, week int) (Object, error)
	GetTeams(httpClient *http.Client, leagueKey string) ([]Object, error)
	GetRoster(httpClient *http.Client, teamKey string) (Object, error)
}

type client struct {
	url string
}

func New() (Client, error) {
	return &client{url: YahooURL}, nil
}

func NewForTest(url string) Client {
	return &client{url: url}
}

func (c *client) GetLeagues(httpClient *http.Client, gameCode string, season int) ([]Object, error) {
	content, err := c.yahooRequest(httpClient,
		"/fantasy/v2/users;use_login=1/games;game_codes=%s;seasons=%d/leagues", gameCode, season)
	if err != nil {
		return nil, err
	}

	leagues := make([]Object, 0, 4)
	for _, user := range serialize.AsList(serialize.Dig(content, "fantasy_content", "users")) {
		for _, game := range serialize.AsList(serialize.Get(user, "games")) {
			for _, l := range serialize.AsList(serialize.Get(game, "leagues")) {
				if obj, ok := l.(Object); ok {
					leagues = append(leagues, obj)
				}
			}
		}
	}
	return leagues, nil
}

func (c *client) GetStandings(httpClient *http.Client, leagueKey string) ([]Object, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/%s/standings", leagueKey)
	if err != nil {
		return nil, err
	}

	raw := serialize.Dig(content, "fantasy_content", "league", "standings", "teams")
	teams := make([]Object, 0, 12)
	for _, t := range serialize.AsList(raw) {
		if obj, ok := t.(Object); ok {
			teams = append(teams, obj)
		}
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("no standings found for league %s", leagueKey)
	}
	return teams, nil
}

func (c *client) GetScoreboard(httpClient *http.Client, leagueKey string, week int) (Object, error) {
	path := fmt.Sprintf("/fantasy/v2/league/%s/scoreboard", leagueKey)
	if week > 0 {
		path = fmt.Sprintf("%s;week=%d", path, week)
	}
	content, err := c.yahooRequest(httpClient, "%s", path)
	if err != nil {
		return nil, err
	}

	sb, ok := serialize.Dig(content, "fantasy_content", "league", "scoreboard").(Object)
	if !ok {
		return nil, fmt.Errorf("no scoreboard found for league %s", leagueKey)
	}
	return sb, nil
}

func (c *client) GetTeams(httpClient *http.Client, leagueKey string) ([]Object, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/%s/teams", leagueKey)
	if err != nil {
		return nil, err
	}

	raw := serialize.Dig(content, "fantasy_content", "league", "teams")
	teams := make([]Object, 0, 12)
	for _, t := range serialize.AsList(raw) {
		if obj, ok := t.(Object); ok {
			teams = append(teams, obj)
		}
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("no teams found for league %s", leagueKey)
	}
	return teams, nil
}

func (c *client) GetRoster(httpClient *http.Client, teamKey string) (Object, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/team/%s/roster", teamKey)
	if err != nil {
		return nil, err
	}

	roster, ok := serialize.Dig(content, "fantasy_content", "team", "roster").(Object)
	if !ok {
		return nil, fmt.Errorf("no roster found for team %s", teamKey)
	}
	return roster, nil
}

func (c *client) yahooRequest(httpClient *http.Client, path string, args ...any) (any, error) {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s?format=json", c.url, p), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating yahoo http request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending yahoo http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from yahoo: %d", resp.StatusCode)
	}

	var res any
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("error parsing response from yahoo: %w", err)
	}
	return internal.Normalize(res), nil
}
