package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/mww/yahoo_sync/model"
	"github.com/mww/yahoo_sync/serialize"
)

var ErrLeagueNotFound = errors.New("league not found for user")

func (c *controller) ListUserLeagues(ctx context.Context, guid string) ([]model.League, error) {
	return c.db.ListUserLeagues(ctx, guid)
}

func (c *controller) GetStandings(ctx context.Context, leagueKey string) ([]model.Standing, error) {
	return c.db.GetStandings(ctx, leagueKey)
}

func (c *controller) GetMatchups(ctx context.Context, leagueKey string, week int) ([]model.Matchup, error) {
	return c.db.GetMatchups(ctx, leagueKey, week)
}

// DiscoverLeagues asks yahoo for the user's leagues without touching the
// database. It backs the signup flow, where the user picks which leagues
// to import, so nothing is persisted here.
func (c *controller) DiscoverLeagues(ctx context.Context, guid string) ([]model.League, error) {
	u, err := c.db.GetUser(ctx, guid)
	if err != nil {
		return nil, err
	}
	httpClient, err := c.httpClientForUser(ctx, u)
	if err != nil {
		return nil, err
	}

	currentYear := c.clock.Now().UTC().Year()

	discovered := c.discoverParallel(httpClient, currentYear)
	leagues := make([]model.League, 0, len(discovered))
	for _, d := range discovered {
		l := serialize.League(d.obj, d.gameCode, currentYear)
		if l.LeagueKey != "" {
			leagues = append(leagues, l)
		}
	}
	sortLeagues(leagues)
	return leagues, nil
}

// ImportLeague persists a single league the user picked during signup and
// runs a full sync of it right away, so the dashboard has data to show
// before the next periodic pass.
func (c *controller) ImportLeague(ctx context.Context, guid, leagueKey string) (*model.League, error) {
	u, err := c.db.GetUser(ctx, guid)
	if err != nil {
		return nil, err
	}
	httpClient, err := c.httpClientForUser(ctx, u)
	if err != nil {
		return nil, err
	}

	currentYear := c.clock.Now().UTC().Year()

	var league *model.League
	for _, d := range c.discoverParallel(httpClient, currentYear) {
		l := serialize.League(d.obj, d.gameCode, currentYear)
		if l.LeagueKey == leagueKey {
			league = &l
			break
		}
	}
	if league == nil {
		return nil, fmt.Errorf("%w: %s", ErrLeagueNotFound, leagueKey)
	}

	if err := c.db.UpsertLeague(ctx, guid, league); err != nil {
		return nil, fmt.Errorf("error saving league %s: %w", leagueKey, err)
	}
	m := &model.Membership{GUID: guid, LeagueKey: leagueKey}
	if err := c.db.UpsertMembership(ctx, m); err != nil {
		return nil, fmt.Errorf("error saving membership for %s: %w", leagueKey, err)
	}

	if !league.IsFinished {
		c.syncStandings(ctx, httpClient, leagueKey)
		c.syncMatchups(ctx, httpClient, league)
		c.syncRosters(ctx, httpClient, guid, league)
	}

	return league, nil
}

// discoverParallel issues the game/season combinations concurrently, one
// goroutine per combination. The periodic pass stays sequential and
// throttled, but here a person is waiting on the response, so latency
// wins over rate-limit headroom. A failed combination contributes nothing
// rather than failing the whole discovery.
func (c *controller) discoverParallel(httpClient *http.Client, currentYear int) []discoveredLeague {
	var mu sync.Mutex
	var wg sync.WaitGroup
	results := make([]discoveredLeague, 0, 8)

	for _, gameCode := range model.GameCodes {
		for _, season := range []int{currentYear, currentYear - 1} {
			gameCode, season := gameCode, season
			wg.Add(1)
			go func() {
				defer wg.Done()
				objs, err := c.yahoo.GetLeagues(httpClient, gameCode, season)
				if err != nil {
					log.Printf("discovery: no %s leagues for season %d: %v", gameCode, season, err)
					return
				}
				mu.Lock()
				for _, o := range objs {
					results = append(results, discoveredLeague{obj: o, gameCode: gameCode})
				}
				mu.Unlock()
			}()
		}
	}
	wg.Wait()

	return results
}

func sortLeagues(leagues []model.League) {
	slices.SortFunc(leagues, func(a, b model.League) int {
		if a.Season != b.Season {
			return b.Season - a.Season
		}
		return strings.Compare(a.Name, b.Name)
	})
}
