package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/mww/yahoo_sync/model"
	"github.com/mww/yahoo_sync/platforms/yahoo"
	"github.com/mww/yahoo_sync/serialize"
	"golang.org/x/oauth2"
)

func (c *controller) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	// The pass context is cancelled when shutdown fires, so a pass that is
	// mid-way through a long user list stops between users instead of
	// running out the clock on the process's grace period.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-shutdown
		cancel()
	}()

	for {
		if err := c.SyncAllUsers(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("sync pass failed: %v", err)
			c.health.RecordError(err)
		}

		// Sleep in one second increments so a shutdown is observed
		// promptly instead of at the next interval boundary.
		for slept := time.Duration(0); slept < frequency; slept += time.Second {
			select {
			case <-ctx.Done():
				return
			case <-c.clock.After(time.Second):
			}
		}
	}
}

func (c *controller) SyncAllUsers(ctx context.Context) error {
	users, err := c.db.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("error listing users for sync: %w", err)
	}

	log.Printf("syncing %d yahoo users", len(users))
	for i := range users {
		if err := ctx.Err(); err != nil {
			log.Printf("sync pass stopped after %d of %d users", i, len(users))
			return err
		}
		c.syncOneUser(ctx, &users[i])
	}
	return nil
}

// syncOneUser wraps SyncUser with a panic boundary so a crash for one user
// never takes down the pass for the rest.
func (c *controller) syncOneUser(ctx context.Context, u *model.YahooUser) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic syncing user %s: %v", u.GUID, r)
			log.Printf("%v", err)
			c.health.RecordError(err)
		}
	}()

	if err := c.SyncUser(ctx, u); err != nil {
		log.Printf("error syncing user %s: %v", u.GUID, err)
		c.health.RecordError(err)
	}
}

type discoveredLeague struct {
	obj      yahoo.Object
	gameCode string
}

func (c *controller) SyncUser(ctx context.Context, u *model.YahooUser) error {
	log.Printf("syncing data for user %s", u.GUID)

	// A credential that can't be refreshed skips this user only.
	httpClient, err := c.httpClientForUser(ctx, u)
	if err != nil {
		return fmt.Errorf("error getting http client for user %s: %w", u.GUID, err)
	}
	c.health.SetOAuthStatus("ok")

	currentYear := c.clock.Now().UTC().Year()

	// Discovery walks every game code for the current and prior seasons.
	// The prior season matters for games like the NBA whose season starts
	// in the previous calendar year. A miss on one combination is normal
	// (most users don't play every game) and doesn't stop the rest.
	discovered := make([]discoveredLeague, 0, 4)
	for _, gameCode := range model.GameCodes {
		for _, season := range []int{currentYear, currentYear - 1} {
			c.throttle()
			objs, err := c.yahoo.GetLeagues(httpClient, gameCode, season)
			if err != nil {
				log.Printf("no %s leagues for user %s season %d: %v", gameCode, u.GUID, season, err)
				continue
			}
			for _, o := range objs {
				discovered = append(discovered, discoveredLeague{obj: o, gameCode: gameCode})
			}
		}
	}
	log.Printf("found %d leagues for user %s", len(discovered), u.GUID)

	// Persist every league and the user's membership in it. Finished
	// leagues keep their metadata current but skip the expensive
	// standings/matchup/roster fetches.
	active := make([]model.League, 0, len(discovered))
	skipped := 0
	for _, d := range discovered {
		l := serialize.League(d.obj, d.gameCode, currentYear)
		if l.LeagueKey == "" {
			log.Printf("skipping league with no key for user %s", u.GUID)
			continue
		}
		if err := c.db.UpsertLeague(ctx, u.GUID, &l); err != nil {
			log.Printf("error upserting league %s: %v", l.LeagueKey, err)
			continue
		}
		if err := c.db.UpsertMembership(ctx, &model.Membership{GUID: u.GUID, LeagueKey: l.LeagueKey}); err != nil {
			log.Printf("error upserting membership for %s: %v", l.LeagueKey, err)
		}

		if l.IsFinished {
			skipped++
			continue
		}
		active = append(active, l)
	}
	if skipped > 0 {
		log.Printf("skipping %d finished leagues for user %s", skipped, u.GUID)
	}

	for _, l := range active {
		c.syncStandings(ctx, httpClient, l.LeagueKey)
	}
	for _, l := range active {
		c.syncMatchups(ctx, httpClient, &l)
	}
	for _, l := range active {
		c.syncRosters(ctx, httpClient, u.GUID, &l)
	}

	// The watermark is written even when sub-steps failed, otherwise a
	// single flaky league keeps this user perpetually first in line.
	if err := c.db.UpdateUserSyncTime(ctx, u.GUID); err != nil {
		return fmt.Errorf("error updating sync time for user %s: %w", u.GUID, err)
	}
	c.health.MarkSync(c.clock.Now().UTC())
	log.Printf("sync complete for user %s", u.GUID)
	return nil
}

func (c *controller) syncStandings(ctx context.Context, httpClient *http.Client, leagueKey string) {
	c.throttle()
	teams, err := c.yahoo.GetStandings(httpClient, leagueKey)
	if err != nil {
		log.Printf("error fetching standings for league %s: %v", leagueKey, err)
		c.health.RecordError(err)
		return
	}

	standings := serialize.Standings(objectsAsAny(teams))
	if err := c.db.ReplaceStandings(ctx, leagueKey, standings); err != nil {
		log.Printf("error saving standings for league %s: %v", leagueKey, err)
		c.health.RecordError(err)
		return
	}
	c.health.RecordSuccess()
	log.Printf("synced standings for league %s", leagueKey)
}

func (c *controller) syncMatchups(ctx context.Context, httpClient *http.Client, l *model.League) {
	weeks := syncWeeks(l.CurrentWeek)
	if len(weeks) == 0 {
		log.Printf("league %s has no current week, skipping matchups", l.LeagueKey)
		return
	}

	for _, week := range weeks {
		c.throttle()
		fellBack := false
		sb, err := c.yahoo.GetScoreboard(httpClient, l.LeagueKey, week)
		if err != nil {
			// If the single week query isn't available, pull the default
			// scoreboard and filter by week number instead.
			log.Printf("error fetching week %d scoreboard for league %s, retrying without week: %v", week, l.LeagueKey, err)
			c.throttle()
			fellBack = true
			sb, err = c.yahoo.GetScoreboard(httpClient, l.LeagueKey, 0)
			if err != nil {
				log.Printf("error fetching scoreboard for league %s: %v", l.LeagueKey, err)
				c.health.RecordError(err)
				continue
			}
		}

		matchups := serialize.Matchups(sb, week)
		if fellBack && len(matchups) == 0 {
			// The no-week scoreboard only covers the current scoring
			// period, so an older week can be absent from it. Keep
			// whatever is already stored rather than replacing it with
			// an empty set.
			log.Printf("week %d missing from scoreboard for league %s, keeping stored matchups", week, l.LeagueKey)
			c.health.RecordError(fmt.Errorf("week %d unavailable for league %s", week, l.LeagueKey))
			continue
		}
		if err := c.db.ReplaceMatchups(ctx, l.LeagueKey, week, matchups); err != nil {
			log.Printf("error saving week %d matchups for league %s: %v", week, l.LeagueKey, err)
			c.health.RecordError(err)
			continue
		}
		c.health.RecordSuccess()
		log.Printf("synced %d matchups for league %s week %d", len(matchups), l.LeagueKey, week)
	}
}

// syncRosters fetches every team's roster in the league, not just the
// user's own team. The dashboard shows all of them. The team listing also
// resolves which team the user owns, filling in the membership row.
func (c *controller) syncRosters(ctx context.Context, httpClient *http.Client, guid string, l *model.League) {
	c.throttle()
	teams, err := c.yahoo.GetTeams(httpClient, l.LeagueKey)
	if err != nil {
		log.Printf("error fetching teams for league %s: %v", l.LeagueKey, err)
		c.health.RecordError(err)
		return
	}

	for _, team := range teams {
		teamKey := serialize.Str(team, "team_key", "")
		if teamKey == "" {
			continue
		}
		teamName := serialize.Str(team, "name", "")

		if serialize.TeamOwnedBy(team, guid) {
			m := &model.Membership{
				GUID:      guid,
				LeagueKey: l.LeagueKey,
				TeamKey:   &teamKey,
				TeamName:  &teamName,
			}
			if err := c.db.UpsertMembership(ctx, m); err != nil {
				log.Printf("error recording owned team %s: %v", teamKey, err)
			}
		}

		c.throttle()
		obj, err := c.yahoo.GetRoster(httpClient, teamKey)
		if err != nil {
			log.Printf("error fetching roster for team %s: %v", teamKey, err)
			c.health.RecordError(err)
			continue
		}

		roster := serialize.Roster(obj, teamKey, teamName)
		if err := c.db.ReplaceRoster(ctx, l.LeagueKey, &roster); err != nil {
			log.Printf("error saving roster for team %s: %v", teamKey, err)
			c.health.RecordError(err)
			continue
		}
		c.health.RecordSuccess()
		log.Printf("synced roster for team %s", teamKey)
	}
}

// syncWeeks bounds matchup fetches to the current week and the one before
// it, so a sync never replays a whole season's history.
func syncWeeks(currentWeek *int) []int {
	if currentWeek == nil || *currentWeek <= 0 {
		return nil
	}
	if *currentWeek == 1 {
		return []int{1}
	}
	return []int{*currentWeek, *currentWeek - 1}
}

// httpClientForUser refreshes the user's oauth token and returns a client
// carrying it. We must refresh manually rather than letting
// oauth2.Config.Client do it lazily: the library refreshes in the
// background but never hands the rotated refresh token back, and yahoo
// rotates it on every refresh. A rotated token is persisted immediately so
// a crash mid-pass doesn't strand the user with a dead credential.
func (c *controller) httpClientForUser(ctx context.Context, u *model.YahooUser) (*http.Client, error) {
	t := &oauth2.Token{RefreshToken: u.RefreshToken}
	src := c.yahooConfig.TokenSource(ctx, t)

	fresh, err := src.Token()
	if err != nil {
		c.health.SetOAuthStatus("refresh_failed")
		return nil, fmt.Errorf("error refreshing token: %w", err)
	}

	if fresh.RefreshToken != "" && fresh.RefreshToken != u.RefreshToken {
		log.Printf("refresh token rotated for user %s, persisting", u.GUID)
		u.RefreshToken = fresh.RefreshToken
		if err := c.db.SaveUser(ctx, u); err != nil {
			return nil, fmt.Errorf("error saving rotated token: %w", err)
		}
	}

	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(fresh)), nil
}

// throttle spaces calls to yahoo out to stay under their rate limits.
func (c *controller) throttle() {
	if c.apiDelay > 0 {
		c.clock.Sleep(c.apiDelay)
	}
}

func objectsAsAny(objs []yahoo.Object) []any {
	res := make([]any, len(objs))
	for i, o := range objs {
		res[i] = o
	}
	return res
}
