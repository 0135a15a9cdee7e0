package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/yahoo_sync/db"
	"github.com/mww/yahoo_sync/model"
	"github.com/mww/yahoo_sync/platforms/yahoo"
	"golang.org/x/oauth2"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// RunPeriodicSync drives the background sync loop until shutdown is
	// closed. A full pass over every user runs immediately and then once
	// per frequency.
	RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
	// SyncAllUsers runs a single pass. A failure for one user is logged
	// and does not stop the others.
	SyncAllUsers(ctx context.Context) error
	SyncUser(ctx context.Context, u *model.YahooUser) error

	// DiscoverLeagues lists the user's leagues straight from yahoo
	// without persisting anything. Unlike the periodic pass it fans the
	// game/season combinations out in parallel because a person is
	// waiting on the answer.
	DiscoverLeagues(ctx context.Context, guid string) ([]model.League, error)
	// ImportLeague fetches and persists one league's full data set
	// synchronously so it is available immediately after linking.
	ImportLeague(ctx context.Context, guid, leagueKey string) (*model.League, error)

	ListUserLeagues(ctx context.Context, guid string) ([]model.League, error)
	GetStandings(ctx context.Context, leagueKey string) ([]model.Standing, error)
	GetMatchups(ctx context.Context, leagueKey string, week int) ([]model.Matchup, error)
}

type controller struct {
	clock       clock.Clock
	db          db.DB
	yahoo       yahoo.Client
	yahooConfig *oauth2.Config
	health      *model.Health
	apiDelay    time.Duration
}

func New(clock clock.Clock, db db.DB, yahoo yahoo.Client, yahooConfig *oauth2.Config, health *model.Health, apiDelay time.Duration) (C, error) {
	c := &controller{
		clock:       clock,
		db:          db,
		yahoo:       yahoo,
		yahooConfig: yahooConfig,
		health:      health,
		apiDelay:    apiDelay,
	}
	return c, nil
}
