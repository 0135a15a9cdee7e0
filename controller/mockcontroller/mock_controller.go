package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/mww/yahoo_sync/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) SyncAllUsers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) SyncUser(ctx context.Context, u *model.YahooUser) error {
	args := c.Called(ctx, u)
	return args.Error(0)
}

func (c *C) DiscoverLeagues(ctx context.Context, guid string) ([]model.League, error) {
	args := c.Called(ctx, guid)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *C) ImportLeague(ctx context.Context, guid, leagueKey string) (*model.League, error) {
	args := c.Called(ctx, guid, leagueKey)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) ListUserLeagues(ctx context.Context, guid string) ([]model.League, error) {
	args := c.Called(ctx, guid)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *C) GetStandings(ctx context.Context, leagueKey string) ([]model.Standing, error) {
	args := c.Called(ctx, leagueKey)

	var res []model.Standing
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Standing)
	}

	return res, args.Error(1)
}

func (c *C) GetMatchups(ctx context.Context, leagueKey string, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueKey, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}
