package mockdb

import (
	"context"

	"github.com/mww/yahoo_sync/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListUsers(ctx context.Context) ([]model.YahooUser, error) {
	args := db.Called(ctx)

	var u []model.YahooUser
	if args.Get(0) != nil {
		u = args.Get(0).([]model.YahooUser)
	}
	return u, args.Error(1)
}

func (db *DB) GetUser(ctx context.Context, guid string) (*model.YahooUser, error) {
	args := db.Called(ctx, guid)

	var u *model.YahooUser
	if args.Get(0) != nil {
		u = args.Get(0).(*model.YahooUser)
	}
	return u, args.Error(1)
}

func (db *DB) SaveUser(ctx context.Context, u *model.YahooUser) error {
	args := db.Called(ctx, u)
	return args.Error(0)
}

func (db *DB) UpdateUserSyncTime(ctx context.Context, guid string) error {
	args := db.Called(ctx, guid)
	return args.Error(0)
}

func (db *DB) UpsertLeague(ctx context.Context, guid string, l *model.League) error {
	args := db.Called(ctx, guid, l)
	return args.Error(0)
}

func (db *DB) UpsertMembership(ctx context.Context, m *model.Membership) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) GetMemberships(ctx context.Context, guid string) ([]model.Membership, error) {
	args := db.Called(ctx, guid)

	var m []model.Membership
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Membership)
	}
	return m, args.Error(1)
}

func (db *DB) ListUserLeagues(ctx context.Context, guid string) ([]model.League, error) {
	args := db.Called(ctx, guid)

	var l []model.League
	if args.Get(0) != nil {
		l = args.Get(0).([]model.League)
	}
	return l, args.Error(1)
}

func (db *DB) ReplaceStandings(ctx context.Context, leagueKey string, standings []model.Standing) error {
	args := db.Called(ctx, leagueKey, standings)
	return args.Error(0)
}

func (db *DB) GetStandings(ctx context.Context, leagueKey string) ([]model.Standing, error) {
	args := db.Called(ctx, leagueKey)

	var s []model.Standing
	if args.Get(0) != nil {
		s = args.Get(0).([]model.Standing)
	}
	return s, args.Error(1)
}

func (db *DB) ReplaceMatchups(ctx context.Context, leagueKey string, week int, matchups []model.Matchup) error {
	args := db.Called(ctx, leagueKey, week, matchups)
	return args.Error(0)
}

func (db *DB) GetMatchups(ctx context.Context, leagueKey string, week int) ([]model.Matchup, error) {
	args := db.Called(ctx, leagueKey, week)

	var m []model.Matchup
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Matchup)
	}
	return m, args.Error(1)
}

func (db *DB) ReplaceRoster(ctx context.Context, leagueKey string, roster *model.Roster) error {
	args := db.Called(ctx, leagueKey, roster)
	return args.Error(0)
}

func (db *DB) GetRoster(ctx context.Context, teamKey string) (*model.Roster, error) {
	args := db.Called(ctx, teamKey)

	var r *model.Roster
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Roster)
	}
	return r, args.Error(1)
}
