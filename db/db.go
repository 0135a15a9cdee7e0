package db

import (
	"context"

	"github.com/mww/yahoo_sync/model"
)

type DB interface {
	// ListUsers returns every user with their refresh token decrypted.
	// Users whose token cannot be decrypted are logged and skipped rather
	// than failing the whole listing.
	ListUsers(ctx context.Context) ([]model.YahooUser, error)
	GetUser(ctx context.Context, guid string) (*model.YahooUser, error)
	// SaveUser encrypts the refresh token before writing it.
	SaveUser(ctx context.Context, u *model.YahooUser) error
	UpdateUserSyncTime(ctx context.Context, guid string) error

	UpsertLeague(ctx context.Context, guid string, l *model.League) error
	// UpsertMembership never clears a previously resolved team. Writing a
	// nil team_key or team_name leaves the stored value alone.
	UpsertMembership(ctx context.Context, m *model.Membership) error
	GetMemberships(ctx context.Context, guid string) ([]model.Membership, error)
	ListUserLeagues(ctx context.Context, guid string) ([]model.League, error)

	// The standings, matchup, and roster sets are replaced whole on every
	// sync pass.
	ReplaceStandings(ctx context.Context, leagueKey string, standings []model.Standing) error
	GetStandings(ctx context.Context, leagueKey string) ([]model.Standing, error)
	ReplaceMatchups(ctx context.Context, leagueKey string, week int, matchups []model.Matchup) error
	GetMatchups(ctx context.Context, leagueKey string, week int) ([]model.Matchup, error)
	ReplaceRoster(ctx context.Context, leagueKey string, roster *model.Roster) error
	GetRoster(ctx context.Context, teamKey string) (*model.Roster, error)
}
