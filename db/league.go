package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mww/yahoo_sync/model"
)

var (
	ErrLeagueNotFound error = errors.New("league not found")
	ErrRosterNotFound error = errors.New("roster not found")
)

func (db *postgresDB) UpsertLeague(ctx context.Context, guid string, l *model.League) error {
	if l == nil {
		return errors.New("UpsertLeague - league is nil")
	}
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("error marshaling league %s: %w", l.LeagueKey, err)
	}

	const query = `INSERT INTO yahoo_leagues (league_key, guid, name, game_code, season, data, updated)
					VALUES (@leagueKey, @guid, @name, @gameCode, @season, @data, @updated)
					ON CONFLICT (league_key) DO UPDATE
					SET name=EXCLUDED.name,
						data=EXCLUDED.data,
						updated=EXCLUDED.updated`

	args := pgx.NamedArgs{
		"leagueKey": l.LeagueKey,
		"guid":      guid,
		"name":      l.Name,
		"gameCode":  l.GameCode,
		"season":    l.Season,
		"data":      data,
		"updated":   db.now(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error upserting league %s: %w", l.LeagueKey, err)
	}
	return nil
}

func (db *postgresDB) UpsertMembership(ctx context.Context, m *model.Membership) error {
	if m == nil {
		return errors.New("UpsertMembership - membership is nil")
	}

	// COALESCE keeps a team resolved on an earlier pass when a later pass
	// writes nulls.
	const query = `INSERT INTO yahoo_user_leagues (guid, league_key, team_key, team_name)
					VALUES (@guid, @leagueKey, @teamKey, @teamName)
					ON CONFLICT (guid, league_key) DO UPDATE
					SET team_key=COALESCE(EXCLUDED.team_key, yahoo_user_leagues.team_key),
						team_name=COALESCE(EXCLUDED.team_name, yahoo_user_leagues.team_name)`

	args := pgx.NamedArgs{
		"guid":      m.GUID,
		"leagueKey": m.LeagueKey,
		"teamKey":   nullString(m.TeamKey),
		"teamName":  nullString(m.TeamName),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error upserting membership %s/%s: %w", m.GUID, m.LeagueKey, err)
	}
	return nil
}

func (db *postgresDB) GetMemberships(ctx context.Context, guid string) ([]model.Membership, error) {
	const query = `SELECT guid, league_key, team_key, team_name
					FROM yahoo_user_leagues WHERE guid=@guid ORDER BY league_key`

	args := pgx.NamedArgs{
		"guid": guid,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing memberships for %s: %w", guid, err)
	}

	results := make([]model.Membership, 0, 4)
	for rows.Next() {
		var m model.Membership
		var teamKey, teamName sql.NullString
		if err := rows.Scan(&m.GUID, &m.LeagueKey, &teamKey, &teamName); err != nil {
			return nil, fmt.Errorf("error scanning membership: %w", err)
		}
		m.TeamKey = stringPtr(teamKey)
		m.TeamName = stringPtr(teamName)
		results = append(results, m)
	}

	return results, nil
}

func (db *postgresDB) ListUserLeagues(ctx context.Context, guid string) ([]model.League, error) {
	const query = `SELECT l.data
					FROM yahoo_leagues l
					JOIN yahoo_user_leagues ul ON l.league_key = ul.league_key
					WHERE ul.guid=@guid
					ORDER BY l.season DESC, l.name`

	args := pgx.NamedArgs{
		"guid": guid,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues for %s: %w", guid, err)
	}

	results := make([]model.League, 0, 4)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("error scanning league: %w", err)
		}
		var l model.League
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("error unmarshaling league: %w", err)
		}
		results = append(results, l)
	}

	return results, nil
}

func (db *postgresDB) ReplaceStandings(ctx context.Context, leagueKey string, standings []model.Standing) error {
	data, err := json.Marshal(standings)
	if err != nil {
		return fmt.Errorf("error marshaling standings for %s: %w", leagueKey, err)
	}

	const query = `INSERT INTO yahoo_standings (league_key, data, updated)
					VALUES (@leagueKey, @data, @updated)
					ON CONFLICT (league_key) DO UPDATE
					SET data=EXCLUDED.data,
						updated=EXCLUDED.updated`

	args := pgx.NamedArgs{
		"leagueKey": leagueKey,
		"data":      data,
		"updated":   db.now(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error replacing standings for %s: %w", leagueKey, err)
	}
	return nil
}

func (db *postgresDB) GetStandings(ctx context.Context, leagueKey string) ([]model.Standing, error) {
	const query = `SELECT data FROM yahoo_standings WHERE league_key=@leagueKey`

	args := pgx.NamedArgs{
		"leagueKey": leagueKey,
	}
	var data []byte
	if err := db.pool.QueryRow(ctx, query, args).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error reading standings for %s: %w", leagueKey, err)
	}

	var results []model.Standing
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("error unmarshaling standings for %s: %w", leagueKey, err)
	}
	return results, nil
}

func (db *postgresDB) ReplaceMatchups(ctx context.Context, leagueKey string, week int, matchups []model.Matchup) error {
	data, err := json.Marshal(matchups)
	if err != nil {
		return fmt.Errorf("error marshaling matchups for %s week %d: %w", leagueKey, week, err)
	}

	const query = `INSERT INTO yahoo_matchups (league_key, week, data, updated)
					VALUES (@leagueKey, @week, @data, @updated)
					ON CONFLICT (league_key, week) DO UPDATE
					SET data=EXCLUDED.data,
						updated=EXCLUDED.updated`

	args := pgx.NamedArgs{
		"leagueKey": leagueKey,
		"week":      week,
		"data":      data,
		"updated":   db.now(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error replacing matchups for %s week %d: %w", leagueKey, week, err)
	}
	return nil
}

func (db *postgresDB) GetMatchups(ctx context.Context, leagueKey string, week int) ([]model.Matchup, error) {
	const query = `SELECT data FROM yahoo_matchups WHERE league_key=@leagueKey AND week=@week`

	args := pgx.NamedArgs{
		"leagueKey": leagueKey,
		"week":      week,
	}
	var data []byte
	if err := db.pool.QueryRow(ctx, query, args).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error reading matchups for %s week %d: %w", leagueKey, week, err)
	}

	var results []model.Matchup
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("error unmarshaling matchups for %s week %d: %w", leagueKey, week, err)
	}
	return results, nil
}

func (db *postgresDB) ReplaceRoster(ctx context.Context, leagueKey string, roster *model.Roster) error {
	if roster == nil {
		return errors.New("ReplaceRoster - roster is nil")
	}
	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("error marshaling roster for %s: %w", roster.TeamKey, err)
	}

	const query = `INSERT INTO yahoo_rosters (team_key, league_key, data, updated)
					VALUES (@teamKey, @leagueKey, @data, @updated)
					ON CONFLICT (team_key) DO UPDATE
					SET data=EXCLUDED.data,
						updated=EXCLUDED.updated`

	args := pgx.NamedArgs{
		"teamKey":   roster.TeamKey,
		"leagueKey": leagueKey,
		"data":      data,
		"updated":   db.now(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error replacing roster for %s: %w", roster.TeamKey, err)
	}
	return nil
}

func (db *postgresDB) GetRoster(ctx context.Context, teamKey string) (*model.Roster, error) {
	const query = `SELECT data FROM yahoo_rosters WHERE team_key=@teamKey`

	args := pgx.NamedArgs{
		"teamKey": teamKey,
	}
	var data []byte
	if err := db.pool.QueryRow(ctx, query, args).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRosterNotFound
		}
		return nil, fmt.Errorf("error reading roster for %s: %w", teamKey, err)
	}

	var result model.Roster
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling roster for %s: %w", teamKey, err)
	}
	return &result, nil
}
