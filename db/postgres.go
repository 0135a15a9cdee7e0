package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/yahoo_sync/crypt"
	"github.com/mww/yahoo_sync/model"
)

var (
	ErrUserNotFound error = errors.New("user not found")
)

func New(ctx context.Context, connString string, codec *crypt.Codec, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, codec: codec, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	codec *crypt.Codec
	clock clock.Clock
}

func (db *postgresDB) ListUsers(ctx context.Context) ([]model.YahooUser, error) {
	const query = `SELECT guid, logto_sub, refresh_token, last_sync, created
					FROM yahoo_users ORDER BY created`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	results := make([]model.YahooUser, 0, 8)
	for rows.Next() {
		u, err := db.scanUser(rows)
		if err != nil {
			// A token that can't be decrypted means that user can't be
			// synced, but it shouldn't take down everyone else's sync.
			log.Printf("skipping user: %v", err)
			continue
		}
		results = append(results, *u)
	}

	return results, nil
}

func (db *postgresDB) GetUser(ctx context.Context, guid string) (*model.YahooUser, error) {
	const query = `SELECT guid, logto_sub, refresh_token, last_sync, created
					FROM yahoo_users WHERE guid=@guid`

	args := pgx.NamedArgs{
		"guid": guid,
	}
	u, err := db.scanUser(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (db *postgresDB) SaveUser(ctx context.Context, u *model.YahooUser) error {
	if u == nil {
		return errors.New("SaveUser - user is nil")
	}
	encrypted, err := db.codec.Encrypt(u.RefreshToken)
	if err != nil {
		return fmt.Errorf("error encrypting refresh token for %s: %w", u.GUID, err)
	}

	const query = `INSERT INTO yahoo_users (guid, logto_sub, refresh_token)
					VALUES (@guid, @logtoSub, @refreshToken)
					ON CONFLICT (guid) DO UPDATE
					SET logto_sub=EXCLUDED.logto_sub,
						refresh_token=EXCLUDED.refresh_token`

	args := pgx.NamedArgs{
		"guid":         u.GUID,
		"logtoSub":     nullString(u.LogtoSub),
		"refreshToken": encrypted,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving user %s: %w", u.GUID, err)
	}
	return nil
}

func (db *postgresDB) UpdateUserSyncTime(ctx context.Context, guid string) error {
	const query = `UPDATE yahoo_users SET last_sync=@now WHERE guid=@guid`

	args := pgx.NamedArgs{
		"guid": guid,
		"now":  db.now(),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating sync time for %s: %w", guid, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (db *postgresDB) scanUser(row pgx.Row) (*model.YahooUser, error) {
	var result model.YahooUser
	var logtoSub sql.NullString
	var encrypted string
	var lastSync, created pgtype.Timestamptz
	err := row.Scan(
		&result.GUID,
		&logtoSub,
		&encrypted,
		&lastSync,
		&created)
	if err != nil {
		return nil, err
	}

	token, err := db.codec.Decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("error decrypting refresh token for %s: %w", result.GUID, err)
	}
	result.RefreshToken = token

	if logtoSub.Valid {
		result.LogtoSub = &logtoSub.String
	}
	if lastSync.Valid {
		t := lastSync.Time
		result.LastSync = &t
	}
	result.Created = created.Time

	return &result, nil
}

func (db *postgresDB) now() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
