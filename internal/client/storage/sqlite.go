package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/mygaadi/mygaadi/internal/client/storage/migrations"
	"github.com/mygaadi/mygaadi/internal/common"
	"github.com/mygaadi/mygaadi/internal/dbx"
)

// SQLiteAdapter keeps snapshots in a local SQLite file. It is the "device
// local" backing store variant.
type SQLiteAdapter struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the local database at dsn and brings
// its schema up to date.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteAdapter, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating local store: %w", err)
	}
	return &SQLiteAdapter{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// DB exposes the underlying handle so session-scoped state (the notified-set
// store) can share one file.
func (a *SQLiteAdapter) DB() *sql.DB {
	return a.db
}

func (a *SQLiteAdapter) Load(ctx context.Context, userID, key string) ([]byte, error) {
	var payload []byte
	err := a.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE user_id = ? AND key = ?`, userID, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w: %w", key, common.ErrStorageRead, err)
	}
	return payload, nil
}

func (a *SQLiteAdapter) Save(ctx context.Context, userID, key string, payload []byte) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO snapshots (user_id, key, payload, updated_at) VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(user_id, key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, userID, key, payload)
	if err != nil {
		return fmt.Errorf("saving snapshot %s: %w", key, err)
	}
	return nil
}

func (a *SQLiteAdapter) Delete(ctx context.Context, userID, key string) error {
	_, err := a.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE user_id = ? AND key = ?`, userID, key)
	if err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", key, err)
	}
	return nil
}

// DeleteKeys removes the given keys in one transaction. Cross-key atomicity
// is a convenience of this local variant, not a contract of the Adapter.
func (a *SQLiteAdapter) DeleteKeys(ctx context.Context, userID string, keys []string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM snapshots WHERE user_id = ? AND key = ?`, userID, key); err != nil {
				return fmt.Errorf("deleting snapshot %s: %w", key, err)
			}
		}
		return nil
	})
}

func (a *SQLiteAdapter) Close() error {
	return a.db.Close()
}
