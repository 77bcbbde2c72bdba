package tokens

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Fyandono/project-maintenance-system/internal/dbx"
)

const accessTokenKey = "access_token"

// OpenDatabase opens (creating if needed) the local session database and
// ensures the schema exists. The driver must be registered by the caller
// (blank import of modernc.org/sqlite).
func OpenDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing session schema: %w", err)
	}
	return db, nil
}

// SQLiteRepository stores the credential token in a key/value session table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, accessTokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session token: %w", err)
	}
	return value, nil
}

func (r *SQLiteRepository) Replace(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM session WHERE key = ?`, accessTokenKey); err != nil {
			return fmt.Errorf("failed to clear previous token: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO session (key, value) VALUES (?, ?)`, accessTokenKey, token); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM session WHERE key = ?`, accessTokenKey); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
