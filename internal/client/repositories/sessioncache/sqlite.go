package sessioncache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storedash/internal/client/api"
	"github.com/dmitrijs2005/storedash/internal/dbx"
)

// SQLiteRepository keeps the session in a single-row session_cache table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*Record, error) {
	var (
		userJSON        []byte
		rec             Record
		isAuthenticated int64
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT user_json, access_token, refresh_token, is_authenticated, expires_at
		FROM session_cache WHERE id = 1
	`).Scan(&userJSON, &rec.AccessToken, &rec.RefreshToken, &isAuthenticated, &rec.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session cache: %w", err)
	}

	rec.IsAuthenticated = isAuthenticated != 0
	if len(userJSON) > 0 {
		var u api.User
		if err := json.Unmarshal(userJSON, &u); err != nil {
			return nil, fmt.Errorf("failed to decode cached user: %w", err)
		}
		rec.User = &u
	}
	return &rec, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, rec Record) error {
	var userJSON []byte
	if rec.User != nil {
		var err error
		userJSON, err = json.Marshal(rec.User)
		if err != nil {
			return fmt.Errorf("failed to encode cached user: %w", err)
		}
	}

	// delete+insert in one transaction keeps the single-row invariant and
	// guarantees the record is never observed half-written
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_cache`); err != nil {
			return fmt.Errorf("failed to reset session cache: %w", err)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO session_cache (id, user_json, access_token, refresh_token, is_authenticated, expires_at)
			VALUES (1, ?, ?, ?, ?, ?)
		`, userJSON, rec.AccessToken, rec.RefreshToken, boolToInt(rec.IsAuthenticated), rec.ExpiresAt)
		if err != nil {
			return fmt.Errorf("failed to save session cache: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_cache`); err != nil {
		return fmt.Errorf("failed to clear session cache: %w", err)
	}
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
