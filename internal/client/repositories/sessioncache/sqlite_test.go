package sessioncache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storedash/internal/client/api"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessioncache?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`DROP TABLE IF EXISTS session_cache`)
	require.NoError(t, err)
	_, err = db.Exec(`
CREATE TABLE session_cache (
    id               INTEGER PRIMARY KEY CHECK (id = 1),
    user_json        BLOB,
    access_token     TEXT    NOT NULL,
    refresh_token    TEXT    NOT NULL,
    is_authenticated INTEGER NOT NULL,
    expires_at       INTEGER NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func sampleRecord() Record {
	return Record{
		User:            &api.User{ID: "u1", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		AccessToken:     "access-1",
		RefreshToken:    "refresh-1",
		IsAuthenticated: true,
		ExpiresAt:       1756500000000,
	}
}

func TestSQLiteRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	rec := sampleRecord()
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestSQLiteRepository_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Save(ctx, sampleRecord()))

	second := sampleRecord()
	second.AccessToken = "access-2"
	second.User = nil
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "access-2", got.AccessToken)
	assert.Nil(t, got.User)
}

func TestSQLiteRepository_LoadEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Save(ctx, sampleRecord()))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// clearing twice is fine
	require.NoError(t, repo.Clear(ctx))
}

func TestRunMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", "file:migrations?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Save(ctx, sampleRecord()))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
}
