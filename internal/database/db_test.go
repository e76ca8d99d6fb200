package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN_SetsParseTimeAndUTC(t *testing.T) {
	dsn := DSN("edu", "pw", "db", "3306", "edusynth")
	assert.Contains(t, dsn, "edu:pw@tcp(db:3306)/edusynth")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestDSN_NoPassword(t *testing.T) {
	dsn := DSN("edu", "", "db", "3306", "edusynth")
	assert.Contains(t, dsn, "edu@tcp(db:3306)/edusynth")
}

func TestMigrate_WrapsGooseError(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, dir string) error {
		gotDir = dir
		return errors.New("boom")
	}

	err := Migrate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate: boom")
	assert.Equal(t, ".", gotDir)
}

func TestMigrate_Success(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })
	gooseUp = func(context.Context, *sql.DB, string) error { return nil }

	require.NoError(t, Migrate(context.Background(), nil))
}
