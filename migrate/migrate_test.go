package migrate_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceMoe/aerich/migrate"
)

func pinned() time.Time {
	return time.Date(2023, 5, 16, 12, 30, 45, 0, time.UTC)
}

func TestNew_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrations")
	_, err := migrate.New(path)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewWriter_NilDir(t *testing.T) {
	_, err := migrate.NewWriter(nil)
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	path := t.TempDir()
	w, err := migrate.New(path, migrate.WithClock(pinned))
	require.NoError(t, err)
	require.NoError(t, w.Write("init", []string{
		`CREATE TABLE IF NOT EXISTS "user" ("id" BIGINT NOT NULL PRIMARY KEY)`,
		`CREATE TABLE IF NOT EXISTS "group" ("id" BIGINT NOT NULL PRIMARY KEY)`,
	}))

	data, err := os.ReadFile(filepath.Join(path, "20230516123045_init.up.sql"))
	require.NoError(t, err)
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS \"user\" (\"id\" BIGINT NOT NULL PRIMARY KEY);\n"+
			"CREATE TABLE IF NOT EXISTS \"group\" (\"id\" BIGINT NOT NULL PRIMARY KEY);\n",
		string(data))

	_, err = os.Stat(filepath.Join(path, "atlas.sum"))
	require.NoError(t, err, "checksum file must be refreshed on every write")
}

func TestWrite_NoStatements(t *testing.T) {
	w, err := migrate.New(t.TempDir())
	require.NoError(t, err)
	require.Error(t, w.Write("empty", nil))
}
