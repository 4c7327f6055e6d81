package aerich_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceMoe/aerich"
	"github.com/LanceMoe/aerich/dialect"
	"github.com/LanceMoe/aerich/dialect/sql"
	"github.com/LanceMoe/aerich/migrate"
	"github.com/LanceMoe/aerich/schema"
	"github.com/LanceMoe/aerich/schema/field"
)

func model(name, table string, extra ...*field.Descriptor) *schema.Model {
	id := field.Int64("id").Descriptor()
	return &schema.Model{
		Name:   name,
		Table:  table,
		PK:     id,
		Fields: append([]*field.Descriptor{id}, extra...),
	}
}

func TestInitSchema(t *testing.T) {
	g, err := aerich.NewGenerator(dialect.SQL)
	require.NoError(t, err)
	models := []*schema.Model{
		model("User", "user", field.String("email").Unique().Descriptor()),
		model("Group", "group"),
		model("Post", "post", field.Text("body").Descriptor()),
	}
	stmts, err := g.InitSchema(context.Background(), models)
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], `CREATE TABLE IF NOT EXISTS "user"`)
	assert.Contains(t, stmts[1], `CREATE TABLE IF NOT EXISTS "group"`)
	assert.Contains(t, stmts[2], `CREATE TABLE IF NOT EXISTS "post"`)

	// Regenerating yields the same statements in the same order.
	again, err := g.InitSchema(context.Background(), models)
	require.NoError(t, err)
	assert.Equal(t, stmts, again)
}

func TestInitSchema_NoModels(t *testing.T) {
	g, err := aerich.NewGenerator(dialect.SQL)
	require.NoError(t, err)
	_, err = g.InitSchema(context.Background(), nil)
	require.ErrorIs(t, err, aerich.ErrNoModels)
}

func TestInitSchema_CompileError(t *testing.T) {
	g, err := aerich.NewGenerator(dialect.SQL)
	require.NoError(t, err)
	broken := model("Broken", "broken", &field.Descriptor{Name: "untyped"})
	_, err = g.InitSchema(context.Background(), []*schema.Model{broken})
	require.Error(t, err)
	require.True(t, aerich.IsMigrationError(err))
	var merr *aerich.MigrationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "Broken", merr.Model)
	assert.Equal(t, "create table", merr.Op)
}

func TestInitSchema_Recorded(t *testing.T) {
	dir := t.TempDir()
	w, err := migrate.New(dir, migrate.WithClock(func() time.Time {
		return time.Date(2023, 5, 16, 0, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	g, err := aerich.NewGenerator(dialect.SQL, aerich.WithWriter(w))
	require.NoError(t, err)

	_, err = g.InitSchema(context.Background(), []*schema.Model{model("User", "user")})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "20230516000000_init.up.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `CREATE TABLE IF NOT EXISTS "user"`)
}

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("ALTER TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	drv := sql.OpenDB(dialect.SQL, db)
	err = aerich.Apply(context.Background(), drv, []string{
		`CREATE TABLE IF NOT EXISTS "user" ("id" BIGINT NOT NULL PRIMARY KEY)`,
		`ALTER TABLE "user" ADD "email" VARCHAR(255) NOT NULL`,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	drv := sql.OpenDB(dialect.SQL, db)
	err = aerich.Apply(context.Background(), drv, []string{`CREATE TABLE "user" ()`})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
