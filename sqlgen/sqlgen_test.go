package sqlgen_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceMoe/aerich/dialect"
	"github.com/LanceMoe/aerich/schema"
	"github.com/LanceMoe/aerich/schema/field"
	"github.com/LanceMoe/aerich/sqlgen"
)

func newGen(t *testing.T, name string) sqlgen.Generator {
	t.Helper()
	g, err := sqlgen.New(name)
	require.NoError(t, err)
	return g
}

func blogModel() *schema.Model {
	id := field.Int64("id").Descriptor()
	title := field.String("title").Unique().Descriptor()
	return &schema.Model{Name: "Blog", Table: "blog", PK: id, Fields: []*field.Descriptor{id, title}}
}

func TestNew_UnknownDialect(t *testing.T) {
	_, err := sqlgen.New("mssql")
	require.Error(t, err)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"user"`, newGen(t, dialect.SQL).Quote("user"))
	assert.Equal(t, "`user`", newGen(t, dialect.MySQL).Quote("user"))
	assert.Equal(t, `"user"`, newGen(t, dialect.Postgres).Quote("user"))
	assert.Equal(t, `"user"`, newGen(t, dialect.SQLite).Quote("user"))
}

func TestIndexName(t *testing.T) {
	g := newGen(t, dialect.SQL)
	m := blogModel()

	name := g.IndexName("idx", m, []string{"title", "author"})
	assert.Regexp(t, regexp.MustCompile(`^idx_blog_title_[0-9a-f]{6}$`), name)
	assert.Equal(t, name, g.IndexName("idx", m, []string{"title", "author"}), "must be deterministic")
	assert.NotEqual(t, name, g.IndexName("uid", m, []string{"title", "author"}))
	assert.NotEqual(t, name, g.IndexName("idx", m, []string{"author", "title"}), "field order matters")

	// Long identifiers are truncated but stay unique through the hash.
	long := &schema.Model{Name: "X", Table: "a_very_long_table_name", PK: m.PK, Fields: m.Fields}
	lname := g.IndexName("idx", long, []string{"some_long_field"})
	assert.Regexp(t, regexp.MustCompile(`^idx_a_very_long_some_lo_[0-9a-f]{6}$`), lname)
}

func TestFKName(t *testing.T) {
	g := newGen(t, dialect.SQL)
	name := g.FKName("user", "group_id", "group", "id")
	assert.Regexp(t, regexp.MustCompile(`^fk_user_group_[0-9a-f]{8}$`), name)
	assert.Equal(t, name, g.FKName("user", "group_id", "group", "id"))
	assert.NotEqual(t, name, g.FKName("user", "team_id", "team", "id"))
}

func TestEscapeDefault(t *testing.T) {
	g := newGen(t, dialect.SQL)
	for _, tt := range []struct {
		value any
		want  string
	}{
		{"plain", "'plain'"},
		{"it's", "'it''s'"},
		{42, "42"},
		{int64(-7), "-7"},
		{3.5, "3.5"},
		{true, "true"},
		{false, "false"},
		{nil, "NULL"},
		{time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), "'2020-01-02 03:04:05'"},
	} {
		got, err := g.EscapeDefault(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "value %v", tt.value)
	}

	_, err := g.EscapeDefault([]string{"no"})
	require.Error(t, err)
}

func TestEscapeDefault_MySQL(t *testing.T) {
	g := newGen(t, dialect.MySQL)
	got, err := g.EscapeDefault(true)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	got, err = g.EscapeDefault(`a\b`)
	require.NoError(t, err)
	assert.Equal(t, `'a\\b'`, got)
}

func TestDefaultClause(t *testing.T) {
	t.Run("Literal", func(t *testing.T) {
		got, err := newGen(t, dialect.SQL).DefaultClause("t", "c", "'x'", false, false)
		require.NoError(t, err)
		assert.Equal(t, " DEFAULT 'x'", got)
	})
	t.Run("MySQLAutoNow", func(t *testing.T) {
		got, err := newGen(t, dialect.MySQL).DefaultClause("t", "c", "", true, true)
		require.NoError(t, err)
		assert.Equal(t, " DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6)", got)
	})
	t.Run("PostgresAutoNowAdd", func(t *testing.T) {
		got, err := newGen(t, dialect.Postgres).DefaultClause("t", "c", "", true, false)
		require.NoError(t, err)
		assert.Equal(t, " DEFAULT CURRENT_TIMESTAMP", got)
	})
	t.Run("SQLiteAutoNowUnsupported", func(t *testing.T) {
		_, err := newGen(t, dialect.SQLite).DefaultClause("t", "c", "", false, true)
		require.ErrorIs(t, err, sqlgen.ErrUnsupportedDefault)
	})
	t.Run("Empty", func(t *testing.T) {
		got, err := newGen(t, dialect.SQL).DefaultClause("t", "c", "", false, false)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestResolveDefault(t *testing.T) {
	g := newGen(t, dialect.SQL)
	t.Run("None", func(t *testing.T) {
		_, ok := sqlgen.ResolveDefault(g, "blog", field.String("title").Descriptor())
		assert.False(t, ok)
	})
	t.Run("Literal", func(t *testing.T) {
		clause, ok := sqlgen.ResolveDefault(g, "blog", field.String("title").Default("untitled").Descriptor())
		assert.True(t, ok)
		assert.Equal(t, " DEFAULT 'untitled'", clause)
	})
	t.Run("GeneratedFunc", func(t *testing.T) {
		clause, ok := sqlgen.ResolveDefault(g, "blog", field.Int("n").Default(func() int { return 1 }).Descriptor())
		assert.True(t, ok, "default exists conceptually")
		assert.Empty(t, clause, "but has no SQL form")
	})
	t.Run("JSONNeverLiteral", func(t *testing.T) {
		clause, ok := sqlgen.ResolveDefault(g, "blog", field.JSON("meta").Default("{}").Descriptor())
		assert.True(t, ok)
		assert.Empty(t, clause)
	})
	t.Run("UnescapableFallsBack", func(t *testing.T) {
		clause, ok := sqlgen.ResolveDefault(g, "blog", field.Int("n").Default([]int{1}).Descriptor())
		assert.True(t, ok)
		assert.Empty(t, clause)
	})
}

func TestColumn(t *testing.T) {
	g := newGen(t, dialect.SQL)
	got := g.Column(sqlgen.ColumnOptions{
		Table:  "blog",
		Column: "title",
		Type:   "VARCHAR",
		Unique: true,
	})
	assert.Equal(t, `"title" VARCHAR NOT NULL UNIQUE`, got)

	got = g.Column(sqlgen.ColumnOptions{
		Table:    "blog",
		Column:   "note",
		Type:     "TEXT",
		Nullable: true,
		Comment:  "freeform",
	})
	assert.Equal(t, `"note" TEXT /* freeform */`, got)
}

func TestTableSQL(t *testing.T) {
	t.Run("Generic", func(t *testing.T) {
		got, err := newGen(t, dialect.SQL).TableSQL(blogModel())
		require.NoError(t, err)
		assert.Equal(t,
			"CREATE TABLE IF NOT EXISTS \"blog\" (\n"+
				"    \"id\" BIGINT NOT NULL PRIMARY KEY,\n"+
				"    \"title\" VARCHAR(255) NOT NULL UNIQUE\n"+
				");", got)
	})
	t.Run("MySQLCommented", func(t *testing.T) {
		m := blogModel()
		m.Comment = "posts"
		got, err := newGen(t, dialect.MySQL).TableSQL(m)
		require.NoError(t, err)
		assert.Equal(t,
			"CREATE TABLE IF NOT EXISTS `blog` (\n"+
				"    `id` BIGINT NOT NULL PRIMARY KEY,\n"+
				"    `title` VARCHAR(255) NOT NULL UNIQUE\n"+
				") CHARACTER SET utf8mb4 COMMENT='posts';", got)
	})
	t.Run("MissingType", func(t *testing.T) {
		m := blogModel()
		m.Fields = append(m.Fields, &field.Descriptor{Name: "broken"})
		_, err := newGen(t, dialect.SQL).TableSQL(m)
		require.Error(t, err)
	})
}
