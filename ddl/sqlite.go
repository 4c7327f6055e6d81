package ddl

import (
	"github.com/LanceMoe/aerich/schema"
	"github.com/LanceMoe/aerich/schema/field"
)

// Templates for statements SQLite cannot express are left empty; the
// corresponding operations fail with an UnsupportedError before any
// formatting happens.
var sqliteTemplates = templates{
	dropTable:    "DROP TABLE IF EXISTS %s",
	addColumn:    "ALTER TABLE %s ADD %s",
	dropColumn:   "ALTER TABLE %s DROP COLUMN %s",
	renameColumn: "ALTER TABLE %s RENAME COLUMN %s TO %s",
	renameTable:  "ALTER TABLE %s RENAME TO %s",
	addIndex:     "CREATE %[2]sINDEX %[3]s ON %[1]s (%[4]s)",
	dropIndex:    "DROP INDEX IF EXISTS %[2]s",
	addFK:        "ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
	dropFK:       "ALTER TABLE %s DROP FOREIGN KEY %s",
	m2mTable: "CREATE TABLE %[1]s (\n" +
		"    %[2]s %[3]s NOT NULL REFERENCES %[4]s (%[5]s) ON DELETE CASCADE,\n" +
		"    %[6]s %[7]s NOT NULL REFERENCES %[8]s (%[9]s) ON DELETE %[10]s\n" +
		")%[11]s%[12]s",
}

// SQLite compiles DDL for SQLite. ALTER TABLE covers only add, drop and
// rename; redefining a column (type, default, nullability, comment)
// requires rebuilding the table and is reported as unsupported. AddColumn
// additionally never emits an inline UNIQUE constraint, which SQLite
// rejects in ALTER TABLE.
type SQLite struct {
	core
}

// ModifyColumn is unsupported: SQLite cannot redefine a column in place.
func (s *SQLite) ModifyColumn(*schema.Model, *field.Descriptor, bool) (string, error) {
	return "", &UnsupportedError{Dialect: s.dialect, Op: "modify column"}
}

// ChangeColumn is unsupported on SQLite.
func (s *SQLite) ChangeColumn(*schema.Model, string, string, string) (string, error) {
	return "", &UnsupportedError{Dialect: s.dialect, Op: "change column"}
}

// AlterColumnDefault is unsupported on SQLite.
func (s *SQLite) AlterColumnDefault(*schema.Model, *field.Descriptor) (string, error) {
	return "", &UnsupportedError{Dialect: s.dialect, Op: "alter column default"}
}

// AlterColumnNull is unsupported on SQLite.
func (s *SQLite) AlterColumnNull(*schema.Model, *field.Descriptor) (string, error) {
	return "", &UnsupportedError{Dialect: s.dialect, Op: "alter column null"}
}

// SetComment is unsupported: SQLite has no column comments.
func (s *SQLite) SetComment(*schema.Model, *field.Descriptor) (string, error) {
	return "", &UnsupportedError{Dialect: s.dialect, Op: "set column comment"}
}
