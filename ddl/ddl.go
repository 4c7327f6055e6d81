// Package ddl compiles structured schema changes into SQL DDL statements,
// one dialect implementation per supported database. Every operation is a
// pure transformation from model metadata to a statement string: nothing is
// executed, and generated index and foreign-key names are derived
// deterministically so regenerating a migration yields identical SQL.
package ddl

import (
	"errors"
	"fmt"

	"github.com/LanceMoe/aerich/dialect"
	"github.com/LanceMoe/aerich/schema"
	"github.com/LanceMoe/aerich/schema/field"
	"github.com/LanceMoe/aerich/sqlgen"
)

// DDL is the per-dialect compilation contract. Implementations are
// stateless besides their template table and generator reference, and are
// safe for concurrent use.
type DDL interface {
	// Dialect returns the dialect name the compiler renders for.
	Dialect() string
	// CreateTable renders the full CREATE TABLE statement of a model,
	// with the trailing statement terminator stripped.
	CreateTable(m *schema.Model) (string, error)
	// DropTable renders an idempotent DROP TABLE IF EXISTS statement.
	DropTable(name string) string
	// RenameTable renames a table. The old and new names are explicit;
	// the model only supplies context.
	RenameTable(m *schema.Model, oldName, newName string) string
	// CreateM2M renders the join table of a many-to-many relation between
	// the owning model and the referenced table.
	CreateM2M(m *schema.Model, fd *field.Descriptor, ref *schema.Table) (string, error)
	// DropM2M renders an idempotent DROP TABLE IF EXISTS statement for a
	// join table.
	DropM2M(name string) string
	// AddColumn renders an ADD column statement. pk marks the column as
	// the primary key.
	AddColumn(m *schema.Model, fd *field.Descriptor, pk bool) (string, error)
	// ModifyColumn re-renders the full column definition. Unique
	// constraints are never included: no covered dialect can add one
	// through a modify-column statement.
	ModifyColumn(m *schema.Model, fd *field.Descriptor, pk bool) (string, error)
	// DropColumn renders a DROP COLUMN statement.
	DropColumn(m *schema.Model, column string) string
	// RenameColumn renders a RENAME COLUMN statement.
	RenameColumn(m *schema.Model, oldColumn, newColumn string) string
	// ChangeColumn renames and retypes a column in one statement
	// (MySQL CHANGE syntax). Dialects without an equivalent return an
	// UnsupportedError.
	ChangeColumn(m *schema.Model, oldColumn, newColumn, newType string) (string, error)
	// AlterColumnDefault sets or drops the column default, depending on
	// whether resolution yields a usable one.
	AlterColumnDefault(m *schema.Model, fd *field.Descriptor) (string, error)
	// AlterColumnNull changes the nullability of a column.
	AlterColumnNull(m *schema.Model, fd *field.Descriptor) (string, error)
	// SetComment sets the comment of a column.
	SetComment(m *schema.Model, fd *field.Descriptor) (string, error)
	// AddIndex creates an index over the given fields with a
	// deterministically derived name.
	AddIndex(m *schema.Model, fields []string, unique bool) string
	// DropIndex drops the index AddIndex created for the same inputs.
	DropIndex(m *schema.Model, fields []string, unique bool) string
	// DropIndexByName drops an index whose name did not come from the
	// deterministic generator.
	DropIndexByName(m *schema.Model, name string) string
	// AddFK adds a foreign-key constraint with a deterministically
	// derived name.
	AddFK(m *schema.Model, fd *field.Descriptor, ref *schema.Table) string
	// DropFK drops the constraint AddFK created for the same inputs.
	DropFK(m *schema.Model, fd *field.Descriptor, ref *schema.Table) string
}

// New returns the DDL compiler for the given dialect.
func New(name string) (DDL, error) {
	gen, err := sqlgen.New(name)
	if err != nil {
		return nil, err
	}
	return NewWithGenerator(name, gen)
}

// NewWithGenerator returns the DDL compiler for the given dialect backed
// by a custom generator.
func NewWithGenerator(name string, gen sqlgen.Generator) (DDL, error) {
	switch name {
	case dialect.SQL:
		return &Generic{core{dialect: name, tpl: genericTemplates, gen: gen}}, nil
	case dialect.MySQL:
		return &MySQL{core{dialect: name, tpl: mysqlTemplates, gen: gen}}, nil
	case dialect.Postgres:
		return &Postgres{core{dialect: name, tpl: postgresTemplates, gen: gen}}, nil
	case dialect.SQLite:
		return &SQLite{core{dialect: name, tpl: sqliteTemplates, gen: gen}}, nil
	default:
		return nil, fmt.Errorf("aerich: unsupported dialect %q", name)
	}
}

// UnsupportedError is returned when a dialect cannot express an operation
// and no equivalent translation exists. Callers must not fall back to
// dialect-incorrect SQL.
type UnsupportedError struct {
	Dialect string
	Op      string
}

// Error returns the error string.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("aerich: %s is not supported on %s", e.Op, e.Dialect)
}

// IsUnsupported reports if the error marks a dialect-unsupported operation.
func IsUnsupported(err error) bool {
	var e *UnsupportedError
	return errors.As(err, &e)
}

// MissingSchemaTypeError is returned when a field has neither a
// dialect-specific nor a fallback schema type. It marks a broken field
// definition, never malformed SQL.
type MissingSchemaTypeError struct {
	Field   string
	Dialect string
}

// Error returns the error string.
func (e *MissingSchemaTypeError) Error() string {
	return fmt.Sprintf("aerich: field %q has no schema type for dialect %q", e.Field, e.Dialect)
}

// IsMissingSchemaType reports if the error marks a field without a usable
// schema type.
func IsMissingSchemaType(err error) bool {
	var e *MissingSchemaTypeError
	return errors.As(err, &e)
}
