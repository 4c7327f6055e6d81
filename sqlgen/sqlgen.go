// Package sqlgen implements the schema introspector backing the DDL
// compiler: identifier quoting, deterministic index and foreign-key
// naming, column-fragment rendering, and dialect-specific default-clause
// generation.
package sqlgen

import (
	"errors"
	"fmt"

	"github.com/LanceMoe/aerich/dialect"
	"github.com/LanceMoe/aerich/schema"
)

// ErrUnsupportedDefault is returned by DefaultClause when the dialect
// cannot express the requested default. The DDL compiler recovers from it
// by omitting the clause; it is never propagated to callers.
var ErrUnsupportedDefault = errors.New("aerich: default value is not supported on this dialect")

// ColumnOptions holds the pre-resolved inputs of a column fragment.
// The Default fragment, when set, carries its leading space.
type ColumnOptions struct {
	Table      string
	Column     string
	Type       string
	Nullable   bool
	Unique     bool
	PrimaryKey bool
	Comment    string
	Default    string
}

// A Generator produces the dialect-aware SQL fragments consumed by the DDL
// compiler. Implementations are stateless and safe for concurrent use.
type Generator interface {
	// Dialect returns the dialect name the generator renders for.
	Dialect() string
	// Quote quotes an identifier.
	Quote(ident string) string
	// TableSQL renders the full CREATE TABLE statement of a model,
	// terminated with a statement separator.
	TableSQL(m *schema.Model) (string, error)
	// Column renders one column fragment from pre-resolved options.
	Column(o ColumnOptions) string
	// EscapeDefault escapes a literal default value.
	EscapeDefault(v any) (string, error)
	// DefaultClause renders the " DEFAULT ..." fragment for a column, or
	// ErrUnsupportedDefault when the dialect cannot express it.
	DefaultClause(table, column, escaped string, autoNowAdd, autoNow bool) (string, error)
	// IndexName derives the deterministic name of an index on the given
	// fields. kind is "idx" for regular and "uid" for unique indexes.
	IndexName(kind string, m *schema.Model, fields []string) string
	// FKName derives the deterministic name of a foreign-key constraint.
	FKName(fromTable, fromColumn, toTable, toColumn string) string
	// TableComment renders the table-comment fragment appended to a
	// CREATE TABLE statement.
	TableComment(table, comment string) string
	// TableExtra renders dialect-specific table options.
	TableExtra(table string) string
	// ColumnComment renders the inline column-comment fragment.
	ColumnComment(table, column, comment string) string
}

// New returns the generator for the given dialect.
func New(name string) (Generator, error) {
	if !dialect.Valid(name) {
		return nil, fmt.Errorf("aerich: unsupported dialect %q", name)
	}
	return &generator{dialect: name}, nil
}
