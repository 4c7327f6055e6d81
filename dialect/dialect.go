package dialect

import (
	"context"
)

// Dialect names. SQL is the generic dialect used when no database-specific
// syntax applies; the others select database-specific DDL templates and
// type maps.
const (
	SQL      = "sql"
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// All returns the names of all supported dialects.
func All() []string {
	return []string{SQL, MySQL, Postgres, SQLite}
}

// Valid reports if the given name is a supported dialect.
func Valid(name string) bool {
	switch name {
	case SQL, MySQL, Postgres, SQLite:
		return true
	}
	return false
}

// ExecQuerier wraps the two standard database operations.
type ExecQuerier interface {
	// Exec executes a query that does not return records. For example, in SQL, INSERT or UPDATE.
	// It scans the result into the pointer v. For SQL drivers, it is dialect/sql.Result.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows, typically a SELECT in SQL.
	// It scans the result into the pointer v. For SQL drivers, it is *dialect/sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all database operations.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	// The provided context is used until the transaction is committed or rolled back.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps transactional operations.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}
