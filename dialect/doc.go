// Package dialect provides the database dialect abstraction for aerich.
//
// A dialect name selects the DDL templates, identifier quoting and SQL type
// map used when compiling schema changes. The following dialects are
// supported:
//
//   - SQL: generic SQL (MySQL-like syntax, double-quoted identifiers)
//   - MySQL: MySQL/MariaDB
//   - Postgres: PostgreSQL
//   - SQLite: SQLite
//
// The package also defines the Driver and Tx interfaces implemented by
// dialect/sql for applying generated migrations against a live database:
//
//	drv, err := sql.Open(dialect.Postgres, "postgres://...")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer drv.Close()
package dialect
