// Package sql provides the database/sql driver wrapper used to apply
// generated migrations: connection handling, transactions, and statement
// execution statistics. SQL generation itself lives in the ddl and sqlgen
// packages and never touches a connection.
package sql
