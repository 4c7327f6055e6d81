package ddl

// mysqlTemplates matches the generic template table statement for
// statement; the two dialects differ only in identifier quoting and
// fragment rendering, both owned by the generator.
var mysqlTemplates = genericTemplates

// MySQL compiles DDL for MySQL/MariaDB: backtick-quoted identifiers,
// inline column comments and CURRENT_TIMESTAMP(6) defaults with
// ON UPDATE for auto-now columns.
type MySQL struct {
	core
}
