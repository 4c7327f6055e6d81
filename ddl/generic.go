package ddl

// genericTemplates is the template table of the generic SQL dialect.
// MySQL shares it; identifier quoting is the generator's concern.
var genericTemplates = templates{
	dropTable:    "DROP TABLE IF EXISTS %s",
	addColumn:    "ALTER TABLE %s ADD %s",
	modifyColumn: "ALTER TABLE %s MODIFY COLUMN %s",
	dropColumn:   "ALTER TABLE %s DROP COLUMN %s",
	renameColumn: "ALTER TABLE %s RENAME COLUMN %s TO %s",
	changeColumn: "ALTER TABLE %s CHANGE %s %s %s",
	renameTable:  "ALTER TABLE %s RENAME TO %s",
	alterDefault: "ALTER TABLE %s ALTER COLUMN %s %s",
	addIndex:     "ALTER TABLE %[1]s ADD %[2]sINDEX %[3]s (%[4]s)",
	dropIndex:    "ALTER TABLE %[1]s DROP INDEX %[2]s",
	addFK:        "ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
	dropFK:       "ALTER TABLE %s DROP FOREIGN KEY %s",
	m2mTable: "CREATE TABLE %[1]s (\n" +
		"    %[2]s %[3]s NOT NULL REFERENCES %[4]s (%[5]s) ON DELETE CASCADE,\n" +
		"    %[6]s %[7]s NOT NULL REFERENCES %[8]s (%[9]s) ON DELETE %[10]s\n" +
		")%[11]s%[12]s",
}

// Generic compiles DDL in the generic (MySQL-like) SQL dialect with
// standard double-quoted identifiers.
type Generic struct {
	core
}
