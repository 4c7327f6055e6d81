package ddl

import (
	"fmt"

	"github.com/LanceMoe/aerich/schema"
	"github.com/LanceMoe/aerich/schema/field"
)

var postgresTemplates = templates{
	dropTable:    "DROP TABLE IF EXISTS %s",
	addColumn:    "ALTER TABLE %s ADD %s",
	modifyColumn: "ALTER TABLE %[1]s ALTER COLUMN %[2]s TYPE %[3]s USING %[2]s::%[3]s",
	dropColumn:   "ALTER TABLE %s DROP COLUMN %s",
	renameColumn: "ALTER TABLE %s RENAME COLUMN %s TO %s",
	renameTable:  "ALTER TABLE %s RENAME TO %s",
	alterDefault: "ALTER TABLE %s ALTER COLUMN %s %s",
	addIndex:     "CREATE %[2]sINDEX %[3]s ON %[1]s (%[4]s)",
	dropIndex:    "DROP INDEX %[2]s",
	addFK:        "ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
	dropFK:       "ALTER TABLE %s DROP CONSTRAINT %s",
	m2mTable: "CREATE TABLE %[1]s (\n" +
		"    %[2]s %[3]s NOT NULL REFERENCES %[4]s (%[5]s) ON DELETE CASCADE,\n" +
		"    %[6]s %[7]s NOT NULL REFERENCES %[8]s (%[9]s) ON DELETE %[10]s\n" +
		")%[11]s%[12]s",
}

// Postgres compiles DDL for PostgreSQL. Indexes are created and dropped
// with standalone statements, column retyping goes through ALTER COLUMN
// TYPE with a USING cast, and comments are set with COMMENT ON.
type Postgres struct {
	core
}

// ModifyColumn retypes the column with ALTER COLUMN TYPE. Nullability and
// comments have dedicated statements on PostgreSQL and are not re-emitted
// here.
func (p *Postgres) ModifyColumn(m *schema.Model, fd *field.Descriptor, _ bool) (string, error) {
	typ, ok := fd.SchemaTypeFor(p.dialect)
	if !ok {
		return "", &MissingSchemaTypeError{Field: fd.Name, Dialect: p.dialect}
	}
	return fmt.Sprintf(p.tpl.modifyColumn, p.gen.Quote(m.Table), p.gen.Quote(fd.DBColumn()), typ), nil
}

// ChangeColumn has no single-statement equivalent on PostgreSQL; it
// translates to a rename followed by a retype.
func (p *Postgres) ChangeColumn(m *schema.Model, oldColumn, newColumn, newType string) (string, error) {
	rename := p.RenameColumn(m, oldColumn, newColumn)
	retype := fmt.Sprintf(p.tpl.modifyColumn, p.gen.Quote(m.Table), p.gen.Quote(newColumn), newType)
	return rename + "; " + retype, nil
}

// AlterColumnNull sets or drops the NOT NULL constraint directly instead
// of re-emitting the column definition.
func (p *Postgres) AlterColumnNull(m *schema.Model, fd *field.Descriptor) (string, error) {
	action := "SET NOT NULL"
	if fd.Nullable {
		action = "DROP NOT NULL"
	}
	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s %s",
		p.gen.Quote(m.Table), p.gen.Quote(fd.DBColumn()), action), nil
}

// SetComment sets the column comment with COMMENT ON COLUMN. An empty
// comment clears it.
func (p *Postgres) SetComment(m *schema.Model, fd *field.Descriptor) (string, error) {
	comment := "NULL"
	if fd.Comment != "" {
		comment = "'" + escapeSingleQuotes(fd.Comment) + "'"
	}
	return fmt.Sprintf("COMMENT ON COLUMN %s.%s IS %s",
		p.gen.Quote(m.Table), p.gen.Quote(fd.DBColumn()), comment), nil
}

func escapeSingleQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\'')
		}
		out = append(out, s[i])
	}
	return string(out)
}
