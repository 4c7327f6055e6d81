package sqlgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/LanceMoe/aerich/dialect"
	"github.com/LanceMoe/aerich/schema"
)

// generator is the dialect-keyed Generator implementation. Syntax
// differences are switched on the dialect tag explicitly instead of being
// spread over a type hierarchy.
type generator struct {
	dialect string
}

func (g *generator) Dialect() string { return g.dialect }

// Quote quotes an identifier. MySQL uses backticks, everything else uses
// standard double quotes.
func (g *generator) Quote(ident string) string {
	if g.dialect == dialect.MySQL {
		return "`" + ident + "`"
	}
	return `"` + ident + `"`
}

// Column renders a column fragment in the fixed order
// name type [NOT NULL] [UNIQUE] [PRIMARY KEY][default][comment].
func (g *generator) Column(o ColumnOptions) string {
	var b strings.Builder
	b.WriteString(g.Quote(o.Column))
	b.WriteByte(' ')
	b.WriteString(o.Type)
	if !o.Nullable {
		b.WriteString(" NOT NULL")
	}
	if o.Unique {
		b.WriteString(" UNIQUE")
	}
	if o.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	b.WriteString(o.Default)
	if o.Comment != "" {
		b.WriteString(g.ColumnComment(o.Table, o.Column, o.Comment))
	}
	return b.String()
}

// TableSQL renders the CREATE TABLE statement of a model. Column defaults
// are resolved with the same routine the DDL compiler uses, so a column
// renders identically at table-creation and at add-column time.
func (g *generator) TableSQL(m *schema.Model) (string, error) {
	cols := make([]string, 0, len(m.Fields))
	for _, fd := range m.Fields {
		typ, ok := fd.SchemaTypeFor(g.dialect)
		if !ok {
			return "", fmt.Errorf("aerich: field %q has no schema type for dialect %q", fd.Name, g.dialect)
		}
		def, _ := ResolveDefault(g, m.Table, fd)
		cols = append(cols, g.Column(ColumnOptions{
			Table:      m.Table,
			Column:     fd.DBColumn(),
			Type:       typ,
			Nullable:   fd.Nullable,
			Unique:     fd.Unique,
			PrimaryKey: fd == m.PK,
			Comment:    fd.Comment,
			Default:    def,
		}))
	}
	var comment string
	if m.Comment != "" {
		comment = g.TableComment(m.Table, m.Comment)
	}
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n    %s\n)%s%s;",
		g.Quote(m.Table), strings.Join(cols, ",\n    "), g.TableExtra(m.Table), comment,
	), nil
}

// EscapeDefault escapes a literal value as a dialect-correct SQL fragment.
func (g *generator) EscapeDefault(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return g.quoteString(v), nil
	case bool:
		switch g.dialect {
		case dialect.MySQL, dialect.SQLite:
			if v {
				return "1", nil
			}
			return "0", nil
		default:
			if v {
				return "true", nil
			}
			return "false", nil
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	case time.Time:
		return g.quoteString(v.UTC().Format("2006-01-02 15:04:05")), nil
	case nil:
		return "NULL", nil
	default:
		return "", fmt.Errorf("aerich: cannot escape default value of type %T", v)
	}
}

func (g *generator) quoteString(s string) string {
	s = strings.ReplaceAll(s, "'", "''")
	if g.dialect == dialect.MySQL {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return "'" + s + "'"
}

// DefaultClause renders the " DEFAULT ..." fragment of a column.
// table and column are unused by the builtin dialects but part of the
// contract for generators that track per-column state.
func (g *generator) DefaultClause(_, _ string, escaped string, autoNowAdd, autoNow bool) (string, error) {
	switch {
	case autoNowAdd || autoNow:
		switch g.dialect {
		case dialect.MySQL:
			clause := " DEFAULT CURRENT_TIMESTAMP(6)"
			if autoNow {
				clause += " ON UPDATE CURRENT_TIMESTAMP(6)"
			}
			return clause, nil
		case dialect.Postgres, dialect.SQLite:
			// Refresh-on-update has no static DEFAULT equivalent here.
			if autoNow && !autoNowAdd {
				return "", ErrUnsupportedDefault
			}
			return " DEFAULT CURRENT_TIMESTAMP", nil
		default:
			return " DEFAULT CURRENT_TIMESTAMP", nil
		}
	case escaped != "":
		return " DEFAULT " + escaped, nil
	default:
		return "", nil
	}
}

// TableComment renders the fragment appended after a CREATE TABLE body.
func (g *generator) TableComment(table, comment string) string {
	switch g.dialect {
	case dialect.MySQL:
		return fmt.Sprintf(" COMMENT='%s'", strings.ReplaceAll(comment, "'", "''"))
	case dialect.Postgres:
		return fmt.Sprintf("; COMMENT ON TABLE %s IS %s", g.Quote(table), g.quoteString(comment))
	default:
		return fmt.Sprintf(" /* %s */", comment)
	}
}

// TableExtra renders dialect-specific table options.
func (g *generator) TableExtra(string) string {
	if g.dialect == dialect.MySQL {
		return " CHARACTER SET utf8mb4"
	}
	return ""
}

// ColumnComment renders the inline comment fragment of a column. Postgres
// has no inline form; comments there are set with COMMENT ON COLUMN by the
// DDL compiler.
func (g *generator) ColumnComment(_, _, comment string) string {
	switch g.dialect {
	case dialect.MySQL:
		return fmt.Sprintf(" COMMENT '%s'", strings.ReplaceAll(comment, "'", "''"))
	case dialect.Postgres:
		return ""
	default:
		return fmt.Sprintf(" /* %s */", comment)
	}
}
