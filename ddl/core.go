package ddl

import (
	"fmt"
	"strings"

	"github.com/LanceMoe/aerich/dialect"
	"github.com/LanceMoe/aerich/schema"
	"github.com/LanceMoe/aerich/schema/field"
	"github.com/LanceMoe/aerich/sqlgen"
)

// templates is the constant statement-template table of one dialect.
// Identifiers are quoted by the generator before substitution. Templates
// whose argument order differs between dialects use explicit indexes.
type templates struct {
	dropTable    string // table
	addColumn    string // table, column fragment
	modifyColumn string // table, column fragment
	dropColumn   string // table, column
	renameColumn string // table, old, new
	changeColumn string // table, old, new, type
	renameTable  string // old, new
	alterDefault string // table, column, action
	addIndex     string // [1]table [2]unique prefix [3]name [4]columns
	dropIndex    string // [1]table [2]name
	addFK        string // table, name, column, ref table, ref column, action
	dropFK       string // table, name
	m2mTable     string // [1]table [2]bkey [3]btype [4]btable [5]bpk [6]fkey [7]ftype [8]ftable [9]fpk [10]action [11]extra [12]comment
}

// core carries the state shared by all dialect compilers and implements
// the operations whose shape is dialect-independent. Dialect types embed
// it and redefine only the operations that deviate.
type core struct {
	dialect string
	tpl     templates
	gen     sqlgen.Generator
}

// Dialect returns the dialect name of the compiler.
func (c *core) Dialect() string { return c.dialect }

// CreateTable delegates full table rendering to the generator, which alone
// knows column ordering and table options at creation time. The trailing
// terminator is stripped so the caller controls statement joining.
func (c *core) CreateTable(m *schema.Model) (string, error) {
	s, err := c.gen.TableSQL(m)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(strings.TrimSpace(s), ";"), nil
}

// DropTable renders an idempotent DROP TABLE IF EXISTS statement.
func (c *core) DropTable(name string) string {
	return fmt.Sprintf(c.tpl.dropTable, c.gen.Quote(name))
}

// DropM2M drops a join table. Same statement as DropTable.
func (c *core) DropM2M(name string) string {
	return c.DropTable(name)
}

// RenameTable renders an ALTER TABLE ... RENAME TO statement from the
// explicit old and new names.
func (c *core) RenameTable(_ *schema.Model, oldName, newName string) string {
	return fmt.Sprintf(c.tpl.renameTable, c.gen.Quote(oldName), c.gen.Quote(newName))
}

// CreateM2M builds the two-column join table of a m2m relation. The
// backward (owning) side always cascades; the forward side follows the
// field's configured action. Column types come from the primary keys of
// the two sides. Join-table and key names fall back to the schema
// package's naming conventions when the descriptor leaves them empty.
func (c *core) CreateM2M(m *schema.Model, fd *field.Descriptor, ref *schema.Table) (string, error) {
	backwardType, ok := m.PK.SchemaTypeFor(c.dialect)
	if !ok {
		return "", &MissingSchemaTypeError{Field: m.PK.Name, Dialect: c.dialect}
	}
	forwardType, ok := ref.PK.SchemaTypeFor(c.dialect)
	if !ok {
		return "", &MissingSchemaTypeError{Field: ref.PK.Name, Dialect: c.dialect}
	}
	through := fd.Through
	if through == "" {
		through = schema.JoinTable(m.Table, ref.Table)
	}
	backwardKey := fd.BackwardKey
	if backwardKey == "" {
		backwardKey = schema.JoinColumn(m.Table)
	}
	forwardKey := fd.ForwardKey
	if forwardKey == "" {
		forwardKey = schema.JoinColumn(ref.Table)
	}
	onDelete := fd.OnDelete
	if onDelete == "" {
		onDelete = field.Cascade
	}
	var comment string
	if fd.Comment != "" {
		comment = c.gen.TableComment(through, fd.Comment)
	}
	q := c.gen.Quote
	return fmt.Sprintf(c.tpl.m2mTable,
		q(through),
		q(backwardKey), backwardType, q(m.Table), q(m.PKColumn()),
		q(forwardKey), forwardType, q(ref.Table), q(ref.PKColumn()),
		onDelete, c.gen.TableExtra(through), comment,
	), nil
}

// AddColumn renders an ADD column statement.
func (c *core) AddColumn(m *schema.Model, fd *field.Descriptor, pk bool) (string, error) {
	col, err := c.columnFragment(m, fd, pk, false)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(c.tpl.addColumn, c.gen.Quote(m.Table), col), nil
}

// ModifyColumn re-renders the full column definition through the
// modify-column template.
func (c *core) ModifyColumn(m *schema.Model, fd *field.Descriptor, pk bool) (string, error) {
	col, err := c.columnFragment(m, fd, pk, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(c.tpl.modifyColumn, c.gen.Quote(m.Table), col), nil
}

// columnFragment renders the column definition shared by AddColumn and
// ModifyColumn. Unique constraints are dropped when modifying (no covered
// dialect supports it there) and when adding on SQLite, which cannot add
// a unique column through ALTER TABLE.
func (c *core) columnFragment(m *schema.Model, fd *field.Descriptor, pk, modify bool) (string, error) {
	typ, ok := fd.SchemaTypeFor(c.dialect)
	if !ok {
		return "", &MissingSchemaTypeError{Field: fd.Name, Dialect: c.dialect}
	}
	def, _ := sqlgen.ResolveDefault(c.gen, m.Table, fd)
	unique := fd.Unique && !modify && c.dialect != dialect.SQLite
	return c.gen.Column(sqlgen.ColumnOptions{
		Table:      m.Table,
		Column:     fd.DBColumn(),
		Type:       typ,
		Nullable:   fd.Nullable,
		Unique:     unique,
		PrimaryKey: pk,
		Comment:    fd.Comment,
		Default:    def,
	}), nil
}

// DropColumn renders a DROP COLUMN statement.
func (c *core) DropColumn(m *schema.Model, column string) string {
	return fmt.Sprintf(c.tpl.dropColumn, c.gen.Quote(m.Table), c.gen.Quote(column))
}

// RenameColumn renders a RENAME COLUMN statement.
func (c *core) RenameColumn(m *schema.Model, oldColumn, newColumn string) string {
	return fmt.Sprintf(c.tpl.renameColumn,
		c.gen.Quote(m.Table), c.gen.Quote(oldColumn), c.gen.Quote(newColumn))
}

// ChangeColumn renders a MySQL-style CHANGE statement renaming and
// retyping a column at once.
func (c *core) ChangeColumn(m *schema.Model, oldColumn, newColumn, newType string) (string, error) {
	return fmt.Sprintf(c.tpl.changeColumn, c.gen.Quote(m.Table), oldColumn, newColumn, newType), nil
}

// AlterColumnDefault emits SET DEFAULT when resolution yields a usable
// default and DROP DEFAULT otherwise. An unrepresentable default (empty
// clause) drops as well: there is nothing the database could apply.
func (c *core) AlterColumnDefault(m *schema.Model, fd *field.Descriptor) (string, error) {
	action := "DROP DEFAULT"
	if clause, ok := sqlgen.ResolveDefault(c.gen, m.Table, fd); ok && clause != "" {
		action = "SET" + clause
	}
	return fmt.Sprintf(c.tpl.alterDefault,
		c.gen.Quote(m.Table), c.gen.Quote(fd.DBColumn()), action), nil
}

// AlterColumnNull re-emits the full column definition; nullability is part
// of it in the dialects sharing this implementation.
func (c *core) AlterColumnNull(m *schema.Model, fd *field.Descriptor) (string, error) {
	return c.ModifyColumn(m, fd, false)
}

// SetComment re-emits the full column definition; the comment rides along.
func (c *core) SetComment(m *schema.Model, fd *field.Descriptor) (string, error) {
	return c.ModifyColumn(m, fd, false)
}

// AddIndex creates an index named deterministically from its inputs.
func (c *core) AddIndex(m *schema.Model, fields []string, unique bool) string {
	kind, prefix := "idx", ""
	if unique {
		kind, prefix = "uid", "UNIQUE "
	}
	name := c.gen.IndexName(kind, m, fields)
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = c.gen.Quote(f)
	}
	return fmt.Sprintf(c.tpl.addIndex,
		c.gen.Quote(m.Table), prefix, c.gen.Quote(name), strings.Join(quoted, ", "))
}

// DropIndex recomputes the deterministic index name and drops it.
func (c *core) DropIndex(m *schema.Model, fields []string, unique bool) string {
	kind := "idx"
	if unique {
		kind = "uid"
	}
	return c.DropIndexByName(m, c.gen.IndexName(kind, m, fields))
}

// DropIndexByName drops an index by its explicit name.
func (c *core) DropIndexByName(m *schema.Model, name string) string {
	return fmt.Sprintf(c.tpl.dropIndex, c.gen.Quote(m.Table), c.gen.Quote(name))
}

// AddFK adds a foreign-key constraint named deterministically from the
// source and target (table, column) pairs.
func (c *core) AddFK(m *schema.Model, fd *field.Descriptor, ref *schema.Table) string {
	name := c.fkName(m, fd, ref)
	onDelete := fd.OnDelete
	if onDelete == "" {
		onDelete = field.Cascade
	}
	q := c.gen.Quote
	return fmt.Sprintf(c.tpl.addFK,
		q(m.Table), q(name), q(fd.RawField), q(ref.Table), q(ref.PKColumn()), onDelete)
}

// DropFK recomputes the deterministic constraint name and drops it.
func (c *core) DropFK(m *schema.Model, fd *field.Descriptor, ref *schema.Table) string {
	return fmt.Sprintf(c.tpl.dropFK, c.gen.Quote(m.Table), c.gen.Quote(c.fkName(m, fd, ref)))
}

func (c *core) fkName(m *schema.Model, fd *field.Descriptor, ref *schema.Table) string {
	return c.gen.FKName(m.Table, fd.RawField, ref.Table, ref.PKColumn())
}
