// Package schema holds the read-only model metadata consumed by the DDL
// compiler: the table a model maps to, its primary key, and the field
// descriptors of its columns.
package schema

import (
	"github.com/go-openapi/inflect"

	"github.com/LanceMoe/aerich/schema/field"
)

// A Model is the compiler's view of the table an operation targets.
// It owns no behavior besides metadata accessors.
type Model struct {
	Name    string              // logical model name, e.g. "User"
	Table   string              // db table name, e.g. "user"
	Comment string              // table comment, omitted when empty
	PK      *field.Descriptor   // primary-key field
	Fields  []*field.Descriptor // all fields in column order, including PK
}

// PKColumn returns the db column name of the primary key.
func (m *Model) PKColumn() string {
	if m.PK == nil {
		return ""
	}
	return m.PK.DBColumn()
}

// Descriptor returns the table descriptor used when the model is the
// referenced side of a foreign key or m2m relation.
func (m *Model) Descriptor() *Table {
	return &Table{Name: m.Name, Table: m.Table, PK: m.PK}
}

// A Table describes a referenced table: its physical name and primary key.
type Table struct {
	Name  string            // logical model name
	Table string            // db table name
	PK    *field.Descriptor // primary-key field of the referenced table
}

// PKColumn returns the db column name of the primary key.
func (t *Table) PKColumn() string {
	if t.PK == nil {
		return ""
	}
	return t.PK.DBColumn()
}

// TableName derives the conventional db table name from a logical
// model name, e.g. "OrderItem" -> "order_item".
func TableName(model string) string {
	return inflect.Underscore(model)
}

// JoinTable derives the conventional m2m join-table name from the owning
// and related table names, e.g. ("user", "group") -> "user_groups".
func JoinTable(owner, related string) string {
	return inflect.Underscore(owner) + "_" + inflect.Pluralize(inflect.Underscore(related))
}

// JoinColumn derives the conventional join-table column name referencing
// the given table, e.g. "groups" -> "group_id".
func JoinColumn(table string) string {
	return inflect.Singularize(inflect.Underscore(table)) + "_id"
}
