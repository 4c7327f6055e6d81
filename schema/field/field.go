// Package field provides descriptors and fluent builders for describing how a
// logical model attribute maps to a physical database column.
//
// Descriptors are read-only views consumed by the DDL compiler:
//
//	fd := field.String("email").Unique().Descriptor()
//
// The SchemaType map carries the SQL column type per dialect, with the
// empty-string key acting as the fallback for dialects without a specific
// entry:
//
//	field.Time("created_at").SchemaType(map[string]string{
//		"":               "TIMESTAMP",
//		dialect.MySQL:    "DATETIME(6)",
//		dialect.Postgres: "TIMESTAMPTZ",
//	})
package field

import (
	"github.com/LanceMoe/aerich/dialect"
)

// A Type tags the logical kind of a field. It drives default-value
// resolution: UUID, Text and JSON columns never carry a literal SQL
// DEFAULT clause.
type Type uint8

// Field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeText
	TypeTime
	TypeUUID
	TypeJSON
	TypeEnum
	TypeBytes
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeFloat:   "float",
	TypeString:  "string",
	TypeText:    "text",
	TypeTime:    "time",
	TypeUUID:    "uuid",
	TypeJSON:    "json",
	TypeEnum:    "enum",
	TypeBytes:   "bytes",
}

// String returns the name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// OnDelete is the referential action applied to a foreign key
// when the referenced row is deleted.
type OnDelete string

// Referential actions.
const (
	Cascade  OnDelete = "CASCADE"
	Restrict OnDelete = "RESTRICT"
	SetNull  OnDelete = "SET NULL"
	NoAction OnDelete = "NO ACTION"
)

// A Descriptor is the logical description of one column. It is immutable
// from the compiler's point of view: every operation reads it and no
// operation writes it back.
type Descriptor struct {
	Name       string            // logical field name
	Column     string            // db column name; defaults to Name
	Type       Type              // logical type tag
	SchemaType map[string]string // dialect -> SQL column type, "" key is the fallback
	Nullable   bool              // NULL column
	Unique     bool              // UNIQUE column
	Default    any               // scalar, driver.Valuer (enum-like) or func (generated)
	AutoNowAdd bool              // timestamp set on insert
	AutoNow    bool              // timestamp refreshed on every update
	Comment    string            // column comment, omitted when empty

	// Relation attributes, set only for foreign-key and m2m fields.
	RawField    string   // source column holding the reference
	Through     string   // m2m join table
	BackwardKey string   // join-table column referencing the owning model
	ForwardKey  string   // join-table column referencing the related model
	OnDelete    OnDelete // action on the forward (related) side
}

// DBColumn returns the physical column name.
func (d *Descriptor) DBColumn() string {
	if d.Column != "" {
		return d.Column
	}
	return d.Name
}

// SchemaTypeFor resolves the SQL column type for the given dialect, falling
// back to the empty-dialect entry. The second return value is false when
// neither entry exists, which is a caller contract violation.
func (d *Descriptor) SchemaTypeFor(name string) (string, bool) {
	if t, ok := d.SchemaType[name]; ok {
		return t, true
	}
	t, ok := d.SchemaType[""]
	return t, ok
}

// A Builder constructs a field Descriptor using a fluent interface.
type Builder struct {
	desc *Descriptor
}

// New returns a field builder of the given type with the provided
// dialect type map. Most callers use the typed constructors below.
func New(name string, t Type, schemaType map[string]string) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Type: t, SchemaType: schemaType}}
}

// Bool returns a boolean field.
func Bool(name string) *Builder {
	return New(name, TypeBool, map[string]string{
		"":             "BOOL",
		dialect.SQLite: "INT",
	})
}

// Int returns an integer field.
func Int(name string) *Builder {
	return New(name, TypeInt, map[string]string{"": "INT"})
}

// Int64 returns a 64-bit integer field.
func Int64(name string) *Builder {
	return New(name, TypeInt, map[string]string{"": "BIGINT"})
}

// Float returns a double-precision field.
func Float(name string) *Builder {
	return New(name, TypeFloat, map[string]string{
		"":            "DOUBLE PRECISION",
		dialect.MySQL: "DOUBLE",
	})
}

// String returns a VARCHAR field.
func String(name string) *Builder {
	return New(name, TypeString, map[string]string{"": "VARCHAR(255)"})
}

// Text returns an unbounded text field. Text fields never carry a
// literal SQL default.
func Text(name string) *Builder {
	return New(name, TypeText, map[string]string{"": "TEXT"})
}

// Time returns a timestamp field.
func Time(name string) *Builder {
	return New(name, TypeTime, map[string]string{
		"":               "TIMESTAMP",
		dialect.MySQL:    "DATETIME(6)",
		dialect.Postgres: "TIMESTAMPTZ",
	})
}

// UUID returns a UUID field. UUID fields never carry a literal SQL default;
// generated values (e.g. uuid.New) stay on the application side.
func UUID(name string) *Builder {
	return New(name, TypeUUID, map[string]string{
		"":               "CHAR(36)",
		dialect.Postgres: "UUID",
	})
}

// JSON returns a JSON field. JSON fields never carry a literal SQL default.
func JSON(name string) *Builder {
	return New(name, TypeJSON, map[string]string{
		"":               "JSON",
		dialect.Postgres: "JSONB",
		dialect.SQLite:   "TEXT",
	})
}

// Enum returns an enum-like field stored as a short string.
func Enum(name string) *Builder {
	return New(name, TypeEnum, map[string]string{"": "VARCHAR(20)"})
}

// Bytes returns a binary field.
func Bytes(name string) *Builder {
	return New(name, TypeBytes, map[string]string{
		"":               "BLOB",
		dialect.Postgres: "BYTEA",
	})
}

// Column overrides the physical column name.
func (b *Builder) Column(name string) *Builder {
	b.desc.Column = name
	return b
}

// Nullable marks the column as accepting NULL.
func (b *Builder) Nullable() *Builder {
	b.desc.Nullable = true
	return b
}

// Unique adds a unique constraint to the column.
func (b *Builder) Unique() *Builder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the column. A driver.Valuer is unwrapped
// to its underlying value before rendering; a func value marks a generated
// default that cannot be expressed as a static SQL clause.
func (b *Builder) Default(v any) *Builder {
	b.desc.Default = v
	return b
}

// AutoNowAdd stamps the column with the current time on insert.
func (b *Builder) AutoNowAdd() *Builder {
	b.desc.AutoNowAdd = true
	return b
}

// AutoNow refreshes the column with the current time on every update.
func (b *Builder) AutoNow() *Builder {
	b.desc.AutoNow = true
	return b
}

// Comment sets the column comment.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// SchemaType overrides the dialect type map entries. Entries not present
// in the given map are kept.
func (b *Builder) SchemaType(types map[string]string) *Builder {
	if b.desc.SchemaType == nil {
		b.desc.SchemaType = make(map[string]string, len(types))
	}
	for d, t := range types {
		b.desc.SchemaType[d] = t
	}
	return b
}

// RawField sets the source column holding a foreign-key reference.
func (b *Builder) RawField(column string) *Builder {
	b.desc.RawField = column
	return b
}

// Through sets the m2m join-table name.
func (b *Builder) Through(table string) *Builder {
	b.desc.Through = table
	return b
}

// Keys sets the join-table column names for the owning (backward) and
// related (forward) side of a m2m relation.
func (b *Builder) Keys(backward, forward string) *Builder {
	b.desc.BackwardKey = backward
	b.desc.ForwardKey = forward
	return b
}

// OnDelete sets the referential action of the forward side.
func (b *Builder) OnDelete(action OnDelete) *Builder {
	b.desc.OnDelete = action
	return b
}

// Descriptor returns the built field descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
