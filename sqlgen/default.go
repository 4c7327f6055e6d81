package sqlgen

import (
	"database/sql/driver"
	"reflect"

	"github.com/LanceMoe/aerich/schema/field"
)

// ResolveDefault resolves the DEFAULT clause of a field, shared by
// add-column, modify-column, alter-default and create-table paths.
//
// The second return value is false when the field has no default at all
// (callers emit DROP DEFAULT or nothing). When it is true the clause may
// still be empty: a default exists conceptually but cannot be expressed as
// a static SQL fragment — generated values, UUID/Text/JSON columns, or
// defaults the dialect cannot render — and callers omit the clause rather
// than fail.
func ResolveDefault(g Generator, table string, fd *field.Descriptor) (string, bool) {
	def := fd.Default
	// Enum-like defaults carry their underlying value.
	if v, ok := def.(driver.Valuer); ok {
		dv, err := v.Value()
		if err != nil {
			return "", true
		}
		def = dv
	}
	if def == nil && !fd.AutoNowAdd {
		return "", false
	}
	switch fd.Type {
	case field.TypeUUID, field.TypeText, field.TypeJSON:
		return "", true
	}
	if def != nil && reflect.TypeOf(def).Kind() == reflect.Func {
		return "", true
	}
	var escaped string
	if def != nil {
		s, err := g.EscapeDefault(def)
		if err != nil {
			return "", true
		}
		escaped = s
	}
	clause, err := g.DefaultClause(table, fd.DBColumn(), escaped, fd.AutoNowAdd, fd.AutoNow)
	if err != nil {
		return "", true
	}
	return clause, true
}
