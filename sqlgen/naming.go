package sqlgen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LanceMoe/aerich/schema"
)

// Generated names must stay under common identifier limits (Oracle-era
// 30 chars), hence the truncated parts plus a short hash for uniqueness.

// IndexName derives the name of an index from its kind tag, table and
// ordered field list. The same inputs always produce the same name, so a
// later drop finds the index without persisting anything.
func (g *generator) IndexName(kind string, m *schema.Model, fields []string) string {
	args := append([]string{m.Table}, fields...)
	return fmt.Sprintf("%s_%s_%s_%s", kind, trunc(m.Table, 11), trunc(fields[0], 7), makeHash(6, args...))
}

// FKName derives the name of a foreign-key constraint from the source and
// target (table, column) pairs.
func (g *generator) FKName(fromTable, fromColumn, toTable, toColumn string) string {
	return fmt.Sprintf("fk_%s_%s_%s",
		trunc(fromTable, 8), trunc(toTable, 8),
		makeHash(8, fromTable, fromColumn, toTable, toColumn))
}

func makeHash(n int, args ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(args, ";")))
	return hex.EncodeToString(sum[:])[:n]
}

func trunc(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
