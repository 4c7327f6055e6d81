// Package aerich generates and records SQL schema migrations from model
// metadata. The ddl package compiles individual schema changes, sqlgen
// renders dialect-specific fragments and names, migrate writes versioned
// migration files, and dialect/sql applies them to a live database.
package aerich

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/LanceMoe/aerich/ddl"
	"github.com/LanceMoe/aerich/dialect"
	"github.com/LanceMoe/aerich/migrate"
	"github.com/LanceMoe/aerich/schema"
)

// A Generator compiles the schema of a model set into DDL statements and
// optionally records them as a versioned migration.
type Generator struct {
	ddl    ddl.DDL
	writer *migrate.Writer
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithWriter records generated statements through the given migration
// writer.
func WithWriter(w *migrate.Writer) GeneratorOption {
	return func(g *Generator) { g.writer = w }
}

// NewGenerator returns a Generator for the given dialect.
func NewGenerator(dialectName string, opts ...GeneratorOption) (*Generator, error) {
	d, err := ddl.New(dialectName)
	if err != nil {
		return nil, err
	}
	g := &Generator{ddl: d}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// DDL returns the compiler backing the generator, for callers emitting
// individual schema-change statements.
func (g *Generator) DDL() ddl.DDL {
	return g.ddl
}

// InitSchema compiles CREATE TABLE statements for all models. Models are
// compiled concurrently, but the returned statements keep the input
// order so regenerating is deterministic. When a writer is configured,
// the statements are also recorded as an "init" migration.
func (g *Generator) InitSchema(ctx context.Context, models []*schema.Model) ([]string, error) {
	if len(models) == 0 {
		return nil, ErrNoModels
	}
	stmts := make([]string, len(models))
	eg, _ := errgroup.WithContext(ctx)
	for i, m := range models {
		eg.Go(func() error {
			s, err := g.ddl.CreateTable(m)
			if err != nil {
				return &MigrationError{Model: m.Name, Op: "create table", Err: err}
			}
			stmts[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if g.writer != nil {
		if err := g.writer.Write("init", stmts); err != nil {
			return nil, err
		}
	}
	return stmts, nil
}

// Apply executes the given statements in one transaction, rolling back on
// the first failure.
func Apply(ctx context.Context, drv dialect.Driver, stmts []string) error {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("aerich: begin transaction: %w", err)
	}
	for _, s := range stmts {
		if err := tx.Exec(ctx, s, []any{}, nil); err != nil {
			return errors.Join(fmt.Errorf("aerich: apply %q: %w", s, err), tx.Rollback())
		}
	}
	return tx.Commit()
}
