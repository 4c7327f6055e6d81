// Package migrate records compiled DDL statements as versioned migration
// files. It builds on the atlas migrate directory format: every write
// produces one or more migration files through a pluggable formatter and
// refreshes the atlas.sum integrity file.
package migrate

import (
	"errors"
	"fmt"
	"time"

	atlas "ariga.io/atlas/sql/migrate"
	"ariga.io/atlas/sql/sqltool"
)

// A Writer plans and writes migration files into a migration directory.
type Writer struct {
	dir atlas.Dir
	fmt atlas.Formatter
	now func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithFormatter sets the migration file formatter. When omitted, the
// formatter is derived from the directory implementation.
func WithFormatter(f atlas.Formatter) Option {
	return func(w *Writer) { w.fmt = f }
}

// WithClock sets the clock used for version stamps. Tests use it to pin
// versions.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

// NewWriter returns a Writer recording migrations in the given directory.
func NewWriter(dir atlas.Dir, opts ...Option) (*Writer, error) {
	if dir == nil {
		return nil, errors.New("aerich: migrate: nil migration directory")
	}
	w := &Writer{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	if w.fmt == nil {
		w.fmt = formatterFor(dir)
	}
	return w, nil
}

// New returns a Writer recording migrations in a local directory,
// creating it if necessary.
func New(path string, opts ...Option) (*Writer, error) {
	dir, err := atlas.NewLocalDir(path)
	if err != nil {
		return nil, fmt.Errorf("aerich: migrate: open directory: %w", err)
	}
	return NewWriter(dir, opts...)
}

// Write records the given statements as one named, timestamp-versioned
// migration.
func (w *Writer) Write(name string, stmts []string) error {
	if len(stmts) == 0 {
		return errors.New("aerich: migrate: no statements to record")
	}
	changes := make([]*atlas.Change, len(stmts))
	for i, s := range stmts {
		changes[i] = &atlas.Change{Cmd: s}
	}
	return w.WritePlan(&atlas.Plan{
		Version: w.now().UTC().Format("20060102150405"),
		Name:    name,
		Changes: changes,
	})
}

// WritePlan formats a prepared plan into the directory and refreshes the
// checksum file.
func (w *Writer) WritePlan(plan *atlas.Plan) error {
	files, err := w.fmt.Format(plan)
	if err != nil {
		return fmt.Errorf("aerich: migrate: format plan %q: %w", plan.Name, err)
	}
	for _, f := range files {
		if err := w.dir.WriteFile(f.Name(), f.Bytes()); err != nil {
			return fmt.Errorf("aerich: migrate: write %q: %w", f.Name(), err)
		}
	}
	sum, err := w.dir.Checksum()
	if err != nil {
		return fmt.Errorf("aerich: migrate: checksum: %w", err)
	}
	if err := atlas.WriteSumFile(w.dir, sum); err != nil {
		return fmt.Errorf("aerich: migrate: write sum file: %w", err)
	}
	return nil
}

// formatterFor picks the formatter matching the migration directory
// implementation, defaulting to the golang-migrate format.
func formatterFor(dir atlas.Dir) atlas.Formatter {
	switch dir.(type) {
	case *sqltool.GooseDir:
		return sqltool.GooseFormatter
	case *sqltool.DBMateDir:
		return sqltool.DBMateFormatter
	case *sqltool.FlywayDir:
		return sqltool.FlywayFormatter
	case *sqltool.LiquibaseDir:
		return sqltool.LiquibaseFormatter
	default:
		return sqltool.GolangMigrateFormatter
	}
}
