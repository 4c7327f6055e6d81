package aerich

import (
	"errors"
	"fmt"
)

// ErrNoModels is returned when schema generation is requested for an
// empty model set.
var ErrNoModels = errors.New("aerich: no models to generate")

// MigrationError wraps a failed migration operation with the model and
// operation it belongs to.
type MigrationError struct {
	Model string // logical model name
	Op    string // operation, e.g. "create table"
	Err   error  // underlying error
}

// Error returns the error string.
func (e *MigrationError) Error() string {
	return fmt.Sprintf("aerich: %s %s: %v", e.Op, e.Model, e.Err)
}

// Unwrap returns the underlying error.
func (e *MigrationError) Unwrap() error {
	return e.Err
}

// IsMigrationError returns true if the error is a MigrationError.
func IsMigrationError(err error) bool {
	if err == nil {
		return false
	}
	var e *MigrationError
	return errors.As(err, &e)
}
