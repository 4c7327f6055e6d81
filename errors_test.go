package aerich_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LanceMoe/aerich"
)

func TestMigrationError(t *testing.T) {
	cause := errors.New("boom")
	err := &aerich.MigrationError{Model: "User", Op: "create table", Err: cause}
	assert.Equal(t, "aerich: create table User: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, aerich.IsMigrationError(wrapped))
	assert.False(t, aerich.IsMigrationError(cause))
	assert.False(t, aerich.IsMigrationError(nil))
}

func TestErrNoModels(t *testing.T) {
	require.EqualError(t, aerich.ErrNoModels, "aerich: no models to generate")
}
