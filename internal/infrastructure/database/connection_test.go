package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminkit/internal/shared/config"
)

func TestInit_ReturnsHandle(t *testing.T) {
	db, err := Init(&config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	require.NoError(t, Close(db))
}

func TestInit_UnsupportedDriver(t *testing.T) {
	db, err := Init(&config.DatabaseConfig{Driver: "postgres"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestClose_NilHandle(t *testing.T) {
	assert.NoError(t, Close(nil))
}
