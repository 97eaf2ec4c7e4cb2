package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFailsOnMissingDataset(t *testing.T) {
	path := t.TempDir() + "/taxi.db"

	err := Init(Config{Path: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDatasetNotFound)
	assert.Contains(t, err.Error(), "run the cleaning pipeline first")

	// Refusing to start must not leave an empty dataset file behind
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
