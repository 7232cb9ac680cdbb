package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dimitrije/ticketdesk-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s, err := Open(context.Background(), &config.Config{Storage: config.StorageFile, DataFile: path})
	require.NoError(t, err)
	defer s.Close()

	fs, ok := s.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path())
	assert.FileExists(t, path)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Storage: "memory"})
	assert.Error(t, err)
}
