package services

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/dimitrije/ticketdesk-api/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	s, err := store.OpenFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string {
	return &s
}

func rawJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
