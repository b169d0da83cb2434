package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token")
}

func TestTokenStoreRoundTrip(t *testing.T) {
	path := tokenPath(t)

	store := NewTokenStore(path)
	assert.Empty(t, store.Get())

	require.NoError(t, store.Set("abc123"))
	assert.Equal(t, "abc123", store.Get())

	// A fresh store over the same file sees the persisted token.
	reopened := NewTokenStore(path)
	assert.Equal(t, "abc123", reopened.Get())
}

func TestTokenStoreTrimsStoredToken(t *testing.T) {
	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("abc123\n"), 0o600))

	store := NewTokenStore(path)
	assert.Equal(t, "abc123", store.Get())
}

func TestTokenStoreClear(t *testing.T) {
	path := tokenPath(t)

	store := NewTokenStore(path)
	require.NoError(t, store.Set("abc123"))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Get())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestTokenStoreFileMode(t *testing.T) {
	path := tokenPath(t)

	store := NewTokenStore(path)
	require.NoError(t, store.Set("abc123"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
