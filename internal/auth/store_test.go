package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	store := NewFileStore(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	s := &Session{
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
		User:         User{ID: "u1", Email: "ann@x.com"},
	}
	require.NoError(t, store.Save(s))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, s.RefreshToken, loaded.RefreshToken)
	assert.Equal(t, s.User, loaded.User)
	assert.True(t, s.ExpiresAt.Equal(loaded.ExpiresAt))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accessToken: [unclosed"), 0600))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}

func TestMemoryStore_Copies(t *testing.T) {
	s := &Session{AccessToken: "at"}
	store := NewMemoryStore(s)

	s.AccessToken = "mutated"
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "at", loaded.AccessToken)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
