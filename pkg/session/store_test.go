package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		sess *Session
		want bool
	}{
		{name: "nil session", sess: nil, want: false},
		{name: "empty session", sess: &Session{}, want: false},
		{name: "token without artisan", sess: &Session{AccessToken: "t"}, want: false},
		{name: "artisan without token", sess: &Session{ArtisanID: 1}, want: false},
		{name: "complete session", sess: &Session{AccessToken: "t", ArtisanID: 1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sess.Authenticated())
		})
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	// Nothing saved yet: not logged in, not an error.
	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)

	saved := &Session{
		AccessToken:  "acc-1",
		RefreshToken: "ref-1",
		ArtisanID:    7,
		ArtisanEmail: "amina@example.com",
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, loaded)

	require.NoError(t, store.Clear())
	sess, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	store := NewFileStore(dir)

	require.NoError(t, store.Save(&Session{AccessToken: "t", ArtisanID: 1}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
}

func TestFileStorePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.Save(&Session{AccessToken: "t", ArtisanID: 1}))

	info, err := os.Stat(filepath.Join(dir, "session.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStoreIgnoresIncompleteSession(t *testing.T) {
	dir := t.TempDir()
	// A file without a token must read back as "not logged in".
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.yaml"),
		[]byte("artisan_id: 7\n"), 0600))

	store := NewFileStore(dir)
	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestFileStoreClearMissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir())
	assert.NoError(t, store.Clear())
}

func TestMemStoreCopies(t *testing.T) {
	store := NewMemStore()

	sess := &Session{AccessToken: "t", ArtisanID: 1}
	require.NoError(t, store.Save(sess))

	// The caller's copy must not alias the stored one.
	sess.AccessToken = "changed"
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "t", loaded.AccessToken)

	loaded.AccessToken = "also changed"
	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "t", again.AccessToken)

	require.NoError(t, store.Clear())
	gone, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, gone)
}
