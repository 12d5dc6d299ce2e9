package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileStore(path, zap.NewNop())
	require.NoError(t, err)

	_, ok := store.Get()
	assert.False(t, ok, "fresh store should have no session")

	sess := Session{
		Authenticated: true,
		ContactID:     "contact-42",
		PhoneNumber:   "317-555-0142",
		Name:          "Test Investor",
	}
	require.NoError(t, store.Set(sess))

	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, sess, got)

	// A second store on the same path sees the persisted session, the way a
	// browser reload sees localStorage.
	reloaded, err := NewFileStore(path, zap.NewNop())
	require.NoError(t, err)
	got, ok = reloaded.Get()
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, store.Set(Session{Authenticated: true, ContactID: "c1"}))
	require.NoError(t, store.Clear())

	_, ok := store.Get()
	assert.False(t, ok)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing twice is fine.
	assert.NoError(t, store.Clear())
}

func TestFileStoreIgnoresCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store, err := NewFileStore(path, zap.NewNop())
	require.NoError(t, err)
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestFileStoreIgnoresUnauthenticatedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"authenticated": false, "id": "c9"}`), 0600))

	store, err := NewFileStore(path, zap.NewNop())
	require.NoError(t, err)
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	_, ok := store.Get()
	assert.False(t, ok)

	require.NoError(t, store.Set(Session{Authenticated: true, ContactID: "mem"}))
	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "mem", got.ContactID)

	require.NoError(t, store.Clear())
	_, ok = store.Get()
	assert.False(t, ok)
}
