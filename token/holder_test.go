package token_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jobmatch/webclient/token"
	"github.com/jobmatch/webclient/token/storefake"
	"github.com/stretchr/testify/require"
)

func TestHolderRoundTrip(t *testing.T) {
	h := token.NewHolder(storefake.NewFakeStore())

	require.Empty(t, h.Get())

	h.Set("tok-123")
	require.Equal(t, "tok-123", h.Get())

	h.Set("")
	require.Empty(t, h.Get())
}

func TestHolderWritesThroughToAllStores(t *testing.T) {
	primary := storefake.NewFakeStore()
	secondary := storefake.NewFakeStore()
	h := token.NewHolder(primary, secondary)

	h.Set("tok-abc")
	require.Equal(t, "tok-abc", primary.Value())
	require.Equal(t, "tok-abc", secondary.Value())

	h.Set("")
	require.Empty(t, primary.Value())
	require.Empty(t, secondary.Value())
}

func TestHolderLazyLoadsPersistedValue(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.Save("persisted"))

	h := token.NewHolder(store)
	require.Equal(t, "persisted", h.Get())
}

func TestHolderStorageFailureDegradesToAbsent(t *testing.T) {
	store := storefake.NewFakeStore()
	require.NoError(t, store.Save("unreachable"))
	store.FailLoad = true

	h := token.NewHolder(store)
	require.Empty(t, h.Get())
}

func TestHolderSaveFailureKeepsInMemoryValue(t *testing.T) {
	store := storefake.NewFakeStore()
	store.FailSave = true

	h := token.NewHolder(store)
	h.Set("tok-xyz")

	// The very next call must still see the new value even though
	// persistence failed.
	require.Equal(t, "tok-xyz", h.Get())
	require.Empty(t, store.Value())
}

func TestHolderLoadFallsBackToSecondStore(t *testing.T) {
	primary := storefake.NewFakeStore()
	primary.FailLoad = true
	secondary := storefake.NewFakeStore()
	require.NoError(t, secondary.Save("from-secondary"))

	h := token.NewHolder(primary, secondary)
	require.Equal(t, "from-secondary", h.Get())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "token")
	store := token.NewFileStore(path)

	value, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, value)

	require.NoError(t, store.Save("tok-file"))
	value, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "tok-file", value)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	value, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, value)

	// Clearing again is a no-op.
	require.NoError(t, store.Clear())
}
