package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()

	_, err := s.Get("cart")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set("cart", []byte(`[{"size":"M"}]`)))

	got, err := s.Get("cart")
	require.NoError(t, err)
	require.JSONEq(t, `[{"size":"M"}]`, string(got))

	require.NoError(t, s.Set("cart", []byte(`[]`)))
	got, err = s.Get("cart")
	require.NoError(t, err)
	require.Equal(t, "[]", string(got))

	require.NoError(t, s.Delete("cart"))
	_, err = s.Get("cart")
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is a no-op.
	require.NoError(t, s.Delete("cart"))
}

func TestMemoryStore(t *testing.T) {
	testStoreRoundTrip(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	testStoreRoundTrip(t, s)
}

func TestFileStoreWritesReadableJSONFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("checkoutData", []byte(`[]`)))

	data, err := os.ReadFile(filepath.Join(dir, "checkoutData.json"))
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("../escape", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("cart", []byte(`["a"]`)))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := reopened.Get("cart")
	require.NoError(t, err)
	require.Equal(t, `["a"]`, string(got))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	value := []byte(`[1]`)
	require.NoError(t, s.Set("cart", value))
	value[1] = '9'

	got, err := s.Get("cart")
	require.NoError(t, err)
	require.Equal(t, `[1]`, string(got))
}
