package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simidle/simidle/internal/palette"
	"github.com/simidle/simidle/internal/store"
)

func setupTestDB(t *testing.T) (*Preferences, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "simidle.db")
	prefs, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { prefs.Close() })
	return prefs, path
}

func TestLoad_MissingKey(t *testing.T) {
	prefs, _ := setupTestDB(t)

	_, err := prefs.Load("missing")
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)
}

func TestSaveLoad(t *testing.T) {
	prefs, _ := setupTestDB(t)

	require.NoError(t, prefs.Save("k", []byte("first")))
	got, err := prefs.Load("k")
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))

	require.NoError(t, prefs.Save("k", []byte("second")))
	got, err = prefs.Load("k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestColorStoreSurvivesReopen(t *testing.T) {
	prefs, path := setupTestDB(t)

	s, err := store.New(prefs)
	require.NoError(t, err)
	s.AddColorsToPallet(palette.NewColorElement("#123456", "#ABCDEF"))
	want := s.Pallets()
	require.NoError(t, prefs.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	restored, err := store.New(reopened)
	require.NoError(t, err)
	assert.Equal(t, want, restored.Pallets())
	assert.Equal(t, "123456ABCDEF", restored.Elements()[0].ColorCode())
}
