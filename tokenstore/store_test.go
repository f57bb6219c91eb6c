package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", dbFilename))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": openSQLite(t),
	}
}

func TestStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var missing string
			ok, err := s.Get(ctx, "k", &missing)
			require.NoError(t, err)
			assert.False(t, ok)

			type prefs struct {
				Theme string `json:"theme"`
				Size  int    `json:"size"`
			}
			require.NoError(t, s.Set(ctx, "k", prefs{Theme: "red", Size: 2}))
			require.NoError(t, s.Set(ctx, "k", prefs{Theme: "blue", Size: 3}))

			var got prefs
			ok, err = s.Get(ctx, "k", &got)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, prefs{Theme: "blue", Size: 3}, got)

			require.NoError(t, s.Remove(ctx, "k"))
			require.NoError(t, s.Remove(ctx, "k"))
			ok, err = s.Get(ctx, "k", &got)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestTokenHelpers(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			tok, err := GetToken(ctx, s)
			require.NoError(t, err)
			assert.Empty(t, tok)

			require.NoError(t, SetToken(ctx, s, "abc123"))
			tok, err = GetToken(ctx, s)
			require.NoError(t, err)
			assert.Equal(t, "abc123", tok)

			require.NoError(t, RemoveToken(ctx, s))
			tok, err = GetToken(ctx, s)
			require.NoError(t, err)
			assert.Empty(t, tok)
		})
	}
}

func TestSQLite_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), dbFilename)
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, SetToken(ctx, s, "persisted"))
	require.NoError(t, s.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()
	tok, err := GetToken(ctx, s2)
	require.NoError(t, err)
	assert.Equal(t, "persisted", tok)
}

func TestDefaultPath_Override(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(envHome, tmp)

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, dbFilename), p)
}
