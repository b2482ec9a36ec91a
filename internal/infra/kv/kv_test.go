package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.Set(ctx, "quote:1", "uno"))
	require.NoError(t, s.Set(ctx, "quote:2", "dos"))

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"quote:1", "quote:2"}, keys)

	got, err := s.GetMulti(ctx, []string{"quote:1", "quote:2", "quote:missing"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"quote:1": "uno", "quote:2": "dos"}, got)

	// writes never clobber other keys
	require.NoError(t, s.Set(ctx, "quote:3", "tres"))
	got, err = s.GetMulti(ctx, []string{"quote:1", "quote:2"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestDir(t *testing.T) {
	s, err := NewDir(t.TempDir())
	require.NoError(t, err)
	testStore(t, s)
}

func TestDirSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewDir(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "quote:1700000000000", `{"reference":"A"}`))

	s2, err := NewDir(dir)
	require.NoError(t, err)
	got, err := s2.GetMulti(ctx, []string{"quote:1700000000000"})
	require.NoError(t, err)
	assert.Equal(t, `{"reference":"A"}`, got["quote:1700000000000"])
}
