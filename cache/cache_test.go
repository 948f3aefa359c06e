package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(filepath.Join(dir, "cache.db"))
	require.Nil(t, err)

	b, err := c.Get("missing")
	require.Nil(t, err)
	assert.Nil(t, b)

	require.Nil(t, c.Put("a", []byte{1, 2, 3}))
	require.Nil(t, c.Put("a", []byte{4, 5}))

	b, err = c.Get("a")
	require.Nil(t, err)
	assert.Equal(t, []byte{4, 5}, b)

	require.Nil(t, c.Close())

	// Survives reopening
	c, err = Open(filepath.Join(dir, "cache.db"))
	require.Nil(t, err)
	defer c.Close()

	b, err = c.Get("a")
	require.Nil(t, err)
	assert.Equal(t, []byte{4, 5}, b)
}

func TestKey(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.png")
	f2 := filepath.Join(dir, "b.png")
	require.Nil(t, os.WriteFile(f1, []byte("one"), 0644))
	require.Nil(t, os.WriteFile(f2, []byte("two"), 0644))

	k1, err := Key(f1, 0)
	require.Nil(t, err)
	k1again, err := Key(f1, 0)
	require.Nil(t, err)
	k1colors, err := Key(f1, 16)
	require.Nil(t, err)
	k2, err := Key(f2, 0)
	require.Nil(t, err)

	assert.Equal(t, k1, k1again)
	assert.NotEqual(t, k1, k1colors)
	assert.NotEqual(t, k1, k2)
	assert.Len(t, k1, 64+2)

	_, err = Key(filepath.Join(dir, "missing.png"), 0)
	assert.True(t, os.IsNotExist(err))
}
