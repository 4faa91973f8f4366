package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "filters.smm2.year")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "filters.smm2.year", "2021"))
	require.NoError(t, kv.Set(ctx, "filters.smm2.year", "2022"))
	v, ok, err := kv.Get(ctx, "filters.smm2.year")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2022", v)

	require.NoError(t, kv.Delete(ctx, "filters.smm2.year"))
	require.NoError(t, kv.Delete(ctx, "filters.smm2.year"))
	_, ok, err = kv.Get(ctx, "filters.smm2.year")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestSQLiteKV(t *testing.T) {
	kv, err := NewSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	exerciseKV(t, kv)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.db")
	ctx := context.Background()

	kv, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "filters.smm1.min_attempts", "50"))
	require.NoError(t, kv.Close())

	kv, err = Open(path)
	require.NoError(t, err)
	defer kv.Close()
	v, ok, err := kv.Get(ctx, "filters.smm1.min_attempts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "50", v)
}

func TestOpenWithoutPathIsMemory(t *testing.T) {
	for _, path := range []string{"", MemoryPath} {
		kv, err := Open(path)
		require.NoError(t, err)
		_, isMemory := kv.(*Memory)
		assert.True(t, isMemory, "path %q", path)
	}
}
