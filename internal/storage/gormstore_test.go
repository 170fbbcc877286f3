package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *GormStore {
	t.Helper()
	gs, err := NewGormStore(":memory:")
	require.NoError(t, err)
	return gs
}

func TestGormStoreGetMissingKey(t *testing.T) {
	gs := newMemoryStore(t)

	var out testRecord
	found, err := gs.Get("invoices", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGormStoreSetGetRoundTrip(t *testing.T) {
	gs := newMemoryStore(t)

	in := []testRecord{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, gs.Set("sales", in))

	var out []testRecord
	found, err := gs.Get("sales", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestGormStoreSetUpserts(t *testing.T) {
	gs := newMemoryStore(t)

	require.NoError(t, gs.Set("settings", testRecord{Name: "old"}))
	require.NoError(t, gs.Set("settings", testRecord{Name: "new", Count: 3}))

	var out testRecord
	found, err := gs.Get("settings", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestGormStoreDelete(t *testing.T) {
	gs := newMemoryStore(t)

	require.NoError(t, gs.Set("user", testRecord{Name: "admin"}))
	require.NoError(t, gs.Delete("user"))

	var out testRecord
	found, err := gs.Get("user", &out)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, gs.Delete("user"))
}
