package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreGetMissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out testRecord
	found, err := fs.Get("companies", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreSetGetRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := []testRecord{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, fs.Set("products", in))

	var out []testRecord
	found, err := fs.Get("products", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestFileStoreSetOverwrites(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Set("settings", testRecord{Name: "old"}))
	require.NoError(t, fs.Set("settings", testRecord{Name: "new"}))

	var out testRecord
	found, err := fs.Get("settings", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", out.Name)
}

func TestFileStoreDelete(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Set("user", testRecord{Name: "admin"}))
	require.NoError(t, fs.Delete("user"))

	_, err = os.Stat(filepath.Join(dir, "user.json"))
	assert.True(t, os.IsNotExist(err))

	// Deleting a key that was never written is fine.
	assert.NoError(t, fs.Delete("user"))
}

func TestFileStoreCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
