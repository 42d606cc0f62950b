package util

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name    string   `json:"name"`
	Entries []string `json:"entries"`
	Count   int      `json:"count"`
}

func TestWriteReadJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.json")

	written := &testDoc{Name: "techdeck", Entries: []string{"a", "b"}, Count: 2}
	require.NoError(t, WriteJson(context.Background(), path, written))

	read := &testDoc{}
	_, err := ReadJson(path, read)
	require.NoError(t, err)
	assert.Equal(t, written, read)
}

func TestWriteJson_PrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, WriteJson(context.Background(), path, &testDoc{Name: "techdeck"}))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "\n    \"name\": \"techdeck\"")
}

func TestWriteJson_OverwritesAtomically(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.json")

	require.NoError(t, WriteJson(context.Background(), path, &testDoc{Count: 1}))
	require.NoError(t, WriteJson(context.Background(), path, &testDoc{Count: 2}))

	read := &testDoc{}
	_, err := ReadJson(path, read)
	require.NoError(t, err)
	assert.Equal(t, 2, read.Count)

	// no temp leftovers
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteJson_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "doc.json")
	err := WriteJson(ctx, path, &testDoc{})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemoveJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	// removing a missing file is fine
	require.NoError(t, RemoveJson(path))

	require.NoError(t, WriteJson(context.Background(), path, &testDoc{}))
	require.NoError(t, RemoveJson(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
