package datadir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTree(t *testing.T, root string) {
	t.Helper()
	for _, dir := range []string{root, filepath.Join(root, PluginsDir), filepath.Join(root, ProfilesDir), filepath.Join(root, LogsDir)} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestEnsureTree_CreatesAllDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "techdeck")

	require.NoError(t, EnsureTree(root))
	assertTree(t, root)
}

func TestEnsureTree_Idempotent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "techdeck")

	require.NoError(t, EnsureTree(root))

	// drop a marker to prove a second run leaves existing content alone
	marker := filepath.Join(root, PluginsDir, "marker.txt")
	require.NoError(t, os.WriteFile(marker, []byte("installed"), 0600))

	require.NoError(t, EnsureTree(root))
	assertTree(t, root)

	content, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "installed", string(content))
}

func TestEnsureTree_CompletesPartialTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "techdeck")
	require.NoError(t, os.MkdirAll(filepath.Join(root, LogsDir), 0750))

	require.NoError(t, EnsureTree(root))
	assertTree(t, root)
}

func TestEnsureTree_FailsWhenRootUncreatable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	err := EnsureTree(filepath.Join(blocker, "techdeck"))
	assert.Error(t, err)
}

func TestPathHelpers(t *testing.T) {
	root := filepath.Join("some", "root")
	assert.Equal(t, filepath.Join(root, "admin.config"), ConfigFile(root))
	assert.Equal(t, filepath.Join(root, LogsDir, "setup.log"), LogFile(root))
}
