package infra

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocStoreSaveKeepsExtensionOnly(t *testing.T) {
	store, err := NewDocStore(t.TempDir())
	require.NoError(t, err)

	key, err := store.Save("Registro Mercantil.PDF", strings.NewReader("contenido"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotContains(t, key, "Registro")

	path, err := store.Path(key)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

func TestDocStorePathRechazaTraversal(t *testing.T) {
	store, err := NewDocStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../etc/passwd", `..\windows`, "a/b.pdf"} {
		_, err := store.Path(key)
		assert.Error(t, err, key)
	}
}

func TestDocStoreRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDocStore(dir)
	require.NoError(t, err)

	key, err := store.Save("rif.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(key))
	_, err = os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is fine.
	assert.NoError(t, store.Remove(key))
}
