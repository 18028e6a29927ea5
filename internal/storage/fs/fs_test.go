package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates storage with valid path", func(t *testing.T) {
		tmpDir := t.TempDir()
		storage, err := New(tmpDir)

		require.NoError(t, err)
		assert.Equal(t, tmpDir, storage.rootPath)

		_, err = os.Stat(tmpDir)
		assert.NoError(t, err)
	})

	t.Run("creates nested directories", func(t *testing.T) {
		nestedPath := filepath.Join(t.TempDir(), "a", "b", "c")

		_, err := New(nestedPath)

		require.NoError(t, err)
		_, err = os.Stat(nestedPath)
		assert.NoError(t, err)
	})

	t.Run("cleans path to prevent traversal", func(t *testing.T) {
		tmpDir := t.TempDir()
		dirtyPath := filepath.Join(tmpDir, "uploads", "..", "uploads")

		storage, err := New(dirtyPath)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "uploads"), storage.rootPath)
	})
}

func TestSave(t *testing.T) {
	t.Run("saves file successfully", func(t *testing.T) {
		storage, err := New(t.TempDir())
		require.NoError(t, err)

		content := []byte("test file content")

		name, err := storage.Save(bytes.NewReader(content), "jpg")

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".jpg"))

		saved, err := os.ReadFile(filepath.Join(storage.rootPath, name))
		require.NoError(t, err)
		assert.Equal(t, content, saved)
	})

	t.Run("generates unique filenames", func(t *testing.T) {
		storage, err := New(t.TempDir())
		require.NoError(t, err)

		content := []byte("test")

		name1, err := storage.Save(bytes.NewReader(content), "png")
		require.NoError(t, err)
		name2, err := storage.Save(bytes.NewReader(content), "png")
		require.NoError(t, err)

		assert.NotEqual(t, name1, name2)

		_, err = os.Stat(filepath.Join(storage.rootPath, name1))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(storage.rootPath, name2))
		assert.NoError(t, err)
	})
}

func TestRead(t *testing.T) {
	storage, err := New(t.TempDir())
	require.NoError(t, err)

	content := []byte("media bytes")
	name, err := storage.Save(bytes.NewReader(content), "gif")
	require.NoError(t, err)

	reader, err := storage.Read(name)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = storage.Read("missing.gif")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	t.Run("deletes existing file", func(t *testing.T) {
		storage, err := New(t.TempDir())
		require.NoError(t, err)

		name, err := storage.Save(bytes.NewReader([]byte("x")), "mp4")
		require.NoError(t, err)

		require.NoError(t, storage.Delete(name))

		_, err = os.Stat(filepath.Join(storage.rootPath, name))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("deleting a missing file is not an error", func(t *testing.T) {
		storage, err := New(t.TempDir())
		require.NoError(t, err)

		assert.NoError(t, storage.Delete("never-existed.jpg"))
		assert.NoError(t, storage.Delete("never-existed.jpg"))
	})
}
