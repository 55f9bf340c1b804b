package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "payload.html")
	require.NoError(t, os.WriteFile(name, []byte("<html></html>"), 0644))

	data, err := New().ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	_, err = New().ReadFile(filepath.Join(dir, "missing.html"))
	assert.Error(t, err)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "payload.html")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0644))

	ok, err := New().FileExists(name)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = New().FileExists(filepath.Join(dir, "missing.html"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = New().FileExists(dir)
	require.NoError(t, err)
	assert.False(t, ok)
}
