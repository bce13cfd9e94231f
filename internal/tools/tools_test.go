package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleRoot(t *testing.T) {
	root, err := ModuleRoot(".")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
	assert.DirExists(t, filepath.Join(root, "internal", "tools"))

	// a directory with no go.mod anywhere above it
	_, err = ModuleRoot(string(filepath.Separator))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTestDataPath(t *testing.T) {
	path, err := TestDataPath("example.yaml")
	require.NoError(t, err)
	assert.Equal(t, "testdata", filepath.Base(filepath.Dir(path)))
	assert.FileExists(t, path)

	_, err = TestDataPath("queso-0.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTestDataFile(t *testing.T) {
	assert.FileExists(t, TestDataFile(t, "ends_in_ab.json"))
}
