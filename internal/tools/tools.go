// Package tools holds helpers shared by the tests of the other packages.
package tools

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ModuleRoot returns the nearest directory at or above dir that holds a go.mod.
func ModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod above %s: %w", dir, os.ErrNotExist)
		}
		dir = parent
	}
}

// TestDataPath finds the fixture name in the module's testdata directory, wherever in the module
// the test runs from.
func TestDataPath(name string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := ModuleRoot(wd)
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, "testdata", name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("fixture %s: %w", name, err)
	}
	return path, nil
}

// TestDataFile is TestDataPath for tests; a missing fixture fails the test immediately.
func TestDataFile(t testing.TB, name string) string {
	t.Helper()
	path, err := TestDataPath(name)
	require.NoError(t, err)
	return path
}
