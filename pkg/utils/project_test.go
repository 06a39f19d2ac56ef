package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtils_FindProjectRoot(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	// package.json at the project root
	req.NoError(os.WriteFile(filepath.Join(tempDir, "package.json"), []byte("{}"), 0644))

	// A source file nested a few directories down
	subDir := filepath.Join(tempDir, "src", "components")
	req.NoError(os.MkdirAll(subDir, 0755))

	testFile := filepath.Join(subDir, "App.tsx")
	req.NoError(os.WriteFile(testFile, []byte("export {}"), 0644))

	// Test: finds package.json in an ancestor directory
	result := FindProjectRoot(testFile)
	req.Equal(tempDir, result, "FindProjectRoot(%q)", testFile)

	// Test: directory paths work too
	result = FindProjectRoot(subDir)
	req.Equal(tempDir, result, "FindProjectRoot(%q)", subDir)
}

func TestUtils_FindProjectRoot_notFound(t *testing.T) {
	req := require.New(t)

	// A temp tree with no package.json anywhere up to the root
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "lone.js")
	req.NoError(os.WriteFile(testFile, []byte("export {}"), 0644))

	result := FindProjectRoot(testFile)
	req.Empty(result, "Expected empty string when no package.json exists")
}
