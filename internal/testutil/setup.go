package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/types"
)

// LoadFixture reads a fixture file from testdata.
// Calls t.Skip if the fixture is not found.
//
// Example:
//
//	src := testutil.LoadFixture(t, testutil.FixtureSimple)
func LoadFixture(t *testing.T, relativePath string) []byte {
	t.Helper()

	data, err := os.ReadFile(ResolvePath(t, relativePath))
	if err != nil {
		t.Skipf("Fixture not readable: %v", err)
	}
	return data
}

// ParseFixture loads and parses a fixture with default options.
// Calls t.Fatal if parsing fails.
func ParseFixture(t *testing.T, relativePath string) *types.Forest {
	t.Helper()

	f, err := htmlparse.Parse(LoadFixture(t, relativePath))
	if err != nil {
		t.Fatalf("Failed to parse fixture %s: %v", relativePath, err)
	}
	return f
}

// WriteTempHTML writes content to a file in the test's temp directory and
// returns its path.
func WriteTempHTML(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

// ResolvePath attempts to find a fixture file by trying multiple path
// resolutions. This handles the fact that tests may be run from different
// working directories.
func ResolvePath(t *testing.T, relativePath string) string {
	t.Helper()

	candidates := []string{
		relativePath,               // Direct path (from repo root)
		"../" + relativePath,       // From package one level deep
		"../../" + relativePath,    // From package two levels deep (e.g., pkg/walk/)
		"../../../" + relativePath, // From package three levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}
