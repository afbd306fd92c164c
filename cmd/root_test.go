package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"quad/internal/config"
)

// TestConfigValidationGate exercises the validation call runApp makes
// before building the app, for both the default and a broken config.
func TestConfigValidationGate(t *testing.T) {
	cfg = config.Defaults()
	require.NoError(t, config.Validate(cfg), "defaults should pass validation")

	cfg.Tracing.Exporter = "otlp"
	require.Error(t, config.Validate(cfg), "unsupported exporter should fail validation")
}

// TestLoadCatalog_DefaultsToSeed verifies that an empty catalog path
// falls back to the built-in seed catalog rather than erroring.
func TestLoadCatalog_DefaultsToSeed(t *testing.T) {
	cfg = config.Defaults()

	store, path, err := loadCatalog()
	require.NoError(t, err, "seed catalog should always load")
	require.Empty(t, path, "seed catalog has no file path to watch")

	_, ok := store.Lookup("CS101")
	require.True(t, ok, "seed catalog should contain CS101")
}

// TestLoadCatalog_FromFile verifies that an explicit catalog path is
// loaded and returned for watching.
func TestLoadCatalog_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	doc := `courses:
  - code: ART101
    name: Drawing Fundamentals
    credits: 2
    prerequisites: []
    description: Line, form and shading
    schedule: F 1:00-4:00 PM
    instructor: Dr. Vasari
    room: Arts Building 12
    capacity: 15
    enrolled: 3
    available: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600), "writing catalog fixture")

	cfg = config.Defaults()
	cfg.CatalogPath = path

	store, watchPath, err := loadCatalog()
	require.NoError(t, err, "valid catalog file should load")
	require.Equal(t, path, watchPath, "file-backed catalog should report its path")

	course, ok := store.Lookup("ART101")
	require.True(t, ok, "loaded catalog should contain ART101")
	require.Equal(t, "Drawing Fundamentals", course.Name, "course fields should round-trip")
}

// TestLoadCatalog_BadFileErrors verifies that a catalog path pointing
// at a missing or malformed file fails loudly instead of silently
// falling back to the seed.
func TestLoadCatalog_BadFileErrors(t *testing.T) {
	cfg = config.Defaults()
	cfg.CatalogPath = filepath.Join(t.TempDir(), "nope.yaml")

	_, _, err := loadCatalog()
	require.Error(t, err, "missing catalog file should error")

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses: [oops"), 0o600), "writing broken fixture")
	cfg.CatalogPath = path

	_, _, err = loadCatalog()
	require.Error(t, err, "malformed catalog file should error")
}
