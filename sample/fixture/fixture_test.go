package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arl/camgeo/sample/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "primitives": [
    {"type": "circle", "polarity": "dark", "center": {"X": 0, "Y": 0}, "radius": 1},
    {"type": "circle", "polarity": "clear", "center": {"X": 0, "Y": 0}, "radius": 0.5},
    {"type": "bogus"}
  ]
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesKnownEntriesAndWarnsOnUnknown(t *testing.T) {
	path := writeFixture(t, sampleJSON)
	prims, warnings, err := fixture.Load(path)
	require.NoError(t, err)
	assert.Len(t, prims, 2)
	assert.Len(t, warnings, 1)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, _, err := fixture.Load("/nonexistent/fixture.json")
	assert.Error(t, err)
}
