package adapters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqspec/internal/types"
)

const samplePyProject = `[build-system]
requires = ["hatchling"]

[project]
name = "demo"
version = "0.1.0"
dependencies = ["flask>=2", "requests"]

[project.optional-dependencies]
dev = ["pytest"]
docs = ["sphinx", "furo"]

[tool.ruff]
line-length = 100
`

func TestPyProjectReadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	writeFile(t, path, samplePyProject)

	adapter, err := NewPyProjectFileAdapter()
	require.NoError(t, err)

	manifest, err := adapter.ReadManifest(path)
	require.NoError(t, err)
	require.NotNil(t, manifest.Project)

	want := types.PyProjectProject{
		Name:         "demo",
		Dependencies: []string{"flask>=2", "requests"},
		OptionalDependencies: map[string][]string{
			"dev":  {"pytest"},
			"docs": {"sphinx", "furo"},
		},
	}
	if diff := cmp.Diff(want, *manifest.Project); diff != "" {
		t.Fatalf("unexpected project (-want +got):\n%s", diff)
	}
}

func TestPyProjectWithoutProjectTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	writeFile(t, path, "[tool.black]\nline-length = 88\n")

	adapter, err := NewPyProjectFileAdapter()
	require.NoError(t, err)

	manifest, err := adapter.ReadManifest(path)
	require.NoError(t, err)
	assert.Nil(t, manifest.Project)
}

func TestPyProjectReadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "pyproject.toml")
	writeFile(t, broken, "[project\nname = ")

	adapter, err := NewPyProjectFileAdapter()
	require.NoError(t, err)

	_, err = adapter.ReadManifest(broken)
	var sourceErr *types.SourceError
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, types.ErrorKindToml, sourceErr.Kind)
	assert.Equal(t, broken, sourceErr.Source)

	missing := filepath.Join(dir, "missing", "pyproject.toml")
	_, err = adapter.ReadManifest(missing)
	require.ErrorAs(t, err, &sourceErr)
	assert.Equal(t, types.ErrorKindIO, sourceErr.Kind)
	assert.Equal(t, missing, sourceErr.Source)
	assert.Equal(t, 0, adapter.Len())
}

func TestPyProjectCacheInvalidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	writeFile(t, path, samplePyProject)

	adapter, err := NewPyProjectFileAdapter()
	require.NoError(t, err)

	first, err := adapter.ReadManifest(path)
	require.NoError(t, err)
	second, err := adapter.ReadManifest(path)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached read differs (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, adapter.Len())

	writeFile(t, path, "[project]\nname = \"renamed\"\n")
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	updated, err := adapter.ReadManifest(path)
	require.NoError(t, err)
	require.NotNil(t, updated.Project)
	assert.Equal(t, "renamed", updated.Project.Name)
	assert.Empty(t, updated.Project.Dependencies)
}

func TestPyProjectCacheSize(t *testing.T) {
	_, err := NewPyProjectFileAdapterWithSize(0)
	require.Error(t, err)

	adapter, err := NewPyProjectFileAdapterWithSize(1)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"a", "b"} {
		path := filepath.Join(dir, name, "pyproject.toml")
		writeFile(t, path, "[project]\nname = \""+name+"\"\n")
		_, err := adapter.ReadManifest(path)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, adapter.Len())
}
