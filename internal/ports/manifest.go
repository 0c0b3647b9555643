package ports

import "reqspec/internal/types"

// ManifestPort reads and decodes a pyproject.toml file.
type ManifestPort interface {
	ReadManifest(path string) (types.PyProject, error)
}
