package core

import (
	"path/filepath"

	"reqspec/internal/types"
)

const pyprojectFileName = "pyproject.toml"

// SourceFromLiteral classifies a command line requirement such as
// "flask>=2".
func SourceFromLiteral(value string) types.Source {
	return types.Source{Kind: types.SourceKindName, Value: value}
}

// SourceFromPath classifies a file by its final path component only. No
// I/O is performed; a broken pyproject.toml fails later, when read.
func SourceFromPath(path string) types.Source {
	if filepath.Base(path) == pyprojectFileName {
		return types.Source{Kind: types.SourceKindPyProjectToml, Value: path}
	}
	return types.Source{Kind: types.SourceKindRequirementsTxt, Value: path}
}

// SourcesFromLiterals and SourcesFromPaths classify a list, keeping order.
func SourcesFromLiterals(values []string) []types.Source {
	out := make([]types.Source, 0, len(values))
	for _, value := range values {
		out = append(out, SourceFromLiteral(value))
	}
	return out
}

func SourcesFromPaths(paths []string) []types.Source {
	out := make([]types.Source, 0, len(paths))
	for _, path := range paths {
		out = append(out, SourceFromPath(path))
	}
	return out
}
