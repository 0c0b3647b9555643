package ports

import "reqspec/internal/types"

// RequirementsFilePort parses a requirements file, following nested -r and
// -c directives. Relative paths resolve against baseDir.
type RequirementsFilePort interface {
	Parse(path string, baseDir string) (types.RequirementsTxt, error)
}
