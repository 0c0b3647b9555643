package ports

import "reqspec/internal/types"

type SpecOutputPort interface {
	WriteSpec(path string, format types.OutputFormat, spec types.RequirementsSpec) error
}

type SpecDocumentPort interface {
	ReadDocument(path string) (types.SpecDocument, error)
}
