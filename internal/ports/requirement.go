package ports

import "reqspec/internal/types"

// RequirementParserPort turns a single PEP 508 string into a Requirement.
type RequirementParserPort interface {
	ParseRequirement(raw string) (types.Requirement, error)
}
