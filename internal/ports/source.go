package ports

import (
	"context"

	"reqspec/internal/policies"
	"reqspec/internal/types"
)

// SourceReaderPort converts one classified source into a partial spec.
type SourceReaderPort interface {
	ReadSource(ctx context.Context, source types.Source, extras policies.ExtrasPolicy) (types.RequirementsSpec, error)
}
