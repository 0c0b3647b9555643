package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"reqspec/internal/policies"
	"reqspec/internal/ports"
	"reqspec/internal/types"
)

// SpecMerger combines requirement, constraint and override sources into a
// single spec.
type SpecMerger struct {
	Reader ports.SourceReaderPort
}

func NewSpecMerger(reader ports.SourceReaderPort) SpecMerger {
	return SpecMerger{Reader: reader}
}

// FromSources reads every source in order and stops at the first error,
// in which case the zero spec is returned.
//
// Requirement sources contribute each of their categories to the matching
// category, union their extras, and the first one naming a project wins.
// Constraint and override sources are flattened: everything they yield
// lands in Constraints or Overrides respectively, and their project and
// extras are dropped.
func (m SpecMerger) FromSources(ctx context.Context, requirements []types.Source, constraints []types.Source, overrides []types.Source, extras policies.ExtrasPolicy) (types.RequirementsSpec, error) {
	spec := types.RequirementsSpec{Extras: types.ExtraSet{}}

	// A requirements file can carry -c directives, so requirement sources
	// may add constraints too.
	for _, source := range requirements {
		part, err := m.read(ctx, source, extras)
		if err != nil {
			return types.RequirementsSpec{}, err
		}
		spec.Requirements = append(spec.Requirements, part.Requirements...)
		spec.Constraints = append(spec.Constraints, part.Constraints...)
		spec.Overrides = append(spec.Overrides, part.Overrides...)
		for extra := range part.Extras {
			spec.Extras[extra] = struct{}{}
		}
		if spec.Project == "" {
			spec.Project = part.Project
		}
	}

	for _, source := range constraints {
		part, err := m.read(ctx, source, extras)
		if err != nil {
			return types.RequirementsSpec{}, err
		}
		spec.Constraints = append(spec.Constraints, part.Requirements...)
		spec.Constraints = append(spec.Constraints, part.Constraints...)
		spec.Constraints = append(spec.Constraints, part.Overrides...)
	}

	for _, source := range overrides {
		part, err := m.read(ctx, source, extras)
		if err != nil {
			return types.RequirementsSpec{}, err
		}
		spec.Overrides = append(spec.Overrides, part.Requirements...)
		spec.Overrides = append(spec.Overrides, part.Constraints...)
		spec.Overrides = append(spec.Overrides, part.Overrides...)
	}

	log.Ctx(ctx).Debug().
		Str("project", string(spec.Project)).
		Int("requirements", len(spec.Requirements)).
		Int("constraints", len(spec.Constraints)).
		Int("overrides", len(spec.Overrides)).
		Int("extras", len(spec.Extras)).
		Msg("sources merged")
	return spec, nil
}

// Requirements returns only the requirements of the given sources, with no
// constraints, overrides or extras.
func (m SpecMerger) Requirements(ctx context.Context, sources []types.Source) ([]types.Requirement, error) {
	spec, err := m.FromSources(ctx, sources, nil, nil, policies.NoExtras())
	if err != nil {
		return nil, err
	}
	return spec.Requirements, nil
}

func (m SpecMerger) read(ctx context.Context, source types.Source, extras policies.ExtrasPolicy) (types.RequirementsSpec, error) {
	assert.NotEmpty(ctx, string(source.Kind), "source kind must be set")
	part, err := m.Reader.ReadSource(ctx, source, extras)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("source", source.Value).Msg("source failed")
		return types.RequirementsSpec{}, err
	}
	return part, nil
}
