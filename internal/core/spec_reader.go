package core

import (
	"context"
	"errors"
	"fmt"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"reqspec/internal/policies"
	"reqspec/internal/ports"
	"reqspec/internal/shared"
	"reqspec/internal/types"
)

// SpecReader converts one classified source into a partial spec.
type SpecReader struct {
	Parser          ports.RequirementParserPort
	RequirementsTxt ports.RequirementsFilePort
	Manifests       ports.ManifestPort
	// WorkingDir is the base for relative requirements file paths.
	WorkingDir string
}

func NewSpecReader(parser ports.RequirementParserPort, requirementsTxt ports.RequirementsFilePort, manifests ports.ManifestPort, workingDir string) SpecReader {
	return SpecReader{
		Parser:          parser,
		RequirementsTxt: requirementsTxt,
		Manifests:       manifests,
		WorkingDir:      workingDir,
	}
}

func (r SpecReader) ReadSource(ctx context.Context, source types.Source, extras policies.ExtrasPolicy) (types.RequirementsSpec, error) {
	var (
		spec types.RequirementsSpec
		err  error
	)
	switch source.Kind {
	case types.SourceKindName:
		spec, err = r.readName(source.Value)
	case types.SourceKindRequirementsTxt:
		spec, err = r.readRequirementsTxt(source.Value)
	case types.SourceKindPyProjectToml:
		spec, err = r.readPyProject(ctx, source.Value, extras)
	default:
		return types.RequirementsSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported source kind %q for %s", source.Kind, source.Value))
	}
	if err != nil {
		return types.RequirementsSpec{}, err
	}
	log.Ctx(ctx).Debug().
		Str("kind", string(source.Kind)).
		Str("source", source.Value).
		Int("requirements", len(spec.Requirements)).
		Int("constraints", len(spec.Constraints)).
		Msg("source read")
	return spec, nil
}

func (r SpecReader) readName(value string) (types.RequirementsSpec, error) {
	requirement, err := r.Parser.ParseRequirement(value)
	if err != nil {
		return types.RequirementsSpec{}, shared.NewSourceError(
			types.ErrorKindParse, value, fmt.Sprintf("failed to parse `%s`", value), err)
	}
	return types.RequirementsSpec{
		Requirements: []types.Requirement{requirement},
		Extras:       types.ExtraSet{},
	}, nil
}

// readRequirementsTxt ignores the extras policy; requirements files never
// contribute extras.
func (r SpecReader) readRequirementsTxt(path string) (types.RequirementsSpec, error) {
	parsed, err := r.RequirementsTxt.Parse(path, r.WorkingDir)
	if err != nil {
		var sourceErr *types.SourceError
		if errors.As(err, &sourceErr) {
			return types.RequirementsSpec{}, err
		}
		return types.RequirementsSpec{}, shared.NewSourceError(
			types.ErrorKindParse, path, fmt.Sprintf("failed to parse `%s`", path), err)
	}
	requirements := make([]types.Requirement, 0, len(parsed.Requirements))
	for _, entry := range parsed.Requirements {
		requirements = append(requirements, entry.Requirement)
	}
	return types.RequirementsSpec{
		Requirements: requirements,
		Constraints:  append([]types.Requirement(nil), parsed.Constraints...),
		Extras:       types.ExtraSet{},
	}, nil
}

func (r SpecReader) readPyProject(ctx context.Context, path string, extras policies.ExtrasPolicy) (types.RequirementsSpec, error) {
	manifest, err := r.Manifests.ReadManifest(path)
	if err != nil {
		var sourceErr *types.SourceError
		if errors.As(err, &sourceErr) {
			return types.RequirementsSpec{}, err
		}
		return types.RequirementsSpec{}, shared.NewSourceError(
			types.ErrorKindIO, path, fmt.Sprintf("failed to read `%s`", path), err)
	}
	spec := types.RequirementsSpec{Extras: types.ExtraSet{}}
	project := manifest.Project
	if project == nil {
		return spec, nil
	}

	name, err := NewPackageName(project.Name)
	if err != nil {
		return types.RequirementsSpec{}, shared.NewSourceError(
			types.ErrorKindName, path, fmt.Sprintf("invalid `project.name` in %s", path), err)
	}
	assert.NotEmpty(ctx, string(name), "validated project name must not be empty")

	requirements, err := r.parseAll(path, project.Dependencies)
	if err != nil {
		return types.RequirementsSpec{}, err
	}

	if extras.Enabled() {
		groups := make([]string, 0, len(project.OptionalDependencies))
		for group := range project.OptionalDependencies {
			groups = append(groups, group)
		}
		sort.Strings(groups)
		for _, group := range groups {
			extra, err := NewExtraName(group)
			if err != nil {
				return types.RequirementsSpec{}, shared.NewSourceError(
					types.ErrorKindName, path, fmt.Sprintf("invalid optional-dependencies group `%s` in %s", group, path), err)
			}
			if !extras.Contains(extra) {
				continue
			}
			optional, err := r.parseAll(path, project.OptionalDependencies[group])
			if err != nil {
				return types.RequirementsSpec{}, err
			}
			requirements = append(requirements, optional...)
			spec.Extras[extra] = struct{}{}
		}
	}

	spec.Project = name
	spec.Requirements = requirements
	return spec, nil
}

func (r SpecReader) parseAll(path string, raw []string) ([]types.Requirement, error) {
	out := make([]types.Requirement, 0, len(raw))
	for _, value := range raw {
		requirement, err := r.Parser.ParseRequirement(value)
		if err != nil {
			return nil, shared.NewSourceError(
				types.ErrorKindParse, path, fmt.Sprintf("failed to parse `%s` in %s", value, path), err)
		}
		out = append(out, requirement)
	}
	return out, nil
}

var _ ports.SourceReaderPort = SpecReader{}
