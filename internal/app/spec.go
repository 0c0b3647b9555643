package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqspec/internal/core"
	"reqspec/internal/policies"
	"reqspec/internal/types"
)

type mergeInput struct {
	Packages     []string
	Requirements []string
	Constraints  []string
	Overrides    []string
	Extras       []string
	AllExtras    bool
}

func (s Service) Spec(ctx context.Context, req SpecRequest) (SpecResult, error) {
	format, err := parseOutputFormat(req.Format)
	if err != nil {
		return SpecResult{}, err
	}
	spec, err := s.merge(ctx, mergeInput{
		Packages:     req.Packages,
		Requirements: req.Requirements,
		Constraints:  req.Constraints,
		Overrides:    req.Overrides,
		Extras:       req.Extras,
		AllExtras:    req.AllExtras,
	})
	if err != nil {
		return SpecResult{}, err
	}
	output := strings.TrimSpace(req.OutputPath)
	if err := s.Output.WriteSpec(output, format, spec); err != nil {
		return SpecResult{}, err
	}
	return SpecResult{
		Summary: summarize(spec),
		Format:  string(format),
		Output:  output,
	}, nil
}

// Requirements merges requirement sources only, with no constraints,
// overrides or extras, and returns the resulting requirement lines.
func (s Service) Requirements(ctx context.Context, req RequirementsRequest) (RequirementsResult, error) {
	sources, err := requirementSources(req.Packages, req.Requirements)
	if err != nil {
		return RequirementsResult{}, err
	}
	merger, err := s.merger()
	if err != nil {
		return RequirementsResult{}, err
	}
	reqs, err := merger.Requirements(ctx, sources)
	if err != nil {
		return RequirementsResult{}, err
	}
	lines := make([]string, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, r.String())
	}
	return RequirementsResult{Requirements: lines}, nil
}

func (s Service) merge(ctx context.Context, input mergeInput) (types.RequirementsSpec, error) {
	sources, err := requirementSources(input.Packages, input.Requirements)
	if err != nil {
		return types.RequirementsSpec{}, err
	}
	extras, err := extrasPolicy(input.Extras, input.AllExtras)
	if err != nil {
		return types.RequirementsSpec{}, err
	}
	merger, err := s.merger()
	if err != nil {
		return types.RequirementsSpec{}, err
	}
	return merger.FromSources(ctx,
		sources,
		core.SourcesFromPaths(cleanValues(input.Constraints)),
		core.SourcesFromPaths(cleanValues(input.Overrides)),
		extras,
	)
}

// requirementSources orders positional packages before requirement files.
func requirementSources(packages []string, files []string) ([]types.Source, error) {
	packages = cleanValues(packages)
	files = cleanValues(files)
	if len(packages) == 0 && len(files) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one package or requirements file is required")
	}
	sources := core.SourcesFromLiterals(packages)
	return append(sources, core.SourcesFromPaths(files)...), nil
}

func extrasPolicy(extras []string, all bool) (policies.ExtrasPolicy, error) {
	extras = cleanValues(extras)
	if all && len(extras) > 0 {
		return policies.ExtrasPolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("--extra and --all-extras are mutually exclusive")
	}
	if all {
		return policies.AllExtras(), nil
	}
	if len(extras) == 0 {
		return policies.NoExtras(), nil
	}
	names, err := core.NewExtraNames(extras)
	if err != nil {
		return policies.ExtrasPolicy{}, err
	}
	return policies.SomeExtras(names...), nil
}

func parseOutputFormat(value string) (types.OutputFormat, error) {
	switch format := types.OutputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case "":
		return types.OutputFormatYAML, nil
	case types.OutputFormatYAML, types.OutputFormatJSON, types.OutputFormatTxt:
		return format, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format: %s", value))
	}
}

func summarize(spec types.RequirementsSpec) SpecSummary {
	extras := make([]string, 0, len(spec.Extras))
	for _, extra := range spec.Extras.Sorted() {
		extras = append(extras, string(extra))
	}
	return SpecSummary{
		Project:      string(spec.Project),
		Requirements: len(spec.Requirements),
		Constraints:  len(spec.Constraints),
		Overrides:    len(spec.Overrides),
		Extras:       extras,
	}
}
