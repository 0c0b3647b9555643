package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqspec/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input document is required")
	}
	doc, err := s.Documents.ReadDocument(input)
	if err != nil {
		return InspectResult{}, err
	}

	stats := map[types.PackageName]packageSummary{}
	sections := []struct {
		lines []string
		apply func(*packageSummary)
	}{
		{doc.Requirements, func(p *packageSummary) { p.Requirements++ }},
		{doc.Constraints, func(p *packageSummary) { p.Constrained = true }},
		{doc.Overrides, func(p *packageSummary) { p.Overridden = true }},
	}
	for _, section := range sections {
		for _, line := range section.lines {
			parsed, err := s.Parser.ParseRequirement(line)
			if err != nil {
				return InspectResult{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("invalid entry in %s: %s", input, line)).
					WithCause(err)
			}
			stat := stats[parsed.Name]
			section.apply(&stat)
			stats[parsed.Name] = stat
		}
	}

	packages := make([]InspectPackage, 0, len(stats))
	for _, name := range sortedKeys(stats) {
		stat := stats[name]
		packages = append(packages, InspectPackage{
			Name:         string(name),
			Requirements: stat.Requirements,
			Constrained:  stat.Constrained,
			Overridden:   stat.Overridden,
		})
	}
	return InspectResult{
		Project:      doc.Project,
		Requirements: doc.Requirements,
		Constraints:  doc.Constraints,
		Overrides:    doc.Overrides,
		Extras:       doc.Extras,
		Packages:     packages,
	}, nil
}

type packageSummary struct {
	Requirements int
	Constrained  bool
	Overridden   bool
}

func sortedKeys[K comparable, V any](input map[K]V) []K {
	keys := make([]K, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}
