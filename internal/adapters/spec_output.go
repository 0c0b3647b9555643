package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"reqspec/internal/ports"
	"reqspec/internal/types"
)

// SpecOutputAdapter writes a merged spec to a file, or to Stdout when the
// path is empty or "-".
type SpecOutputAdapter struct {
	Stdout io.Writer
}

func NewSpecOutputAdapter() SpecOutputAdapter {
	return SpecOutputAdapter{Stdout: os.Stdout}
}

func (a SpecOutputAdapter) WriteSpec(path string, format types.OutputFormat, spec types.RequirementsSpec) error {
	data, err := RenderSpec(format, spec)
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		if _, err := a.Stdout.Write(data); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write spec").
				WithCause(err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write spec").
			WithCause(err)
	}
	return nil
}

// RenderSpec encodes spec in the requested format. An empty format means
// YAML.
func RenderSpec(format types.OutputFormat, spec types.RequirementsSpec) ([]byte, error) {
	switch format {
	case "", types.OutputFormatYAML:
		data, err := yaml.Marshal(NewSpecDocument(spec))
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to marshal spec").
				WithCause(err)
		}
		return data, nil
	case types.OutputFormatJSON:
		data, err := json.MarshalIndent(NewSpecDocument(spec), "", "  ")
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to marshal spec").
				WithCause(err)
		}
		return append(data, '\n'), nil
	case types.OutputFormatTxt:
		return []byte(renderRequirementsTxt(spec)), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format: %s", format))
	}
}

// NewSpecDocument flattens a spec into its serialized form. Extras are
// sorted; the requirement lists keep their order.
func NewSpecDocument(spec types.RequirementsSpec) types.SpecDocument {
	extras := make([]string, 0, len(spec.Extras))
	for _, extra := range spec.Extras.Sorted() {
		extras = append(extras, string(extra))
	}
	return types.SpecDocument{
		Project:      string(spec.Project),
		Requirements: requirementLines(spec.Requirements),
		Constraints:  requirementLines(spec.Constraints),
		Overrides:    requirementLines(spec.Overrides),
		Extras:       extras,
	}
}

func requirementLines(reqs []types.Requirement) []string {
	lines := make([]string, 0, len(reqs))
	for _, req := range reqs {
		lines = append(lines, req.String())
	}
	return lines
}

func renderRequirementsTxt(spec types.RequirementsSpec) string {
	var builder strings.Builder
	for _, line := range requirementLines(spec.Requirements) {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	sections := []struct {
		title string
		reqs  []types.Requirement
	}{
		{"# constraints", spec.Constraints},
		{"# overrides", spec.Overrides},
	}
	for _, section := range sections {
		if len(section.reqs) == 0 {
			continue
		}
		builder.WriteString(section.title)
		builder.WriteString("\n")
		for _, line := range requirementLines(section.reqs) {
			builder.WriteString(line)
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

var _ ports.SpecOutputPort = SpecOutputAdapter{}
