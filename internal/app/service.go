package app

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqspec/internal/adapters"
	"reqspec/internal/core"
	"reqspec/internal/ports"
)

type Service struct {
	Parser          ports.RequirementParserPort
	RequirementsTxt ports.RequirementsFilePort
	Manifests       ports.ManifestPort
	Output          ports.SpecOutputPort
	Documents       ports.SpecDocumentPort
	WorkingDir      func() (string, error)
}

func NewService() (Service, error) {
	parser := core.NewRequirementParser()
	manifests, err := adapters.NewPyProjectFileAdapter()
	if err != nil {
		return Service{}, err
	}
	return Service{
		Parser:          parser,
		RequirementsTxt: adapters.NewRequirementsTxtAdapter(parser),
		Manifests:       manifests,
		Output:          adapters.NewSpecOutputAdapter(),
		Documents:       adapters.NewSpecDocumentAdapter(),
		WorkingDir:      os.Getwd,
	}, nil
}

func (s Service) merger() (core.SpecMerger, error) {
	workingDir := ""
	if s.WorkingDir != nil {
		dir, err := s.WorkingDir()
		if err != nil {
			return core.SpecMerger{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to determine working directory").
				WithCause(err)
		}
		workingDir = dir
	}
	reader := core.NewSpecReader(s.Parser, s.RequirementsTxt, s.Manifests, workingDir)
	return core.NewSpecMerger(reader), nil
}

func cleanValues(values []string) []string {
	var out []string
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	return out
}
