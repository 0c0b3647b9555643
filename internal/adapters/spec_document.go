package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"reqspec/internal/ports"
	"reqspec/internal/types"
)

// SpecDocumentAdapter reads back a document written by SpecOutputAdapter.
// Files ending in .json are decoded as JSON, anything else as YAML.
type SpecDocumentAdapter struct{}

func NewSpecDocumentAdapter() SpecDocumentAdapter {
	return SpecDocumentAdapter{}
}

func (a SpecDocumentAdapter) ReadDocument(path string) (types.SpecDocument, error) {
	if strings.TrimSpace(path) == "" {
		return types.SpecDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec document path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SpecDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("spec document not found").
			WithCause(err)
	}
	var doc types.SpecDocument
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return types.SpecDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse spec document").
			WithCause(err)
	}
	return doc, nil
}

var _ ports.SpecDocumentPort = SpecDocumentAdapter{}
