package core

import (
	"fmt"
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqspec/internal/shared"
	"reqspec/internal/types"
)

// namePattern is the PEP 508 identifier grammar shared by distribution
// names and extras.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// NewPackageName validates and normalizes a distribution name.
func NewPackageName(raw string) (types.PackageName, error) {
	if !namePattern.MatchString(raw) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid package name: %q", raw))
	}
	return types.PackageName(shared.NormalizePipName(raw)), nil
}

// NewExtraName validates and normalizes an optional-dependency group name.
func NewExtraName(raw string) (types.ExtraName, error) {
	if !namePattern.MatchString(raw) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid extra name: %q", raw))
	}
	return types.ExtraName(shared.NormalizePipName(raw)), nil
}

// NewExtraNames validates every raw name, failing on the first invalid one.
func NewExtraNames(raw []string) ([]types.ExtraName, error) {
	out := make([]types.ExtraName, 0, len(raw))
	for _, value := range raw {
		name, err := NewExtraName(value)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}
