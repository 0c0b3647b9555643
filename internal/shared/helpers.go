// Package shared provides common utility functions used across multiple
// packages in the reqspec codebase.
package shared

import (
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqspec/internal/types"
)

var separatorRuns = regexp.MustCompile(`[-_.]+`)

// NormalizePipName lowercases a Python package name and collapses runs of
// underscores, dots and hyphens into a single hyphen, following PEP 503.
func NormalizePipName(value string) string {
	return strings.ToLower(separatorRuns.ReplaceAllString(strings.TrimSpace(value), "-"))
}

// ErrorCode maps an error kind onto the errbuilder code used for exit
// status selection.
func ErrorCode(kind types.ErrorKind) errbuilder.ErrCode {
	switch kind {
	case types.ErrorKindIO:
		return errbuilder.CodeNotFound
	case types.ErrorKindParse, types.ErrorKindToml, types.ErrorKindName:
		return errbuilder.CodeInvalidArgument
	default:
		return errbuilder.CodeInternal
	}
}

// NewSourceError attributes cause to source. The message is attached to
// an errbuilder error carrying the code for kind.
func NewSourceError(kind types.ErrorKind, source string, msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(ErrorCode(kind)).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return &types.SourceError{
		Kind:   kind,
		Source: source,
		Err:    builder,
	}
}
