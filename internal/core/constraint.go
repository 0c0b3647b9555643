package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"reqspec/internal/types"
)

// opTokens is the ordered list of specifier operators tried during
// parsing. Longer tokens must precede shorter ones to avoid false matches
// (e.g. "===" before "==", ">=" before ">").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpArbitrary,
	types.ConstraintOpEq,
	types.ConstraintOpNe,
	types.ConstraintOpCompat,
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpGt,
	types.ConstraintOpLt,
}

// ParseSpecifiers splits a comma separated specifier list such as
// ">=1.0, <2" into its clauses. An empty list yields no clauses.
func ParseSpecifiers(raw string) ([]types.Constraint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []types.Constraint
	for _, clause := range strings.Split(raw, ",") {
		constraint, err := ParseConstraint(clause)
		if err != nil {
			return nil, err
		}
		out = append(out, constraint)
	}
	return out, nil
}

// ParseConstraint parses a single "<op><version>" clause.
func ParseConstraint(raw string) (types.Constraint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Constraint{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty version specifier")
	}
	for _, op := range opTokens {
		if !strings.HasPrefix(raw, string(op)) {
			continue
		}
		version := strings.TrimSpace(raw[len(op):])
		if version == "" {
			return types.Constraint{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("missing version in specifier: %s", raw))
		}
		if err := validateVersion(op, version); err != nil {
			return types.Constraint{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid version in specifier: %s", raw)).
				WithCause(err)
		}
		return types.Constraint{Op: op, Version: version}, nil
	}
	return types.Constraint{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid version specifier: %s", raw))
}

// validateVersion checks the version part of a clause against PEP 440.
// Arbitrary equality compares strings and accepts anything; == and != may
// carry a trailing ".*" prefix match.
func validateVersion(op types.ConstraintOp, version string) error {
	switch op {
	case types.ConstraintOpArbitrary:
		if strings.ContainsAny(version, " \t") {
			return fmt.Errorf("whitespace in arbitrary version %q", version)
		}
		return nil
	case types.ConstraintOpEq, types.ConstraintOpNe:
		version = strings.TrimSuffix(version, ".*")
	}
	_, err := pep440.Parse(version)
	return err
}
