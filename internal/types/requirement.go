package types

import "strings"

// PackageName is a PEP 503 normalized distribution name. Values are only
// produced by core.NewPackageName.
type PackageName string

// ExtraName is a normalized optional-dependency group name. Values are only
// produced by core.NewExtraName.
type ExtraName string

// Constraint is a single version specifier clause such as ">=1.2".
type Constraint struct {
	Op      ConstraintOp
	Version string
}

func (c Constraint) String() string {
	return string(c.Op) + c.Version
}

// Requirement is a parsed PEP 508 dependency specifier.
type Requirement struct {
	Name       PackageName
	Extras     []ExtraName
	Specifiers []Constraint
	URL        string
	Marker     string
}

// String renders the requirement back into PEP 508 form using the
// normalized names.
func (r Requirement) String() string {
	var builder strings.Builder
	builder.WriteString(string(r.Name))
	if len(r.Extras) > 0 {
		extras := make([]string, 0, len(r.Extras))
		for _, extra := range r.Extras {
			extras = append(extras, string(extra))
		}
		builder.WriteString("[")
		builder.WriteString(strings.Join(extras, ","))
		builder.WriteString("]")
	}
	if r.URL != "" {
		builder.WriteString(" @ ")
		builder.WriteString(r.URL)
	} else if len(r.Specifiers) > 0 {
		clauses := make([]string, 0, len(r.Specifiers))
		for _, spec := range r.Specifiers {
			clauses = append(clauses, spec.String())
		}
		builder.WriteString(strings.Join(clauses, ","))
	}
	if r.Marker != "" {
		if r.URL != "" {
			builder.WriteString(" ")
		}
		builder.WriteString("; ")
		builder.WriteString(r.Marker)
	}
	return builder.String()
}
