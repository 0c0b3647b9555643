package types

import "sort"

// Source is a single classified input: a literal requirement string, a
// requirements file, or a pyproject.toml manifest. Build it with
// core.SourceFromLiteral or core.SourceFromPath.
type Source struct {
	Kind  SourceKind
	Value string
}

// ExtrasSpecification selects optional-dependency groups. The zero value
// selects nothing.
type ExtrasSpecification struct {
	Mode  ExtrasMode
	Names []ExtraName
}

// ExtraSet is an unordered set of extras.
type ExtraSet map[ExtraName]struct{}

func NewExtraSet(names ...ExtraName) ExtraSet {
	set := ExtraSet{}
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s ExtraSet) Contains(name ExtraName) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in ascending order for stable output.
func (s ExtraSet) Sorted() []ExtraName {
	out := make([]ExtraName, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})
	return out
}

// RequirementsSpec is the merged, resolver-ready view of every source.
//
// Requirements, Constraints and Overrides keep source order and are never
// deduplicated. Project is empty when no requirement source named one.
type RequirementsSpec struct {
	Project      PackageName
	Requirements []Requirement
	Constraints  []Requirement
	Overrides    []Requirement
	Extras       ExtraSet
}
