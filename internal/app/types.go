package app

type SpecRequest struct {
	Packages     []string
	Requirements []string
	Constraints  []string
	Overrides    []string
	Extras       []string
	AllExtras    bool
	Format       string
	OutputPath   string
}

type SpecResult struct {
	Summary SpecSummary
	Format  string
	Output  string
}

type RequirementsRequest struct {
	Packages     []string
	Requirements []string
}

type RequirementsResult struct {
	Requirements []string
}

type ValidateRequest struct {
	Packages     []string
	Requirements []string
	Constraints  []string
	Overrides    []string
	Extras       []string
	AllExtras    bool
}

type ValidateResult struct {
	Summary SpecSummary
}

// SpecSummary counts what a merged spec contains.
type SpecSummary struct {
	Project      string
	Requirements int
	Constraints  int
	Overrides    int
	Extras       []string
}

type InspectRequest struct {
	Input string
}

type InspectResult struct {
	Project      string
	Requirements []string
	Constraints  []string
	Overrides    []string
	Extras       []string
	Packages     []InspectPackage
}

// InspectPackage groups the entries of a document that name the same
// package.
type InspectPackage struct {
	Name         string
	Requirements int
	Constrained  bool
	Overridden   bool
}
