package types

// RequirementEntry is a requirement read from a requirements file together
// with where it came from.
type RequirementEntry struct {
	Requirement Requirement
	Path        string
	Line        int
	Hashes      []string
}

// RequirementsTxt is the flattened content of a requirements file after
// every -r and -c directive has been followed.
type RequirementsTxt struct {
	Requirements []RequirementEntry
	Constraints  []Requirement
}
