package types

// PyProject is the subset of pyproject.toml that contributes requirements.
type PyProject struct {
	Project *PyProjectProject `toml:"project"`
}

type PyProjectProject struct {
	Name                 string              `toml:"name"`
	Dependencies         []string            `toml:"dependencies"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies"`
}
