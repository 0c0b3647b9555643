package types

// SpecDocument is the serialized form of a RequirementsSpec.
type SpecDocument struct {
	Project      string   `yaml:"project,omitempty" json:"project,omitempty"`
	Requirements []string `yaml:"requirements" json:"requirements"`
	Constraints  []string `yaml:"constraints" json:"constraints"`
	Overrides    []string `yaml:"overrides" json:"overrides"`
	Extras       []string `yaml:"extras" json:"extras"`
}
