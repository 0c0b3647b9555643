package types

type SourceKind string

const (
	SourceKindName            SourceKind = "name"
	SourceKindRequirementsTxt SourceKind = "requirements-txt"
	SourceKindPyProjectToml   SourceKind = "pyproject-toml"
)

type ExtrasMode string

const (
	ExtrasModeNone ExtrasMode = ""
	ExtrasModeAll  ExtrasMode = "all"
	ExtrasModeSome ExtrasMode = "some"
)

type ConstraintOp string

const (
	ConstraintOpArbitrary ConstraintOp = "==="
	ConstraintOpEq        ConstraintOp = "=="
	ConstraintOpNe        ConstraintOp = "!="
	ConstraintOpCompat    ConstraintOp = "~="
	ConstraintOpGte       ConstraintOp = ">="
	ConstraintOpLte       ConstraintOp = "<="
	ConstraintOpGt        ConstraintOp = ">"
	ConstraintOpLt        ConstraintOp = "<"
)

type ErrorKind string

const (
	ErrorKindParse ErrorKind = "parse"
	ErrorKindIO    ErrorKind = "io"
	ErrorKindToml  ErrorKind = "toml"
	ErrorKindName  ErrorKind = "name"
)

type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatTxt  OutputFormat = "txt"
)
