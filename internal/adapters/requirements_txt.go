package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"reqspec/internal/ports"
	"reqspec/internal/shared"
	"reqspec/internal/types"
)

// RequirementsTxtAdapter parses pip-style requirements files. Nested -r and
// -c directives are followed and flattened into a single result.
type RequirementsTxtAdapter struct {
	Parser ports.RequirementParserPort
}

func NewRequirementsTxtAdapter(parser ports.RequirementParserPort) RequirementsTxtAdapter {
	return RequirementsTxtAdapter{Parser: parser}
}

// ignoredOptions are pip options that configure the installer rather than
// declare requirements. The value says whether the option takes an argument.
var ignoredOptions = map[string]bool{
	"-i":                true,
	"--index-url":       true,
	"--extra-index-url": true,
	"-f":                true,
	"--find-links":      true,
	"--trusted-host":    true,
	"--only-binary":     true,
	"--no-binary":       true,
	"--no-index":        false,
	"--pre":             false,
	"--prefer-binary":   false,
	"--require-hashes":  false,
}

func (a RequirementsTxtAdapter) Parse(path string, baseDir string) (types.RequirementsTxt, error) {
	if strings.TrimSpace(path) == "" {
		return types.RequirementsTxt{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("requirements file path is empty")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	var out types.RequirementsTxt
	if err := a.parseFile(filepath.Clean(path), false, map[string]struct{}{}, &out); err != nil {
		return types.RequirementsTxt{}, err
	}
	return out, nil
}

// parseFile appends the content of path to out. When asConstraints is set,
// every requirement found, including in nested files, becomes a constraint.
func (a RequirementsTxtAdapter) parseFile(path string, asConstraints bool, stack map[string]struct{}, out *types.RequirementsTxt) error {
	if _, ok := stack[path]; ok {
		return shared.NewSourceError(types.ErrorKindParse, path,
			fmt.Sprintf("circular include of `%s`", path), nil)
	}
	stack[path] = struct{}{}
	defer delete(stack, path)

	data, err := os.ReadFile(path)
	if err != nil {
		return shared.NewSourceError(types.ErrorKindIO, path,
			fmt.Sprintf("failed to read `%s`", path), err)
	}
	dir := filepath.Dir(path)

	for _, line := range logicalLines(string(data)) {
		location := fmt.Sprintf("%s:%d", path, line.number)
		text := stripComment(line.text)
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "-") {
			option, value := splitOption(text)
			switch option {
			case "-r", "--requirement", "-c", "--constraint":
				if value == "" {
					return shared.NewSourceError(types.ErrorKindParse, location,
						fmt.Sprintf("missing path after %s", option), nil)
				}
				nested := value
				if !filepath.IsAbs(nested) {
					nested = filepath.Join(dir, nested)
				}
				constraint := asConstraints || option == "-c" || option == "--constraint"
				if err := a.parseFile(filepath.Clean(nested), constraint, stack, out); err != nil {
					return err
				}
				continue
			case "-e", "--editable":
				return shared.NewSourceError(types.ErrorKindParse, location,
					"editable requirements are not supported", nil)
			}
			if takesValue, ok := ignoredOptions[option]; ok {
				if takesValue && value == "" {
					return shared.NewSourceError(types.ErrorKindParse, location,
						fmt.Sprintf("missing value after %s", option), nil)
				}
				log.Debug().Str("option", option).Str("location", location).Msg("requirements option ignored")
				continue
			}
			return shared.NewSourceError(types.ErrorKindParse, location,
				fmt.Sprintf("unsupported option %s", option), nil)
		}

		spec, hashes, err := splitHashes(text)
		if err != nil {
			return shared.NewSourceError(types.ErrorKindParse, location, err.Error(), nil)
		}
		requirement, err := a.Parser.ParseRequirement(spec)
		if err != nil {
			return shared.NewSourceError(types.ErrorKindParse, location,
				fmt.Sprintf("failed to parse `%s`", spec), err)
		}
		if asConstraints {
			out.Constraints = append(out.Constraints, requirement)
			continue
		}
		out.Requirements = append(out.Requirements, types.RequirementEntry{
			Requirement: requirement,
			Path:        path,
			Line:        line.number,
			Hashes:      hashes,
		})
	}
	return nil
}

type logicalLine struct {
	number int
	text   string
}

// logicalLines joins backslash continuations. Each logical line keeps the
// number of its first physical line.
func logicalLines(content string) []logicalLine {
	var (
		lines   []logicalLine
		builder strings.Builder
		start   int
	)
	physical := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for i, raw := range physical {
		if builder.Len() == 0 {
			start = i + 1
		}
		if strings.HasSuffix(raw, `\`) {
			builder.WriteString(strings.TrimSuffix(raw, `\`))
			continue
		}
		builder.WriteString(raw)
		lines = append(lines, logicalLine{number: start, text: builder.String()})
		builder.Reset()
	}
	if builder.Len() > 0 {
		lines = append(lines, logicalLine{number: start, text: builder.String()})
	}
	return lines
}

// stripComment drops a "#" comment that starts the line or follows
// whitespace, so URL fragments survive.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			line = line[:i]
			break
		}
	}
	return strings.TrimSpace(line)
}

// splitOption separates "--opt value", "--opt=value" and "-rvalue".
func splitOption(text string) (string, string) {
	fields := strings.Fields(text)
	option := fields[0]
	if idx := strings.IndexByte(option, '='); idx > 0 && strings.HasPrefix(option, "--") {
		return option[:idx], strings.TrimSpace(option[idx+1:] + " " + strings.Join(fields[1:], " "))
	}
	if !strings.HasPrefix(option, "--") && len(option) > 2 {
		return option[:2], strings.TrimSpace(option[2:] + " " + strings.Join(fields[1:], " "))
	}
	return option, strings.Join(fields[1:], " ")
}

// splitHashes removes trailing --hash options from a requirement line.
func splitHashes(text string) (string, []string, error) {
	idx := strings.Index(text, " --")
	if idx < 0 {
		return text, nil, nil
	}
	spec := strings.TrimSpace(text[:idx])
	var hashes []string
	for _, field := range strings.Fields(text[idx:]) {
		if !strings.HasPrefix(field, "--hash=") {
			return "", nil, fmt.Errorf("unsupported per-requirement option %s", field)
		}
		value := strings.TrimPrefix(field, "--hash=")
		if !strings.Contains(value, ":") {
			return "", nil, fmt.Errorf("invalid hash %s", value)
		}
		hashes = append(hashes, value)
	}
	return spec, hashes, nil
}

var _ ports.RequirementsFilePort = RequirementsTxtAdapter{}
