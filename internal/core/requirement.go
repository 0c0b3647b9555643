package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"reqspec/internal/ports"
	"reqspec/internal/types"
)

// RequirementParser parses the PEP 508 subset used by requirement strings,
// requirements files and pyproject.toml dependency arrays:
//
//	name [ "[" extras "]" ] ( "@" url | specifiers | "(" specifiers ")" )? ( ";" marker )?
//
// Markers are kept verbatim and not evaluated.
type RequirementParser struct{}

func NewRequirementParser() RequirementParser {
	return RequirementParser{}
}

func (p RequirementParser) ParseRequirement(raw string) (types.Requirement, error) {
	s := &scanner{input: strings.TrimSpace(raw)}
	if s.done() {
		return types.Requirement{}, invalidRequirement(raw, "empty requirement", nil)
	}

	name := s.take(isNameByte)
	if name == "" {
		return types.Requirement{}, invalidRequirement(raw, "expected package name", nil)
	}
	pkg, err := NewPackageName(name)
	if err != nil {
		return types.Requirement{}, invalidRequirement(raw, "invalid package name", err)
	}
	req := types.Requirement{Name: pkg}

	s.skipSpace()
	if s.peek() == '[' {
		s.next()
		body, ok := s.until(']')
		if !ok {
			return types.Requirement{}, invalidRequirement(raw, "unterminated extras list", nil)
		}
		extras, err := parseExtrasList(body)
		if err != nil {
			return types.Requirement{}, invalidRequirement(raw, "invalid extras list", err)
		}
		req.Extras = extras
		s.skipSpace()
	}

	switch {
	case s.peek() == '@':
		s.next()
		s.skipSpace()
		url := s.take(func(b byte) bool { return !isSpaceByte(b) })
		if url == "" {
			return types.Requirement{}, invalidRequirement(raw, "expected URL after @", nil)
		}
		req.URL = url
	case s.peek() == '(':
		s.next()
		body, ok := s.until(')')
		if !ok {
			return types.Requirement{}, invalidRequirement(raw, "unterminated version specifier", nil)
		}
		specs, err := ParseSpecifiers(body)
		if err != nil {
			return types.Requirement{}, invalidRequirement(raw, "invalid version specifier", err)
		}
		req.Specifiers = specs
	case !s.done() && s.peek() != ';':
		body := s.rest()
		if idx := strings.IndexByte(body, ';'); idx >= 0 {
			body = body[:idx]
		}
		s.pos += len(body)
		specs, err := ParseSpecifiers(body)
		if err != nil {
			return types.Requirement{}, invalidRequirement(raw, "invalid version specifier", err)
		}
		req.Specifiers = specs
	}

	s.skipSpace()
	if s.peek() == ';' {
		s.next()
		marker := strings.TrimSpace(s.rest())
		if marker == "" {
			return types.Requirement{}, invalidRequirement(raw, "empty environment marker", nil)
		}
		req.Marker = marker
		s.pos = len(s.input)
	}
	if !s.done() {
		return types.Requirement{}, invalidRequirement(raw, fmt.Sprintf("unexpected input %q", s.rest()), nil)
	}
	return req, nil
}

func parseExtrasList(body string) ([]types.ExtraName, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	extras := make([]types.ExtraName, 0, len(parts))
	for _, part := range parts {
		extra, err := NewExtraName(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		extras = append(extras, extra)
	}
	return extras, nil
}

func invalidRequirement(raw string, msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: %s", msg, strings.TrimSpace(raw)))
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) next() {
	s.pos++
}

func (s *scanner) rest() string {
	return s.input[s.pos:]
}

func (s *scanner) skipSpace() {
	for !s.done() && isSpaceByte(s.peek()) {
		s.pos++
	}
}

func (s *scanner) take(accept func(byte) bool) string {
	start := s.pos
	for !s.done() && accept(s.peek()) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// until consumes through the next delim and returns what preceded it.
func (s *scanner) until(delim byte) (string, bool) {
	idx := strings.IndexByte(s.rest(), delim)
	if idx < 0 {
		return "", false
	}
	body := s.input[s.pos : s.pos+idx]
	s.pos += idx + 1
	return body, true
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '-' || b == '_' || b == '.'
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}

var _ ports.RequirementParserPort = RequirementParser{}
