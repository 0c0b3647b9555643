package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqspec/internal/types"
)

func TestParseRequirement(t *testing.T) {
	parser := NewRequirementParser()

	tests := []struct {
		name string
		raw  string
		want types.Requirement
	}{
		{
			name: "bare name",
			raw:  "flask",
			want: types.Requirement{Name: "flask"},
		},
		{
			name: "name is normalized",
			raw:  "  Typing_Extensions ",
			want: types.Requirement{Name: "typing-extensions"},
		},
		{
			name: "single specifier",
			raw:  "flask>=2.0",
			want: types.Requirement{
				Name:       "flask",
				Specifiers: []types.Constraint{{Op: types.ConstraintOpGte, Version: "2.0"}},
			},
		},
		{
			name: "specifier list with spaces",
			raw:  "requests >= 2.8.1, == 2.8.*",
			want: types.Requirement{
				Name: "requests",
				Specifiers: []types.Constraint{
					{Op: types.ConstraintOpGte, Version: "2.8.1"},
					{Op: types.ConstraintOpEq, Version: "2.8.*"},
				},
			},
		},
		{
			name: "extras and parenthesized specifiers",
			raw:  "requests[Security,tests] (>=2.8.1,<3)",
			want: types.Requirement{
				Name:   "requests",
				Extras: []types.ExtraName{"security", "tests"},
				Specifiers: []types.Constraint{
					{Op: types.ConstraintOpGte, Version: "2.8.1"},
					{Op: types.ConstraintOpLt, Version: "3"},
				},
			},
		},
		{
			name: "marker",
			raw:  `pywin32>=1.0 ; sys_platform == "win32"`,
			want: types.Requirement{
				Name:       "pywin32",
				Specifiers: []types.Constraint{{Op: types.ConstraintOpGte, Version: "1.0"}},
				Marker:     `sys_platform == "win32"`,
			},
		},
		{
			name: "marker without specifiers",
			raw:  `tomli; python_version < "3.11"`,
			want: types.Requirement{
				Name:   "tomli",
				Marker: `python_version < "3.11"`,
			},
		},
		{
			name: "url with marker",
			raw:  `pip @ https://github.com/pypa/pip/archive/1.3.1.zip ; python_version > "3"`,
			want: types.Requirement{
				Name:   "pip",
				URL:    "https://github.com/pypa/pip/archive/1.3.1.zip",
				Marker: `python_version > "3"`,
			},
		},
		{
			name: "empty extras list",
			raw:  "flask[]",
			want: types.Requirement{Name: "flask"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseRequirement(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected requirement (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRequirementInvalid(t *testing.T) {
	parser := NewRequirementParser()
	for _, raw := range []string{
		"",
		"   ",
		"not a valid!!!",
		">=1.0",
		"flask>=",
		"flask[dev",
		"flask[bad extra]",
		"flask (>=1.0",
		"flask @",
		"flask;",
		"flask>=1.0 trailing",
		"-flask",
	} {
		_, err := parser.ParseRequirement(raw)
		require.Error(t, err, "expected %q to fail", raw)
	}
}

func TestRequirementStringRoundTrip(t *testing.T) {
	parser := NewRequirementParser()
	tests := []struct {
		raw  string
		want string
	}{
		{"Flask>=2.0, <3", "flask>=2.0,<3"},
		{"requests[security] (==2.*)", "requests[security]==2.*"},
		{`tomli ; python_version < "3.11"`, `tomli; python_version < "3.11"`},
		{"pip @ https://example.com/pip.zip", "pip @ https://example.com/pip.zip"},
		{`pip @ https://example.com/pip.zip ; os_name == "nt"`, `pip @ https://example.com/pip.zip ; os_name == "nt"`},
	}
	for _, tt := range tests {
		req, err := parser.ParseRequirement(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, req.String())

		again, err := parser.ParseRequirement(req.String())
		require.NoError(t, err, req.String())
		if diff := cmp.Diff(req, again); diff != "" {
			t.Fatalf("rendered requirement does not reparse identically (-want +got):\n%s", diff)
		}
	}
}
