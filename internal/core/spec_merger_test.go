package core

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqspec/internal/policies"
	"reqspec/internal/shared"
	"reqspec/internal/types"
)

// stubReader returns canned fragments keyed by source value and records
// the order sources were read in.
type stubReader struct {
	parts map[string]types.RequirementsSpec
	fail  map[string]bool
	seen  []string
}

func (s *stubReader) ReadSource(_ context.Context, source types.Source, _ policies.ExtrasPolicy) (types.RequirementsSpec, error) {
	s.seen = append(s.seen, source.Value)
	if s.fail[source.Value] {
		return types.RequirementsSpec{}, shared.NewSourceError(types.ErrorKindName, source.Value, "invalid `project.name`", nil)
	}
	return s.parts[source.Value], nil
}

func req(name string) types.Requirement {
	return types.Requirement{Name: types.PackageName(name)}
}

func literals(values ...string) []types.Source {
	return SourcesFromLiterals(values)
}

func TestFromSourcesRequirementOrderAndProject(t *testing.T) {
	reader := &stubReader{parts: map[string]types.RequirementsSpec{
		"a": {Requirements: []types.Requirement{req("a1"), req("a2")}},
		"b": {Project: "bee", Requirements: []types.Requirement{req("b1")}, Extras: types.NewExtraSet("dev")},
		"c": {Project: "sea", Requirements: []types.Requirement{req("a1")}, Extras: types.NewExtraSet("dev", "docs")},
	}}
	merger := NewSpecMerger(reader)

	spec, err := merger.FromSources(t.Context(), literals("a", "b", "c"), nil, nil, policies.AllExtras())
	require.NoError(t, err)

	// Duplicates survive; order follows the sources.
	want := []types.Requirement{req("a1"), req("a2"), req("b1"), req("a1")}
	if diff := cmp.Diff(want, spec.Requirements); diff != "" {
		t.Fatalf("unexpected requirements (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(types.PackageName("bee"), spec.Project); diff != "" {
		t.Fatalf("unexpected project (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.ExtraName{"dev", "docs"}, spec.Extras.Sorted()); diff != "" {
		t.Fatalf("unexpected extras (-want +got):\n%s", diff)
	}
}

func TestFromSourcesRequirementSourceConstraintsPropagate(t *testing.T) {
	reader := &stubReader{parts: map[string]types.RequirementsSpec{
		"req.txt": {
			Requirements: []types.Requirement{req("flask")},
			Constraints:  []types.Requirement{req("werkzeug")},
		},
	}}
	spec, err := NewSpecMerger(reader).FromSources(t.Context(), SourcesFromPaths([]string{"req.txt"}), nil, nil, policies.NoExtras())
	require.NoError(t, err)
	assert.Equal(t, []types.Requirement{req("flask")}, spec.Requirements)
	assert.Equal(t, []types.Requirement{req("werkzeug")}, spec.Constraints)
	assert.Empty(t, spec.Overrides)
}

func TestFromSourcesConstraintCollapsing(t *testing.T) {
	reader := &stubReader{parts: map[string]types.RequirementsSpec{
		"main": {Requirements: []types.Requirement{req("app")}},
		"c1": {
			Project:      "ignored",
			Requirements: []types.Requirement{req("r1")},
			Constraints:  []types.Requirement{req("r2")},
			Overrides:    []types.Requirement{req("r3")},
			Extras:       types.NewExtraSet("dropped"),
		},
		"c2": {Requirements: []types.Requirement{req("r4")}},
	}}
	spec, err := NewSpecMerger(reader).FromSources(t.Context(), literals("main"), literals("c1", "c2"), nil, policies.AllExtras())
	require.NoError(t, err)

	assert.Equal(t, []types.Requirement{req("app")}, spec.Requirements)
	want := []types.Requirement{req("r1"), req("r2"), req("r3"), req("r4")}
	if diff := cmp.Diff(want, spec.Constraints); diff != "" {
		t.Fatalf("unexpected constraints (-want +got):\n%s", diff)
	}
	assert.Empty(t, spec.Overrides)
	assert.Empty(t, spec.Project)
	assert.Empty(t, spec.Extras)
}

func TestFromSourcesOverrideCollapsing(t *testing.T) {
	reader := &stubReader{parts: map[string]types.RequirementsSpec{
		"o1": {
			Project:      "ignored",
			Requirements: []types.Requirement{req("o-req")},
			Constraints:  []types.Requirement{req("o-con")},
			Overrides:    []types.Requirement{req("o-ovr")},
		},
		"c1": {Requirements: []types.Requirement{req("c-req")}},
	}}
	spec, err := NewSpecMerger(reader).FromSources(t.Context(), nil, literals("c1"), literals("o1"), policies.NoExtras())
	require.NoError(t, err)

	assert.Empty(t, spec.Requirements)
	assert.Equal(t, []types.Requirement{req("c-req")}, spec.Constraints)
	want := []types.Requirement{req("o-req"), req("o-con"), req("o-ovr")}
	if diff := cmp.Diff(want, spec.Overrides); diff != "" {
		t.Fatalf("unexpected overrides (-want +got):\n%s", diff)
	}
	assert.Empty(t, spec.Project)
}

func TestFromSourcesReadsInPassOrder(t *testing.T) {
	reader := &stubReader{parts: map[string]types.RequirementsSpec{}}
	_, err := NewSpecMerger(reader).FromSources(t.Context(), literals("r1", "r2"), literals("c1"), literals("o1", "o2"), policies.NoExtras())
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"r1", "r2", "c1", "o1", "o2"}, reader.seen); diff != "" {
		t.Fatalf("unexpected read order (-want +got):\n%s", diff)
	}
}

func TestFromSourcesFailFast(t *testing.T) {
	tests := []struct {
		name     string
		failing  string
		wantSeen []string
	}{
		{name: "requirement pass", failing: "r2", wantSeen: []string{"r1", "r2"}},
		{name: "constraint pass", failing: "c1", wantSeen: []string{"r1", "r2", "c1"}},
		{name: "override pass", failing: "o1", wantSeen: []string{"r1", "r2", "c1", "o1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &stubReader{
				parts: map[string]types.RequirementsSpec{
					"r1": {Project: "first", Requirements: []types.Requirement{req("kept-before-failure")}},
				},
				fail: map[string]bool{tt.failing: true},
			}
			spec, err := NewSpecMerger(reader).FromSources(t.Context(), literals("r1", "r2"), literals("c1"), literals("o1", "o2"), policies.NoExtras())
			require.Error(t, err)

			var sourceErr *types.SourceError
			require.ErrorAs(t, err, &sourceErr)
			assert.Equal(t, tt.failing, sourceErr.Source)
			if diff := cmp.Diff(types.RequirementsSpec{}, spec); diff != "" {
				t.Fatalf("expected no partial spec (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantSeen, reader.seen); diff != "" {
				t.Fatalf("unexpected read order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRequirementsOnly(t *testing.T) {
	reader := &stubReader{parts: map[string]types.RequirementsSpec{
		"a": {Requirements: []types.Requirement{req("a")}, Constraints: []types.Requirement{req("pin")}},
		"b": {Requirements: []types.Requirement{req("b")}},
	}}
	reqs, err := NewSpecMerger(reader).Requirements(t.Context(), literals("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, []types.Requirement{req("a"), req("b")}, reqs)
}

func TestFromSourcesWithSpecReader(t *testing.T) {
	reader, _ := newTestReader(map[string]types.RequirementsTxt{
		"constraints.txt": {
			Requirements: []types.RequirementEntry{{Requirement: mustRequirement(t, "werkzeug<3")}},
			Constraints:  []types.Requirement{mustRequirement(t, "click==8.1.7")},
		},
	}, fakeManifests{"pyproject.toml": sampleManifest()})
	merger := NewSpecMerger(reader)

	spec, err := merger.FromSources(t.Context(),
		[]types.Source{SourceFromPath("pyproject.toml"), SourceFromLiteral("rich")},
		SourcesFromPaths([]string{"constraints.txt"}),
		[]types.Source{SourceFromLiteral("flask==2.3.3")},
		policies.SomeExtras("dev"),
	)
	require.NoError(t, err)

	assert.Equal(t, types.PackageName("my-project"), spec.Project)
	assert.Equal(t, []string{"flask>=2", "requests", "pytest", "ruff", "rich"}, requirementStrings(spec.Requirements))
	assert.Equal(t, []string{"werkzeug<3", "click==8.1.7"}, requirementStrings(spec.Constraints))
	assert.Equal(t, []string{"flask==2.3.3"}, requirementStrings(spec.Overrides))
	assert.Equal(t, []types.ExtraName{"dev"}, spec.Extras.Sorted())
}
