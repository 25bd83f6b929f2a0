package app

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oasref/internal/adapters"
	"oasref/internal/types"
)

type fakeDocumentSource struct {
	doc types.Document
	err error
}

func (f fakeDocumentSource) Load(_ context.Context, _ string) (types.Document, error) {
	return f.doc, f.err
}

func fixtureDocument() types.Document {
	schemas := types.NewMapping().
		Set("User", types.NewMapping().
			Set("type", types.NewScalar("object")).
			Set("description", types.NewScalar("A registered account holder")).
			Set("properties", types.NewMapping().
				Set("profile", types.NewMapping().
					Set(types.RefKey, types.NewScalar("#/components/schemas/Profile"))))).
		Set("Profile", types.NewMapping().
			Set("type", types.NewScalar("object")).
			Set("properties", types.NewMapping().
				Set("theme", types.NewMapping().
					Set("type", types.NewScalar("string")))))

	root := types.NewMapping().
		Set("openapi", types.NewScalar("3.0.3")).
		Set("paths", types.NewMapping().
			Set("/users", types.NewMapping().
				Set("get", types.NewMapping()))).
		Set("components", types.NewMapping().Set("schemas", schemas))

	return types.Document{
		Root:    root,
		Source:  "fixture.yaml",
		Dialect: types.DialectOpenAPI3,
		Version: "3.0.3",
	}
}

func fixtureService() Service {
	return Service{
		Documents: fakeDocumentSource{doc: fixtureDocument()},
		Stats:     adapters.NewStatsAdapter(),
		Search:    adapters.NewSearchAdapter(),
	}
}

func TestResolveRequiresSpecPath(t *testing.T) {
	_, err := fixtureService().Resolve(t.Context(), ResolveRequest{Name: "User"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestResolveRequiresTarget(t *testing.T) {
	_, err := fixtureService().Resolve(t.Context(), ResolveRequest{SpecPath: "spec.yaml"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestResolveRejectsNameAndPointer(t *testing.T) {
	_, err := fixtureService().Resolve(t.Context(), ResolveRequest{
		SpecPath: "spec.yaml",
		Name:     "User",
		Pointer:  "#/components/schemas/User",
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestResolveByNameThroughService(t *testing.T) {
	result, err := fixtureService().Resolve(t.Context(), ResolveRequest{
		SpecPath: "spec.yaml",
		Name:     "User",
	})
	require.NoError(t, err)
	assert.Equal(t, "User", result.Target)
	require.True(t, result.Result.Success, result.Result.Error)
	assert.Equal(t, []string{"User", "Profile"}, result.Result.Dependencies)
}

func TestResolveByPointerThroughService(t *testing.T) {
	result, err := fixtureService().Resolve(t.Context(), ResolveRequest{
		SpecPath: "spec.yaml",
		Pointer:  "#/components/schemas/Profile",
	})
	require.NoError(t, err)
	require.True(t, result.Result.Success, result.Result.Error)
	assert.Equal(t, []string{"Profile"}, result.Result.Dependencies)
}

func TestResolveDefaultsWhenUnset(t *testing.T) {
	// A zero-value request gets the documented defaults, not a zero
	// depth bound: the Profile reference must come back expanded.
	result, err := fixtureService().Resolve(t.Context(), ResolveRequest{
		SpecPath: "spec.yaml",
		Name:     "User",
	})
	require.NoError(t, err)
	require.True(t, result.Result.Success, result.Result.Error)

	properties, ok := result.Result.Schema.Get("properties")
	require.True(t, ok)
	profile, ok := properties.Get("profile")
	require.True(t, ok)
	_, isRef := profile.Ref()
	assert.False(t, isRef, "default depth should expand the reference")
}

func TestResolveExplicitZeroDepth(t *testing.T) {
	zero := 0
	result, err := fixtureService().Resolve(t.Context(), ResolveRequest{
		SpecPath: "spec.yaml",
		Name:     "User",
		MaxDepth: &zero,
	})
	require.NoError(t, err)
	require.True(t, result.Result.Success, result.Result.Error)

	properties, ok := result.Result.Schema.Get("properties")
	require.True(t, ok)
	profile, ok := properties.Get("profile")
	require.True(t, ok)
	_, isRef := profile.Ref()
	assert.True(t, isRef, "explicit zero depth must leave the reference unexpanded")
}

func TestResolvePropagatesLoadError(t *testing.T) {
	service := fixtureService()
	service.Documents = fakeDocumentSource{err: errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("spec file not found")}

	_, err := service.Resolve(t.Context(), ResolveRequest{SpecPath: "spec.yaml", Name: "User"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestSchemasThroughService(t *testing.T) {
	result, err := fixtureService().Schemas(t.Context(), SchemasRequest{SpecPath: "spec.yaml"})
	require.NoError(t, err)
	assert.Len(t, result.Index, 2)
	assert.Equal(t, "#/components/schemas/User", result.Index["User"])
}

func TestDependenciesThroughService(t *testing.T) {
	result, err := fixtureService().Dependencies(t.Context(), DependenciesRequest{
		SpecPath: "spec.yaml",
		Name:     "User",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile"}, result.Dependencies)
}

func TestDocumentStatsThroughService(t *testing.T) {
	result, err := fixtureService().DocumentStats(t.Context(), StatsRequest{SpecPath: "spec.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.Endpoints)
	assert.Equal(t, 2, result.Stats.Schemas)
	assert.Equal(t, 1, result.Stats.References)
}

func TestSearchThroughService(t *testing.T) {
	result, err := fixtureService().SearchSchemas(t.Context(), SearchRequest{
		SpecPath: "spec.yaml",
		Query:    "user",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "User", result.Matches[0].Name)
}
