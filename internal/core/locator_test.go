package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"oasref/internal/types"
)

func TestLocateScansBothContainers(t *testing.T) {
	root := types.NewMapping().
		Set("components", types.NewMapping().
			Set("schemas", types.NewMapping().
				Set("User", types.NewMapping()).
				Set("Profile", types.NewMapping()))).
		Set("definitions", types.NewMapping().
			Set("Legacy", types.NewMapping()))

	index := NewLocator().Locate(root)

	want := types.SchemaIndex{
		"User":    "#/components/schemas/User",
		"Profile": "#/components/schemas/Profile",
		"Legacy":  "#/definitions/Legacy",
	}
	if diff := cmp.Diff(want, index); diff != "" {
		t.Fatalf("unexpected index (-want +got):\n%s", diff)
	}
}

func TestLocateCollisionCurrentDialectWins(t *testing.T) {
	root := types.NewMapping().
		Set("components", types.NewMapping().
			Set("schemas", types.NewMapping().
				Set("User", types.NewMapping()))).
		Set("definitions", types.NewMapping().
			Set("User", types.NewMapping()))

	index := NewLocator().Locate(root)
	assert.Equal(t, "#/components/schemas/User", index["User"])
}

func TestLocateEscapesNames(t *testing.T) {
	root := types.NewMapping().
		Set("definitions", types.NewMapping().
			Set("a/b~c", types.NewMapping()))

	index := NewLocator().Locate(root)
	assert.Equal(t, "#/definitions/a~1b~0c", index["a/b~c"])
}

func TestLocateEmptyDocument(t *testing.T) {
	index := NewLocator().Locate(types.NewMapping())
	assert.Empty(t, index)
}
