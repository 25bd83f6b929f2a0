package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoRootFindsModuleRoot(t *testing.T) {
	root := RepoRoot(t)

	_, err := os.Stat(filepath.Join(root, "go.mod"))
	require.NoError(t, err, "returned root must contain go.mod")
	assert.True(t, filepath.IsAbs(root))
}
