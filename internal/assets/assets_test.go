package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsHeroIllustration(t *testing.T) {
	data, err := FS.ReadFile("svg/product.svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestCopyTo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, CopyTo(dir))

	want, err := FS.ReadFile("svg/product.svg")
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, "svg", "product.svg"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
