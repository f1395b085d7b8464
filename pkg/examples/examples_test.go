package examples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/filterlist/pkg/files"
)

func TestSampleItems(t *testing.T) {
	items := SampleItems()
	require.Len(t, items, 5)

	seen := make(map[string]bool)
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}

	// callers get their own copy
	items[0].Name = "Changed"
	assert.Equal(t, "Apple", SampleItems()[0].Name)
}

func TestInstall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "items.yaml")

	require.NoError(t, Install(path, false))

	loaded, err := files.ReadItems(path)
	require.NoError(t, err)
	assert.Equal(t, SampleItems(), loaded)

	t.Run("refuses to overwrite", func(t *testing.T) {
		err := Install(path, false)
		assert.ErrorIs(t, err, ErrExists)
	})

	t.Run("force overwrites", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0644))
		require.NoError(t, Install(path, true))

		loaded, err := files.ReadItems(path)
		require.NoError(t, err)
		assert.Len(t, loaded, 5)
	})
}
