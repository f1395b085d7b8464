package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUISettingsWithDefaults(t *testing.T) {
	t.Run("zero value gets every default", func(t *testing.T) {
		got := UISettings{}.WithDefaults()
		assert.Equal(t, DefaultTitle, got.Title)
		assert.Equal(t, DefaultPlaceholder, got.Placeholder)
		assert.Equal(t, DefaultCharLimit, got.CharLimit)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		got := UISettings{Title: "Fruit", Placeholder: "type...", CharLimit: 10}.WithDefaults()
		assert.Equal(t, "Fruit", got.Title)
		assert.Equal(t, "type...", got.Placeholder)
		assert.Equal(t, 10, got.CharLimit)
	})
}

func TestCloneItems(t *testing.T) {
	items := []Item{{ID: "1", Name: "Apple"}}
	clone := CloneItems(items)
	clone[0].Name = "Changed"
	assert.Equal(t, "Apple", items[0].Name)

	assert.NotNil(t, CloneItems(nil))
	assert.Empty(t, CloneItems(nil))
}
