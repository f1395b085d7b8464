package examples

import (
	"errors"
	"fmt"

	"github.com/pluqqy/filterlist/pkg/files"
	"github.com/pluqqy/filterlist/pkg/models"
)

// ErrExists is returned by Install when the target file is already there
var ErrExists = errors.New("item file already exists")

// SampleItems returns the demonstration collection, in display order
func SampleItems() []models.Item {
	return []models.Item{
		{
			ID:          "1",
			Name:        "Apple",
			Description: "A common fruit, typically round with red or green skin.",
		},
		{
			ID:          "2",
			Name:        "Banana",
			Description: "A long curved fruit which grows in clusters and has soft pulpy flesh and yellow skin when ripe.",
		},
		{
			ID:          "3",
			Name:        "Orange",
			Description: "A round juicy citrus fruit with a tough bright reddish-yellow rind.",
		},
		{
			ID:          "4",
			Name:        "Grape",
			Description: "A berry, typically green, purple, red, or black, growing in clusters on a vine, eaten as fruit, and used in making wine.",
		},
		{
			ID:          "5",
			Name:        "Pineapple",
			Description: "A large juicy tropical fruit consisting of aromatic edible yellow flesh surrounded by a tough, spiky rind.",
		},
	}
}

// Install writes the sample items to path. An existing file is only
// replaced when force is set.
func Install(path string, force bool) error {
	if !force && files.Exists(path) {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}

	if err := files.WriteItems(path, SampleItems()); err != nil {
		return fmt.Errorf("failed to install sample items: %w", err)
	}
	return nil
}
