package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/filterlist/pkg/models"
)

const (
	DefaultItemsFile = "items.yaml"
	ConfigFile       = "filterlist.yaml"
)

var (
	// ErrDuplicateID is returned when two items in one document share an id
	ErrDuplicateID = errors.New("duplicate item id")
	// ErrEmptyItem is returned for an item with neither name nor description
	ErrEmptyItem = errors.New("item has no name and no description")
)

// ReadItems loads and normalizes the item document at path
func ReadItems(path string) ([]models.Item, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items %s: %w", path, err)
	}

	items, err := decodeItems(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse items %s: %w", path, err)
	}

	items, err = NormalizeItems(items)
	if err != nil {
		return nil, fmt.Errorf("invalid items in %s: %w", path, err)
	}

	return items, nil
}

// WriteItems writes items as a document, JSON when path ends in .json and
// YAML otherwise
func WriteItems(path string, items []models.Item) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for items: %w", err)
	}

	doc := models.ItemDocument{Items: items}
	if doc.Items == nil {
		doc.Items = []models.Item{}
	}

	var content []byte
	var err error
	if isJSON(path) {
		content, err = json.MarshalIndent(doc, "", "  ")
		content = append(content, '\n')
	} else {
		content, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write items %s: %w", path, err)
	}

	return nil
}

// NormalizeItems enforces the preconditions the list relies on. Missing ids
// are generated, ids are trimmed, and duplicate or empty items are rejected.
// Names and descriptions are left as they are.
func NormalizeItems(items []models.Item) ([]models.Item, error) {
	out := make([]models.Item, 0, len(items))
	seen := make(map[string]int, len(items))

	for i, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			item.ID = uuid.New().String()
		}

		if item.Name == "" && item.Description == "" {
			return nil, fmt.Errorf("item %d (id %q): %w", i, item.ID, ErrEmptyItem)
		}

		if first, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("item %d reuses id %q of item %d: %w", i, item.ID, first, ErrDuplicateID)
		}
		seen[item.ID] = i

		out = append(out, item)
	}

	return out, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
