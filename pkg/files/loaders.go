package files

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/filterlist/pkg/models"
)

// decodeItems accepts either a document with an items key or a bare list.
// JSON input goes through the same path since it is valid YAML.
func decodeItems(content []byte) ([]models.Item, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}

	// An empty file decodes to a zero node
	if root.Kind == 0 || len(root.Content) == 0 {
		return []models.Item{}, nil
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var items []models.Item
		if err := node.Decode(&items); err != nil {
			return nil, err
		}
		return items, nil
	case yaml.MappingNode:
		var doc models.ItemDocument
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Items, nil
	default:
		return nil, fmt.Errorf("expected a list of items or an items document, got line %d", node.Line)
	}
}

// Exists reports whether path names an existing regular file
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
