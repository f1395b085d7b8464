package models

// Item is a single entry of the filterable list. Items are owned by whoever
// supplies them; nothing in this module mutates one after it is loaded.
type Item struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// ItemDocument is the on-disk form of an item collection.
type ItemDocument struct {
	Items []Item `yaml:"items" json:"items"`
}

// CloneItems returns a copy of items that shares no backing array with it.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
