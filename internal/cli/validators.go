package cli

import (
	"fmt"
	"strings"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateItemID validates an item id given on the command line
func ValidateItemID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("item id cannot be empty")
	}
	return nil
}
