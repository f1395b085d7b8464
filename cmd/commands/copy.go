package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/filterlist/internal/cli"
	"github.com/pluqqy/filterlist/internal/config"
)

// maxNameDisplay caps the item name echoed after a copy
const maxNameDisplay = 40

// writeClipboard copies text to the system clipboard; replaced in tests
var writeClipboard = clipboard.WriteAll

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy an item's description to the clipboard",
		Long: `Copy the description of the item with the given id to the system clipboard.

Examples:
  # Copy the description of item 3
  filterlist copy 3`,
		Args: cobra.ExactArgs(1),
		RunE: runCopy,
	}

	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := cli.ValidateItemID(id); err != nil {
		return err
	}

	cfg := config.FromContext(cmd.Context())
	items, _, err := loadItems(cfg, "")
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ID != id {
			continue
		}
		if err := writeClipboard(item.Description); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied description of %q to clipboard", cli.TruncateString(item.Name, maxNameDisplay))
		return nil
	}

	return fmt.Errorf("no item with id %q", id)
}
