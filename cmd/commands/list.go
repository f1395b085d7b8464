package commands

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every item",
		Long: `Print every item in the item file, in file order.

Examples:
  # List all items
  filterlist list

  # List items from another file as YAML
  filterlist list --items fruit.json -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, "")
		},
	}

	return cmd
}
