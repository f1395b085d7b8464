package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/filterlist/internal/cli"
	"github.com/pluqqy/filterlist/internal/config"
	"github.com/pluqqy/filterlist/pkg/examples"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the sample items to an item file",
		Long: `Write the built-in sample items (Apple, Banana, Orange, Grape, Pineapple)
to an item file so there is something to filter. The file is written as
JSON when the path ends in .json and as YAML otherwise.`,
		Example: `  # Create ./items.yaml
  filterlist init

  # Create a JSON file
  filterlist init fruit.json

  # Replace an existing file
  filterlist init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FromContext(cmd.Context()).ItemsFile
			if len(args) > 0 {
				path = args[0]
			}

			if err := examples.Install(path, force); err != nil {
				if errors.Is(err, examples.ErrExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}

			cli.PrintSuccess("Wrote %d sample items to %s", len(examples.SampleItems()), path)
			cli.PrintInfo("Run 'filterlist' to start filtering.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing item file")

	return cmd
}
