package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/filterlist/internal/cli"
	"github.com/pluqqy/filterlist/internal/config"
	"github.com/pluqqy/filterlist/internal/logging"
	"github.com/pluqqy/filterlist/pkg/filter"
	"github.com/pluqqy/filterlist/pkg/models"
)

// noMatchesMessage is printed when a non-empty term matches nothing
const noMatchesMessage = "No matching items found."

// FilterResult represents the output structure for filter and list
type FilterResult struct {
	Term  string        `json:"term" yaml:"term"`
	Count int           `json:"count" yaml:"count"`
	Total int           `json:"total" yaml:"total"`
	Items []models.Item `json:"items" yaml:"items"`
}

// NewFilterCommand creates the filter command
func NewFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [term...]",
		Short: "Print the items matching a search term",
		Long: `Print the items whose name or description contains the search term,
ignoring case. Multiple arguments are joined with single spaces. An empty
term prints every item.

Examples:
  # Items mentioning apple
  filterlist filter apple

  # A term with spaces
  filterlist filter tough bright

  # JSON output
  filterlist filter citrus -o json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runFilter(cmd *cobra.Command, term string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := logging.FromContext(ctx)

	items, source, err := loadItems(cfg, "")
	if err != nil {
		return err
	}
	if source == "" {
		cli.PrintWarning("No item file found at %s, using sample items", cfg.ItemsFile)
	}

	matched := filter.Filter(items, term)
	logger.Debug("filter command", "term", term, "items", len(items), "matches", len(matched))

	result := FilterResult{
		Term:  term,
		Count: len(matched),
		Total: len(items),
		Items: matched,
	}

	switch cfg.Output {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), cfg.Output, result)
	default:
		return outputFilterText(cmd, result)
	}
}

func outputFilterText(cmd *cobra.Command, result FilterResult) error {
	out := cmd.OutOrStdout()

	if result.Count == 0 {
		if result.Term != "" {
			fmt.Fprintln(out, noMatchesMessage)
		} else {
			fmt.Fprintln(out, "No items found")
		}
		return nil
	}

	cli.RenderItemTable(out, result.Items)
	fmt.Fprintf(out, "\nShowing %d of %d items\n", result.Count, result.Total)
	return nil
}
