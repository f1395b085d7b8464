package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/filterlist/internal/cli"
	"github.com/pluqqy/filterlist/internal/config"
	"github.com/pluqqy/filterlist/internal/logging"
	"github.com/pluqqy/filterlist/pkg/examples"
	"github.com/pluqqy/filterlist/pkg/files"
	"github.com/pluqqy/filterlist/pkg/models"
	"github.com/pluqqy/filterlist/pkg/tui"
	"github.com/pluqqy/filterlist/pkg/watch"
)

// runProgram starts the TUI; replaced in tests
var runProgram = func(ctx context.Context, app *tui.App) error {
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// openLog creates the run's logger; replaced in tests
var openLog = logging.Open

// NewRootCommand creates the root command with every subcommand attached
func NewRootCommand(version string) *cobra.Command {
	var (
		cfgFile  string
		closeLog = func() error { return nil }
	)

	rootCmd := &cobra.Command{
		Use:   "filterlist [items-file]",
		Short: "Filter a list of items by name or description",
		Long: `Filterlist shows a list of items under a search box. Typing narrows the list
to the items whose name or description contains the text, ignoring case.

Items are read from a YAML or JSON file:

  items:
    - id: "1"
      name: Apple
      description: A common fruit, typically round with red or green skin.

When no item file exists the built-in sample items are shown.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cli.SetGlobalFlags(cfg.Quiet, cfg.NoColor)

			logger, closeFn, err := openLog(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			closeLog = closeFn

			if cfg.FileUsed != "" {
				logger.Debug("config loaded", "file", cfg.FileUsed)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = logging.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("Filterlist version {{.Version}}\n")

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+files.ConfigFile+")")
	flags.String("items", "", "item file to load (default: ./"+files.DefaultItemsFile+")")
	flags.StringP("output", "o", "", "Output format for filter and list (text|json|yaml)")
	flags.Bool("watch", false, "Reload the item file when it changes")
	flags.String("log-file", "", "Write logs to this file")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.BoolP("quiet", "q", false, "Suppress informational messages")
	flags.Bool("no-color", false, "Disable symbols in messages")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewFilterCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewCopyCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewVersionCommand(version))

	// Close the log after every run, including failed ones, which skip
	// PersistentPostRunE
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		if c.RunE == nil {
			continue
		}
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			defer func() {
				_ = closeLog()
				closeLog = func() error { return nil }
			}()
			return run(cmd, args)
		}
	}

	return rootCmd
}

// loadItems reads the configured item file. A missing file falls back to
// the sample items unless the path was chosen explicitly.
func loadItems(cfg *config.Config, explicit string) ([]models.Item, string, error) {
	path := cfg.ItemsFile
	if explicit != "" {
		path = explicit
	}

	items, err := files.ReadItems(path)
	if err == nil {
		return items, path, nil
	}

	if errors.Is(err, os.ErrNotExist) && explicit == "" && path == files.DefaultItemsFile {
		return examples.SampleItems(), "", nil
	}
	return nil, "", err
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := logging.FromContext(ctx)

	var explicit string
	if len(args) > 0 {
		explicit = args[0]
	}

	items, source, err := loadItems(cfg, explicit)
	if err != nil {
		return err
	}
	if source == "" {
		logger.Info("no item file found, showing sample items")
	} else {
		logger.Info("items loaded", "path", source, "count", len(items))
	}

	app := tui.NewApp(items, cfg.Settings())
	app.SetLogger(logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Watch && source != "" {
		if err := startWatcher(ctx, app, source, logger); err != nil {
			return err
		}
	}

	if err := runProgram(ctx, app); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func startWatcher(ctx context.Context, app *tui.App, path string, logger *slog.Logger) error {
	w, err := watch.New(path, logger)
	if err != nil {
		return err
	}

	go func() {
		if err := w.Run(ctx, func() ([]models.Item, error) {
			return files.ReadItems(path)
		}); err != nil {
			logger.Error("watcher stopped", "error", err)
		}
	}()

	app.WatchItems(w.Events())
	return nil
}
