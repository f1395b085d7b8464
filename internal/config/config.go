// Package config loads filterlist settings.
//
// Precedence (highest to lowest): explicitly set flags > FILTERLIST_ env vars >
// config file > defaults. Nested keys are reached from the environment with a
// double underscore, so FILTERLIST_UI__TITLE sets ui.title.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/pluqqy/filterlist/internal/cli"
	"github.com/pluqqy/filterlist/internal/logging"
	"github.com/pluqqy/filterlist/pkg/files"
	"github.com/pluqqy/filterlist/pkg/models"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "FILTERLIST_"

// Default configuration values
const (
	DefaultOutput   = "text"
	DefaultLogLevel = "info"
)

// Config holds all configuration options.
type Config struct {
	ItemsFile string            `koanf:"items_file"`
	Watch     bool              `koanf:"watch"`
	Output    string            `koanf:"output"`
	LogFile   string            `koanf:"log_file"`
	LogLevel  string            `koanf:"log_level"`
	Quiet     bool              `koanf:"quiet"`
	NoColor   bool              `koanf:"no_color"`
	UI        models.UISettings `koanf:"ui"`

	// FileUsed is the config file that was loaded, if any.
	FileUsed string `koanf:"-"`
}

// Settings returns the part of the configuration the TUI consumes.
func (c *Config) Settings() *models.Settings {
	return &models.Settings{UI: c.UI.WithDefaults()}
}

// flagKeys maps flag names whose config key is not the snake_case form.
var flagKeys = map[string]string{
	"items": "items_file",
}

// skippedFlags are flags that never become config keys.
var skippedFlags = map[string]bool{
	"config": true,
	"help":   true,
	"force":  true,
}

func defaults() map[string]interface{} {
	ui := models.DefaultSettings().UI
	return map[string]interface{}{
		"items_file":           files.DefaultItemsFile,
		"watch":                false,
		"output":               DefaultOutput,
		"log_file":             "",
		"log_level":            DefaultLogLevel,
		"quiet":                false,
		"no_color":             false,
		"ui.title":             ui.Title,
		"ui.placeholder":       ui.Placeholder,
		"ui.char_limit":        ui.CharLimit,
		"ui.wrap_descriptions": ui.WrapDescriptions,
	}
}

// findConfigFile returns the config file to use.
// Priority: explicit path > filterlist.yaml in the working directory.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(files.ConfigFile); err == nil {
		return files.ConfigFile, nil
	}
	return "", nil
}

// Load builds the configuration from all sources. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: FILTERLIST_UI__CHAR_LIMIT -> ui.char_limit
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || skippedFlags[f.Name] {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = used
	cfg.UI = cfg.UI.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if err := cli.ValidateOutputFormat(c.Output); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ItemsFile == "" {
		return fmt.Errorf("items_file cannot be empty")
	}
	return nil
}

// configKey is used to store the config in a context.
type configKey struct{}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig, or nil.
func FromContext(ctx context.Context) *Config {
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(configKey{}).(*Config)
	return cfg
}
