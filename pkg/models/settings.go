package models

// Settings represents the application configuration that reaches the TUI
type Settings struct {
	UI UISettings `koanf:"ui" yaml:"ui"`
}

// UISettings controls UI preferences
type UISettings struct {
	Title            string `koanf:"title" yaml:"title"`
	Placeholder      string `koanf:"placeholder" yaml:"placeholder"`
	CharLimit        int    `koanf:"char_limit" yaml:"char_limit"`
	WrapDescriptions bool   `koanf:"wrap_descriptions" yaml:"wrap_descriptions"`
}

// Default UI values
const (
	DefaultTitle       = "Filterable List"
	DefaultPlaceholder = "Search by name or description..."
	DefaultCharLimit   = 100
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			Title:            DefaultTitle,
			Placeholder:      DefaultPlaceholder,
			CharLimit:        DefaultCharLimit,
			WrapDescriptions: true,
		},
	}
}

// WithDefaults fills zero values from DefaultSettings.
func (s UISettings) WithDefaults() UISettings {
	d := DefaultSettings().UI
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.Placeholder == "" {
		s.Placeholder = d.Placeholder
	}
	if s.CharLimit <= 0 {
		s.CharLimit = d.CharLimit
	}
	return s
}
