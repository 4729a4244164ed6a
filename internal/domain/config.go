package domain

import "fmt"

// ConfigFileName is the name of the configuration file, looked up in the
// XDG config directory and the working directory.
const ConfigFileName = "taskdeck.toml"

// Config is the application configuration.
type Config struct {
	View ViewConfig `toml:"view"`
	Seed SeedConfig `toml:"seed"`
	Log  LogConfig  `toml:"log"`
}

// ViewConfig sets the initial view state.
type ViewConfig struct {
	Filter string `toml:"filter"`
	Sort   string `toml:"sort"`
}

// SeedConfig controls the sample tasks loaded at startup.
type SeedConfig struct {
	File    string `toml:"file"` // Optional YAML file replacing the builtin samples
	Enabled bool   `toml:"enabled"`
}

// LogConfig controls the file logger. An empty path disables logging.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// NewDefaultConfig returns the configuration used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		View: ViewConfig{
			Filter: string(FilterAll),
			Sort:   string(SortByDueDate),
		},
		Seed: SeedConfig{Enabled: true},
		Log:  LogConfig{Level: "info"},
	}
}

// Validate checks that the enum-valued fields hold known values.
func (c *Config) Validate() error {
	if _, err := ParseFilter(c.View.Filter); err != nil {
		return fmt.Errorf("view.filter %q: %w", c.View.Filter, err)
	}
	if _, err := ParseSortKey(c.View.Sort); err != nil {
		return fmt.Errorf("view.sort %q: %w", c.View.Sort, err)
	}
	return nil
}

// InitialQuery returns the view query the configuration selects at startup.
// Invalid values fall back to the defaults.
func (c *Config) InitialQuery() Query {
	q := DefaultQuery()
	if f, err := ParseFilter(c.View.Filter); err == nil {
		q.Filter = f
	}
	if k, err := ParseSortKey(c.View.Sort); err == nil {
		q.Sort = k
	}
	return q
}
