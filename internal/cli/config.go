package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pomdesc/pomdesc/pkg/errors"
)

// Config holds user preferences loaded from the pomdesc config file.
type Config struct {
	// Format is the default output format for describe: "text" or "json".
	Format string `toml:"format"`

	// NoColor disables lipgloss styling in text output.
	NoColor bool `toml:"no_color"`

	// ShowDescriptions includes the configuration catalog descriptions in
	// text output. They are long; off by default.
	ShowDescriptions bool `toml:"show_descriptions"`
}

// Output formats accepted by Config.Format and the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{Format: FormatText}
}

// LoadConfig reads the TOML configuration file at path. An empty path means
// the default location (~/.config/pomdesc/config.toml). A missing file is
// not an error; defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "parsing config %s", path)
	}

	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return DefaultConfig(), errors.New(errors.ErrCodeInvalidFormat, "unknown format %q in %s", cfg.Format, path)
	}
	return cfg, nil
}
