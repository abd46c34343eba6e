package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RelativePath is the config file location below the XDG config directories.
var RelativePath = filepath.Join("chessrules", "config.yaml")

// DefaultPath returns the config file path in the user's XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, RelativePath)
}

// Load reads a YAML config file on top of the defaults and validates the
// result. Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes YAML config data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault searches the XDG config directories for the config file and
// loads the first one found. Without a file it returns the defaults.
func LoadDefault() (*Config, error) {
	path, err := xdg.SearchConfigFile(RelativePath)
	if err != nil {
		return NewConfig(), nil
	}
	return Load(path)
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
