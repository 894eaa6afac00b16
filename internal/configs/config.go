package configs

import (
	"errors"
	"fmt"
	"os"

	kerrors "github.com/PolarWolf314/seedxor/internal/errors"
)

// DefaultGenLines is the number of mnemonics gen writes per destination.
const DefaultGenLines = 200

type Config struct {
	Gen   GenConfig   `toml:"gen" json:"gen"`
	Xor   XorConfig   `toml:"xor" json:"xor"`
	Audit AuditConfig `toml:"audit" json:"audit"`

	// Unknown lists keys in the file that were not recognized.
	Unknown []string `toml:"-" json:"-"`
}

type GenConfig struct {
	Lines int `toml:"lines" json:"lines"`
}

type XorConfig struct {
	AtomicOutput bool `toml:"atomic_output" json:"atomic_output"`
}

type AuditConfig struct {
	Path string `toml:"path" json:"path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Gen: GenConfig{Lines: DefaultGenLines},
		Xor: XorConfig{AtomicOutput: true},
	}
}

// Load reads the configuration file, falling back to defaults for a missing
// file or missing keys.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path.
func LoadFrom(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	unknown, err := LoadTOML(path, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}
	config.Unknown = unknown

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
	}
	return config, nil
}

// Validate checks values that TOML decoding cannot.
func (c *Config) Validate() error {
	if c.Gen.Lines < 0 {
		return fmt.Errorf("gen.lines must not be negative, got %d", c.Gen.Lines)
	}
	return nil
}

// Save writes the configuration to path.
func Save(path string, c *Config, overwrite bool) error {
	if err := SaveTOML(path, c, overwrite); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", kerrors.ErrConfigExists, path)
		}
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
