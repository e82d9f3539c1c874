package utils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/vskvj3/nbtkit/internal/codederr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is missing or a field is invalid.
const (
	DefaultHexLineMax = 72
	DefaultSuite      = "nbt"
)

// Config struct holds application configuration
type Config struct {
	LogFile      string `yaml:"log_file"`
	Debug        bool   `yaml:"debug"`
	HexLineMax   int    `yaml:"hex_line_max"`
	DefaultSuite string `yaml:"default_suite"`
	Color        string `yaml:"color"`
}

var (
	configInstance *Config    // Singleton configInstance
	configMu       sync.Mutex // Guards configInstance
)

// DefaultConfigPath returns ~/.nbtkit/nbtkit.yaml, or a relative path when
// the home directory is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "nbtkit.yaml"
	}
	return filepath.Join(homeDir, ".nbtkit", "nbtkit.yaml")
}

// LoadConfig reads filename and installs the result as the singleton
// configInstance. Every call reads the file again, so a later call with a
// different path replaces the earlier config. A failed load leaves the
// previous instance in place.
func LoadConfig(filename string) (*Config, error) {
	cfg, err := loadConfigFromFile(filename)
	if err != nil {
		return nil, err
	}
	configMu.Lock()
	configInstance = cfg
	configMu.Unlock()
	return cfg, nil
}

// loadConfigFromFile reads and parses the config file
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to read config file: %s", filename)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration data and applies defaults.
func ParseConfig(data []byte) (*Config, error) {
	config := getDefaultConfig()
	if len(data) == 0 {
		return config, nil
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	if configInstance == nil {
		return nil, errors.New("Config not initialized. Call LoadConfig() first")
	}
	return configInstance, nil
}

// Registry resolves the configured default suite.
func (c *Config) Registry() (*codederr.Registry, error) {
	return codederr.Suite(c.DefaultSuite)
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		HexLineMax:   DefaultHexLineMax,
		DefaultSuite: DefaultSuite,
		Color:        ColorAuto,
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.HexLineMax < 4 {
		config.HexLineMax = DefaultHexLineMax
	}
	if _, err := codederr.Suite(config.DefaultSuite); err != nil {
		config.DefaultSuite = DefaultSuite
	}
	config.DefaultSuite = strings.ToLower(strings.TrimSpace(config.DefaultSuite))
	switch strings.ToLower(config.Color) {
	case ColorAlways, ColorNever:
		config.Color = strings.ToLower(config.Color)
	default:
		config.Color = ColorAuto
	}
}
