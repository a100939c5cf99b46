package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTitle        = "Repos"
	DefaultFetchTimeout = 30 * time.Second
	configFileName      = "lazyrepos.toml"
)

// ErrNoConfig is returned by FindConfig when neither config location has a file
var ErrNoConfig = errors.New("no config file found")

// AppConfig represents the application configuration
type AppConfig struct {
	UI    UIConfig    `toml:"ui"`
	Fetch FetchConfig `toml:"fetch"`
}

// UIConfig represents the configuration for the terminal UI
type UIConfig struct {
	TickRate string `toml:"tick_rate"`
	Title    string `toml:"title"`
	Sort     bool   `toml:"sort"`
}

// FetchConfig represents the configuration for the Azure DevOps calls
type FetchConfig struct {
	Timeout string `toml:"timeout"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *AppConfig {
	return &AppConfig{
		UI: UIConfig{
			TickRate: DefaultTickRate.String(),
			Title:    DefaultTitle,
		},
		Fetch: FetchConfig{
			Timeout: DefaultFetchTimeout.String(),
		},
	}
}

// TickRateDuration returns the parsed tick rate
func (c *AppConfig) TickRateDuration() (time.Duration, error) {
	return positiveDuration("ui.tick_rate", c.UI.TickRate)
}

// FetchTimeoutDuration returns the parsed fetch timeout
func (c *AppConfig) FetchTimeoutDuration() (time.Duration, error) {
	return positiveDuration("fetch.timeout", c.Fetch.Timeout)
}

// Validate checks every duration in the configuration
func (c *AppConfig) Validate() error {
	if _, err := c.TickRateDuration(); err != nil {
		return err
	}
	if _, err := c.FetchTimeoutDuration(); err != nil {
		return err
	}
	return nil
}

func positiveDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return d, nil
}

// LoadConfig loads the configuration from the specified file path. Keys
// missing from the file keep their default values.
func LoadConfig(configPath string) (*AppConfig, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, fmt.Errorf("config file not found: %s", configPath)
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if config.UI.Title == "" {
		config.UI.Title = DefaultTitle
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default path for the config file
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Error getting user home directory: %v", err)
		return configFileName
	}

	return filepath.Join(homeDir, "."+configFileName)
}

// FindConfig looks for the config file in the current directory and home directory
func FindConfig() (*AppConfig, string, error) {
	// First, try the current directory
	if _, err := os.Stat(configFileName); err == nil {
		config, err := LoadConfig(configFileName)
		return config, configFileName, err
	}

	// Then try the home directory
	homeConfig := GetDefaultConfigPath()
	if _, err := os.Stat(homeConfig); err == nil {
		config, err := LoadConfig(homeConfig)
		return config, homeConfig, err
	}

	return DefaultConfig(), "", ErrNoConfig
}
