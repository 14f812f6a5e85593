package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"snipman/internal/eventbus"
)

// DefaultPreviewLines is how many code lines the compact preview shows
const DefaultPreviewLines = 10

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	SnippetsDir string     `toml:"snippets_dir"` // empty means the platform default
	UI          UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	PreviewLines int  `toml:"preview_lines"` // compact preview height
	ShowTags     bool `toml:"show_tags"`     // show tags next to descriptions in the list
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service storing config.toml under
// the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "snipman", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when no file exists yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = DefaultConfig()
		} else {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to the default location
func (cs *configService) Save(cfg *Config) error {
	if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.UI.PreviewLines <= 0 {
		cfg.UI.PreviewLines = DefaultPreviewLines
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			PreviewLines: DefaultPreviewLines,
			ShowTags:     true,
		},
	}
}
