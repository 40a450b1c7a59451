package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"subgrip/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int                 `toml:"version"`
	Server     ServerConfig        `toml:"server"`
	UISettings UISettings          `toml:"ui"`
	Profiles   map[string][]string `toml:"profiles"` // profile name -> item ids, cached for offline startup
}

// ServerConfig holds the management API connection settings
type ServerConfig struct {
	BaseURL        string `toml:"base_url"`
	Token          string `toml:"token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme             string `toml:"theme"` // "dark" or "light"
	ShowTimestamps    bool   `toml:"show_timestamps"`
	SidebarCollapsed  bool   `toml:"sidebar_collapsed"`
	ConfirmBulkDelete bool   `toml:"confirm_bulk_delete"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
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

	subgripDir := filepath.Join(configDir, "subgrip")
	os.MkdirAll(subgripDir, 0755)

	return &configService{
		filePath: filepath.Join(subgripDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	// Missing file means first run, hand out defaults
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{
				Path:     cs.filePath,
				Profiles: cfg.Profiles,
			})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Profiles: cfg.Profiles,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Initialize maps if nil
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string][]string)
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills fields that older config files may not carry
func applyDefaults(cfg *Config) {
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = defaultServerURL
	}
	if cfg.Server.TimeoutSeconds <= 0 {
		cfg.Server.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.UISettings.Theme == "" {
		cfg.UISettings.Theme = "dark"
	}
}

const (
	defaultServerURL      = "http://127.0.0.1:8787"
	defaultTimeoutSeconds = 10
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Server: ServerConfig{
			BaseURL:        defaultServerURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		UISettings: UISettings{
			Theme:             "dark",
			ShowTimestamps:    true,
			ConfirmBulkDelete: true,
		},
		Profiles: make(map[string][]string),
	}
}
