package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"codesearch/internal/logging"
)

// DefaultBaseURL is the backend address used when nothing else is configured
const DefaultBaseURL = "http://localhost:5000"

// Index form fields accepted by the backend's /encode endpoint
const (
	IndexFieldURL         = "url"
	IndexFieldProjectPath = "project_path"
)

// Config represents the application configuration
type Config struct {
	Server  ServerSettings `toml:"server" yaml:"server" json:"server"`
	UI      UISettings     `toml:"ui" yaml:"ui" json:"ui"`
	Logging logging.Config `toml:"logging" yaml:"logging" json:"logging"`
}

// ServerSettings describes how to reach the search backend
type ServerSettings struct {
	BaseURL    string   `toml:"base_url" yaml:"base_url" json:"base_url"`
	Timeout    Duration `toml:"timeout" yaml:"timeout" json:"timeout"`
	IndexField string   `toml:"index_field" yaml:"index_field" json:"index_field"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AlertTimeout        Duration `toml:"alert_timeout" yaml:"alert_timeout" json:"alert_timeout"`
	DiscardStaleResults bool     `toml:"discard_stale_results" yaml:"discard_stale_results" json:"discard_stale_results"`
	ShowDetail          bool     `toml:"show_detail" yaml:"show_detail" json:"show_detail"`
}

// Duration is a time.Duration that reads and writes as "6s", "250ms", ...
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service bound to the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/codesearch/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "codesearch", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal renders config as TOML
func Marshal(config *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	level := "info"
	sink := string(logging.SinkFile)
	maxSize, maxBackups, maxAge := 10, 3, 14
	compress := true

	return &Config{
		Server: ServerSettings{
			BaseURL:    DefaultBaseURL,
			IndexField: IndexFieldURL,
		},
		UI: UISettings{
			AlertTimeout:        Duration{6 * time.Second},
			DiscardStaleResults: true,
			ShowDetail:          true,
		},
		Logging: logging.Config{
			Level:      &level,
			Sink:       &sink,
			MaxSizeMB:  &maxSize,
			MaxBackups: &maxBackups,
			MaxAgeDays: &maxAge,
			Compress:   &compress,
		},
	}
}

// Validate rejects settings the client cannot run with
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("server.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.base_url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("server.base_url: missing host in %q", c.Server.BaseURL)
	}
	if c.Server.Timeout.Duration < 0 {
		return fmt.Errorf("server.timeout: must be >= 0 (got %s)", c.Server.Timeout)
	}
	switch c.Server.IndexField {
	case IndexFieldURL, IndexFieldProjectPath:
	default:
		return fmt.Errorf("server.index_field: must be %q or %q (got %q)", IndexFieldURL, IndexFieldProjectPath, c.Server.IndexField)
	}
	if c.UI.AlertTimeout.Duration < 0 {
		return fmt.Errorf("ui.alert_timeout: must be >= 0 (got %s)", c.UI.AlertTimeout)
	}
	if _, err := c.Logging.Normalize(); err != nil {
		return err
	}
	return nil
}
