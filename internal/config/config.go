// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Backend names accepted by Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Default values.
const (
	DefaultBackend   = BackendFile
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	ConfigFileName   = "config.toml"
)

// Environment variables, applied after the config file.
const (
	EnvConfig    = "TASKLIST_CONFIG"
	EnvDataDir   = "TASKLIST_DATA_DIR"
	EnvBackend   = "TASKLIST_BACKEND"
	EnvTheme     = "TASKLIST_THEME"
	EnvLogLevel  = "TASKLIST_LOG_LEVEL"
	EnvLogFormat = "TASKLIST_LOG_FORMAT"
)

// Config holds the full configuration for tasklist.
type Config struct {
	DataDir   string `toml:"data_dir"`
	Backend   string `toml:"backend"`
	Theme     string `toml:"theme"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Defaults returns a config with every field set.
func Defaults() *Config {
	return &Config{
		DataDir:   DefaultDataDir(),
		Backend:   DefaultBackend,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// DefaultDataDir is $XDG_DATA_HOME/tasklist, falling back to ~/.tasklist.
func DefaultDataDir() string {
	if x := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); x != "" {
		return filepath.Join(x, "tasklist")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".tasklist"
	}
	return filepath.Join(home, ".tasklist")
}

// DefaultConfigPath is ~/.tasklist/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ConfigFileName
	}
	return filepath.Join(home, ".tasklist", ConfigFileName)
}

// Load applies defaults, then the TOML file at path (missing is fine unless
// the path was given explicitly), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
		explicit = path != ""
	}
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := loadFile(cfg, path); err != nil {
		if !errors.Is(err, os.ErrNotExist) || explicit {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	fileCfg := &Config{}
	if _, err := toml.DecodeFile(path, fileCfg); err != nil {
		return err
	}
	merge(cfg, fileCfg)
	return nil
}

func applyEnv(cfg *Config) {
	merge(cfg, &Config{
		DataDir:   os.Getenv(EnvDataDir),
		Backend:   os.Getenv(EnvBackend),
		Theme:     os.Getenv(EnvTheme),
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
	})
}

// merge copies every non-blank field of src over dst.
func merge(dst, src *Config) {
	set := func(field *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*field = v
		}
	}
	set(&dst.DataDir, expandHome(src.DataDir))
	set(&dst.Backend, strings.ToLower(src.Backend))
	set(&dst.Theme, strings.ToLower(src.Theme))
	set(&dst.LogLevel, strings.ToLower(src.LogLevel))
	set(&dst.LogFormat, strings.ToLower(src.LogFormat))
}

// Override applies command-line values; blanks leave the field alone.
func (c *Config) Override(dataDir, backend, theme, logLevel string) error {
	merge(c, &Config{DataDir: dataDir, Backend: backend, Theme: theme, LogLevel: logLevel})
	return c.Validate()
}

// Validate rejects unknown backends and log settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want file|sqlite|memory)", c.Backend)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data dir is empty")
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
