package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the config file
const (
	EnvHistoryCapacity = "DBGCONSOLE_HISTORY_CAPACITY"
	EnvOutputCapacity  = "DBGCONSOLE_OUTPUT_CAPACITY"
	EnvPrompt          = "DBGCONSOLE_PROMPT"
	EnvLogLevel        = "DBGCONSOLE_LOG_LEVEL"
)

// Defaults
const (
	DefaultHistoryCapacity = 50
	DefaultOutputCapacity  = 50
	DefaultPrompt          = "> "
	DefaultLogLevel        = "error"
)

// Config holds the console settings
type Config struct {
	HistoryCapacity int    `yaml:"history_capacity"`
	OutputCapacity  int    `yaml:"output_capacity"`
	Prompt          string `yaml:"prompt"`
	LogLevel        string `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		HistoryCapacity: DefaultHistoryCapacity,
		OutputCapacity:  DefaultOutputCapacity,
		Prompt:          DefaultPrompt,
		LogLevel:        DefaultLogLevel,
	}
}

// Validate checks that the configuration can build a console
func (c Config) Validate() error {
	if c.HistoryCapacity < 1 {
		return fmt.Errorf("history capacity must be at least 1, got %d", c.HistoryCapacity)
	}
	if c.OutputCapacity < 1 {
		return fmt.Errorf("output capacity must be at least 1, got %d", c.OutputCapacity)
	}
	return nil
}

// DefaultPath returns ~/.dbgconsole/config.yaml
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".dbgconsole", "config.yaml"), nil
}

// Loader builds a Config from defaults, a YAML file, a .env file and the
// environment, each overriding the previous one.
type Loader struct {
	// Path is the YAML file. Empty means DefaultPath, which may be missing;
	// an explicit path must exist.
	Path string
	// EnvFile is loaded into the environment if present. Empty skips it.
	EnvFile string
	Manager Manager
}

// NewLoader creates a loader reading path and ./.env
func NewLoader(path string) *Loader {
	return &Loader{
		Path:    path,
		EnvFile: ".env",
		Manager: NewConfigManager(),
	}
}

// Load is NewLoader(path).Load()
func Load(path string) (Config, error) {
	return NewLoader(path).Load()
}

// Load builds and validates the configuration
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	if err := l.loadFile(&cfg); err != nil {
		return Config{}, err
	}

	if l.EnvFile != "" {
		if err := godotenv.Load(l.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", l.EnvFile, err)
		}
	}

	if err := l.applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (l *Loader) loadFile(cfg *Config) error {
	path, explicit := l.Path, l.Path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return err
		}
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (l *Loader) applyEnv(cfg *Config) error {
	m := l.Manager
	if m == nil {
		m = NewConfigManager()
	}

	for key, target := range map[string]*int{
		EnvHistoryCapacity: &cfg.HistoryCapacity,
		EnvOutputCapacity:  &cfg.OutputCapacity,
	} {
		if !m.Has(key) {
			continue
		}
		value, err := m.GetInt(key)
		if err != nil {
			return err
		}
		*target = value
	}

	cfg.Prompt = m.GetStringWithDefault(EnvPrompt, cfg.Prompt)
	cfg.LogLevel = m.GetStringWithDefault(EnvLogLevel, cfg.LogLevel)
	return nil
}
