package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"barber-dash/internal/logutil"
	"barber-dash/internal/table"
)

var ErrConfig = errors.New("configuration error")

// Environment variables that override the database URL, in priority order.
var databaseURLEnv = []string{"BARBERDASH_DATABASE_URL", "DATABASE_URL"}

type SavedConnection struct {
	Name string `toml:"name"`
	URI  string `toml:"uri"`
}

type Config struct {
	DatabaseURL     string            `toml:"database-url"`
	PageSize        int               `toml:"page-size"`
	PageSizes       []int             `toml:"page-sizes"`
	SortIndicatorMS int               `toml:"sort-indicator-ms"`
	QueryTimeoutSec int               `toml:"query-timeout-sec"`
	Locale          string            `toml:"locale"`
	Log             logutil.LogConfig `toml:"log"`
	Connections     []SavedConnection `toml:"connections"`

	path string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		PageSize:        table.DefaultPageSize,
		PageSizes:       slices.Clone(table.DefaultPageSizes),
		SortIndicatorMS: 3000,
		QueryTimeoutSec: 30,
		Locale:          "id",
		Log: logutil.LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSize:    10,
			MaxDays:    7,
			MaxBackups: 3,
		},
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "barber-dash"), nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads .env, then the default config file, then applies environment
// overrides. A missing config file yields the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("failed to read .env: %w", err)
	}
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path and applies environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	for _, key := range databaseURLEnv {
		if v := os.Getenv(key); v != "" {
			c.DatabaseURL = v
			return
		}
	}
}

// Validate checks the table settings.
func (c *Config) Validate() error {
	if len(c.PageSizes) == 0 {
		return fmt.Errorf("%w: page-sizes must not be empty", ErrConfig)
	}
	for _, n := range c.PageSizes {
		if n < 1 {
			return fmt.Errorf("%w: page size %d must be positive", ErrConfig, n)
		}
	}
	if !slices.Contains(c.PageSizes, c.PageSize) {
		return fmt.Errorf("%w: page-size %d is not one of %v", ErrConfig, c.PageSize, c.PageSizes)
	}
	if c.SortIndicatorMS <= 0 {
		return fmt.Errorf("%w: sort-indicator-ms must be positive", ErrConfig)
	}
	if c.QueryTimeoutSec <= 0 {
		return fmt.Errorf("%w: query-timeout-sec must be positive", ErrConfig)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrConfig, c.Locale, err)
	}
	return nil
}

// SortIndicatorDelay is how long the sort arrow stays visible.
func (c *Config) SortIndicatorDelay() time.Duration {
	return time.Duration(c.SortIndicatorMS) * time.Millisecond
}

// QueryTimeout bounds each data fetch.
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSec) * time.Second
}

// LocaleTag is the collation locale for text sorting.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Indonesian
	}
	return tag
}

// Save writes the config back to the file it was loaded from.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}

func (c *Config) Add(conn SavedConnection) {
	for i, existing := range c.Connections {
		if existing.Name == conn.Name {
			c.Connections[i] = conn
			return
		}
	}
	c.Connections = append(c.Connections, conn)
}

func (c *Config) Delete(index int) {
	if index < 0 || index >= len(c.Connections) {
		return
	}
	c.Connections = append(c.Connections[:index], c.Connections[index+1:]...)
}
