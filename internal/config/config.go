package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultDirName        = ".quadro"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "quadro.db"
)

// Views that `quadro` shows when run without a subcommand.
const (
	ViewDashboard = "dashboard"
	ViewKanban    = "kanban"
	ViewBacklog   = "backlog"
)

var ErrConfigExists = errors.New("config file already exists")

type Config struct {
	DBPath      string `toml:"db_path"`
	Timezone    string `toml:"timezone"`
	DefaultView string `toml:"default_view"`
	LogUseCases bool   `toml:"log_use_cases"`
	Color       bool   `toml:"color"`
}

// Default returns the configuration used when no file exists. dir is the
// quadro home directory.
func Default(dir string) Config {
	return Config{
		DBPath:      filepath.Join(dir, DefaultDBName),
		Timezone:    "Local",
		DefaultView: ViewDashboard,
		LogUseCases: false,
		Color:       true,
	}
}

// DefaultPath returns $QUADRO_CONFIG or ~/.quadro/config.toml.
func DefaultPath() (string, error) {
	if v := os.Getenv("QUADRO_CONFIG"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName, DefaultConfigFileName), nil
}

// Load reads the TOML file at path, then applies environment overrides.
// A missing file yields the defaults. A relative db_path is resolved
// against the config file's directory.
func Load(path string) (Config, error) {
	dir := filepath.Dir(path)
	cfg := Default(dir)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, DefaultDBName)
	} else if cfg.DBPath != ":memory:" && !filepath.IsAbs(cfg.DBPath) {
		cfg.DBPath = filepath.Join(dir, cfg.DBPath)
	}
	if cfg.DefaultView == "" {
		cfg.DefaultView = ViewDashboard
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("QUADRO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("QUADRO_TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("QUADRO_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = false
	}
}

func (c Config) Validate() error {
	switch c.DefaultView {
	case ViewDashboard, ViewKanban, ViewBacklog:
	default:
		return fmt.Errorf("default_view %q: must be one of %s, %s, %s", c.DefaultView, ViewDashboard, ViewKanban, ViewBacklog)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the timezone used to anchor deadlines at local midnight.
// Empty and "Local" mean the system zone.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Marshal renders c as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Init writes the default configuration to path. An existing file is kept
// unless force is set.
func Init(path string, force bool) (Config, error) {
	cfg := Default(filepath.Dir(path))
	if _, err := os.Stat(path); err == nil && !force {
		return cfg, fmt.Errorf("%s: %w", path, ErrConfigExists)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cfg, fmt.Errorf("creating config directory: %w", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		return cfg, err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return cfg, fmt.Errorf("writing config: %w", err)
	}
	return cfg, nil
}
