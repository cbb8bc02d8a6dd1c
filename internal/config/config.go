// Package config loads pd settings from defaults, an optional TOML file and
// PD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/Timmy6942025/pd/internal/pager"
)

const (
	// AppName is used for the config directory and the env prefix.
	AppName = "pd"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	EnvPrefix = "PD"
)

type Config struct {
	LogLevel string        `mapstructure:"log_level" toml:"log_level"`
	Color    bool          `mapstructure:"color" toml:"color"`
	Pager    PagerConfig   `mapstructure:"pager" toml:"pager"`
	Sources  SourcesConfig `mapstructure:"sources" toml:"sources"`
}

type PagerConfig struct {
	Command string   `mapstructure:"command" toml:"command"`
	Args    []string `mapstructure:"args" toml:"args"`
}

type SourcesConfig struct {
	System    SourceConfig `mapstructure:"system" toml:"system"`
	User      SourceConfig `mapstructure:"user" toml:"user"`
	Sandboxed SourceConfig `mapstructure:"sandboxed" toml:"sandboxed"`
}

type SourceConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
}

// DefaultConfig searches all three sources and pages through less -R +Gg -~.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Color:    true,
		Pager: PagerConfig{
			Command: pager.DefaultCommand,
			Args:    append([]string(nil), pager.DefaultArgs...),
		},
		Sources: SourcesConfig{
			System:    SourceConfig{Enabled: true},
			User:      SourceConfig{Enabled: true},
			Sandboxed: SourceConfig{Enabled: true},
		},
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/pd, defaulting to ~/.config/pd.
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration. An explicit path must exist and parse; the
// default location is optional.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("pager.command", defaults.Pager.Command)
	v.SetDefault("pager.args", defaults.Pager.Args)
	v.SetDefault("sources.system.enabled", defaults.Sources.System.Enabled)
	v.SetDefault("sources.user.enabled", defaults.Sources.User.Enabled)
	v.SetDefault("sources.sandboxed.enabled", defaults.Sources.Sandboxed.Enabled)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType(ConfigFileExt)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	} else if dir, err := ConfigDir(); err == nil {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("load config from %s: %w", dir, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	if strings.TrimSpace(cfg.Pager.Command) == "" {
		cfg.Pager.Command = defaults.Pager.Command
	}

	return cfg, nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
