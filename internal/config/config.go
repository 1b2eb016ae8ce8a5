// Package config loads a11ypanel configuration from YAML via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Sound   SoundConfig   `mapstructure:"sound" yaml:"sound"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// StorageConfig selects where the settings record is persisted.
type StorageConfig struct {
	// Backend is one of "file", "sqlite" or "memory".
	Backend string `mapstructure:"backend" yaml:"backend"`
	// Path overrides the default location. For "file" it is a directory,
	// for "sqlite" a database file.
	Path string `mapstructure:"path" yaml:"path,omitempty"`
}

// SoundConfig tunes the feedback tone. Whether feedback plays at all is a
// user setting, not configuration; Enabled is a global kill switch on top.
type SoundConfig struct {
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	FrequencyHz  float64 `mapstructure:"frequency_hz" yaml:"frequency_hz"`
	DurationMs   int     `mapstructure:"duration_ms" yaml:"duration_ms"`
	Gain         float64 `mapstructure:"gain" yaml:"gain"`
	OverrideFile string  `mapstructure:"override_file" yaml:"override_file,omitempty"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path,omitempty"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Storage: StorageConfig{
			Backend: "file",
		},
		Sound: SoundConfig{
			Enabled:     true,
			FrequencyHz: 800,
			DurationMs:  100,
			Gain:        0.1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("sound.enabled", d.Sound.Enabled)
	v.SetDefault("sound.frequency_hz", d.Sound.FrequencyHz)
	v.SetDefault("sound.duration_ms", d.Sound.DurationMs)
	v.SetDefault("sound.gain", d.Sound.Gain)
	v.SetDefault("sound.override_file", d.Sound.OverrideFile)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads configuration. With an explicit path the file must exist.
// Otherwise .a11ypanel/config.yaml in the working directory and then
// ~/.config/a11ypanel/config.yaml are tried; finding neither is not an
// error. Returns the config and the file it came from ("" if none).
func Load(path string) (Config, string, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("A11YPANEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, "", fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ProjectConfigDir)
		if dir := UserConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, "", fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	return cfg, v.ConfigFileUsed(), nil
}

// ProjectConfigDir is the project-local config directory.
const ProjectConfigDir = ".a11ypanel"

// UserConfigDir returns ~/.config/a11ypanel, or "" if home is unknown.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "a11ypanel")
}
