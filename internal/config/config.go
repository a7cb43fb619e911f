// Package config loads the CLI shell configuration. The engine itself
// takes no configuration; everything here parameterizes the surrounding
// tooling (logging, archive target, point value overrides).
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/novalabs/novacore/internal/core"
)

type Config struct {
	Log         LogConfig          `mapstructure:"log"`
	Metrics     MetricsConfig      `mapstructure:"metrics"`
	Archive     ArchiveConfig      `mapstructure:"archive"`
	PointValues map[string]float64 `mapstructure:"point_values"`
}

type LogConfig struct {
	Development bool   `mapstructure:"development"`
	Level       string `mapstructure:"level"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ArchiveConfig selects the cold storage backend for analysis exports.
type ArchiveConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Type    string   `mapstructure:"type"` // "localfs" or "s3"
	Path    string   `mapstructure:"path"` // For localfs
	S3      S3Config `mapstructure:"s3"`   // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// Load reads configuration from file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.WrapError(core.ErrConfigMissing, err)
		}
		return nil, core.WrapError(core.ErrConfigInvalid, err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, core.WrapError(core.ErrConfigInvalid, err)
	}

	return &cfg, nil
}

// Defaults returns a config with sensible defaults.
func Defaults() *Config {
	return &Config{
		Log: LogConfig{
			Development: true,
			Level:       "info",
		},
		Archive: ArchiveConfig{
			Type: "localfs",
			Path: "./archive",
		},
	}
}
