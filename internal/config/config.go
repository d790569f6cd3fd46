// Package config loads duetrackr settings from an optional YAML file and
// DUETRACKR_* environment variables. Preferences chosen inside the app live
// in the database, not here.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/sadopc/duetrackr/internal/countdown"
)

const (
	AppName = "duetrackr"

	DefaultDateFormat = "02/01/2006"
)

type Config struct {
	DatabasePath  string `mapstructure:"database_path" yaml:"database_path"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
	Debug         bool   `mapstructure:"debug" yaml:"debug"`
	DefaultTarget string `mapstructure:"default_target" yaml:"default_target"`
	DateFormat    string `mapstructure:"date_format" yaml:"date_format"`

	// Fallbacks lists the values Load replaced with a default.
	Fallbacks []Fallback `mapstructure:"-" yaml:"-"`
}

// Fallback records an invalid setting and the default used instead.
type Fallback struct {
	Key     string
	Value   string
	Default string
}

// Load reads configPath, or searches the working directory and the user
// config directory for config.yaml when configPath is empty. A missing file
// is not an error.
func Load(configPath string, log *zap.Logger) (*Config, error) {
	if log == nil {
		log = zap.NewNop()
	}
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dir, err := Dir()
	if err != nil {
		dir = "."
	}
	v.SetDefault("database_path", filepath.Join(dir, AppName+".db"))
	v.SetDefault("log_file", filepath.Join(dir, AppName+".log"))
	v.SetDefault("debug", false)
	v.SetDefault("default_target", countdown.Primary.String())
	v.SetDefault("date_format", DefaultDateFormat)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("config file not found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if _, err := countdown.ParseTarget(cfg.DefaultTarget); err != nil {
		cfg.fallback("default_target", cfg.DefaultTarget, countdown.Primary.String())
		cfg.DefaultTarget = countdown.Primary.String()
	}
	if !validDateFormat(cfg.DateFormat) {
		cfg.fallback("date_format", cfg.DateFormat, DefaultDateFormat)
		cfg.DateFormat = DefaultDateFormat
	}

	cfg.LogFallbacks(log)
	log.Debug("configuration loaded", zap.Any("config", cfg))
	return &cfg, nil
}

func (c *Config) fallback(key, value, def string) {
	c.Fallbacks = append(c.Fallbacks, Fallback{Key: key, Value: value, Default: def})
}

// LogFallbacks warns once per replaced value.
func (c *Config) LogFallbacks(log *zap.Logger) {
	for _, f := range c.Fallbacks {
		log.Warn("invalid config value, using default",
			zap.String("key", f.Key),
			zap.String("value", f.Value),
			zap.String("default", f.Default),
		)
	}
}

// Target returns the configured initial countdown target.
func (c *Config) Target() countdown.Target {
	t, _ := countdown.ParseTarget(c.DefaultTarget)
	return t
}

// Dir is ~/.config/duetrackr, honouring XDG_CONFIG_HOME.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// A layout must round-trip a date and carry day, month and year.
func validDateFormat(layout string) bool {
	if layout == "" {
		return false
	}
	ref := time.Date(2031, 11, 29, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(layout, ref.Format(layout))
	return err == nil && parsed.Equal(ref)
}
