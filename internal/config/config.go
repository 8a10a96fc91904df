package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/samvad-hq/urbandict/pkg/urban"
)

// Config holds the CLI configuration loaded from flags, environment variables and .env.
type Config struct {
	AppName        string        `mapstructure:"app_name" validate:"required"`
	LogLevel       string        `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int64         `mapstructure:"timeout_seconds" validate:"gte=0"`
	Timeout        time.Duration `mapstructure:"-"`
	Output         string        `mapstructure:"output" validate:"oneof=text json yaml"`
	NoColor        bool          `mapstructure:"no_color"`
}

// EnvPrefix namespaces every environment variable, e.g. URBAN_LOG_LEVEL.
const EnvPrefix = "URBAN"

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"log-level": "log_level",
	"base-url":  "base_url",
	"timeout":   "timeout_seconds",
	"output":    "output",
	"no-color":  "no_color",
}

// Load reads configuration from .env, environment variables and, when flags is
// non-nil, any of its flags the user set explicitly.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("app_name", "urban")
	v.SetDefault("log_level", "warn")
	v.SetDefault("base_url", urban.DefaultBaseURL)
	v.SetDefault("timeout_seconds", 15)
	v.SetDefault("output", "text")
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}
