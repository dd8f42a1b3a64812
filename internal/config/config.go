package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration, loaded once at startup.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

type AppConfig struct {
	Addr            string        `mapstructure:"addr"`
	GinMode         string        `mapstructure:"gin_mode"`
	DefaultPageSize int           `mapstructure:"default_page_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// UpstreamConfig points at the remote collection service. Timeout defaults
// to zero, i.e. no timeout: a hung upstream request hangs the browse call,
// matching the behavior of the original client.
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// Load reads configuration from ASTUDIO_* environment variables with
// sensible defaults for local development.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.addr", ":8080")
	v.SetDefault("app.gin_mode", "")
	v.SetDefault("app.default_page_size", 5)
	v.SetDefault("app.shutdown_timeout", 10*time.Second)
	v.SetDefault("upstream.base_url", "https://dummyjson.com")
	v.SetDefault("upstream.timeout", 0)
	v.SetDefault("cors.allow_origins", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("astudio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.App.DefaultPageSize <= 0 {
		return nil, fmt.Errorf("default page size must be positive, got %d", cfg.App.DefaultPageSize)
	}
	if strings.TrimSpace(cfg.Upstream.BaseURL) == "" {
		return nil, fmt.Errorf("upstream base URL is required")
	}
	return &cfg, nil
}
