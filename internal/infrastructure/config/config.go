// Package config loads application configuration from files and
// environment variables via Viper. Environment variables use the SOUSCHEF
// prefix, e.g. SOUSCHEF_AI_PROVIDER.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	AI       AIConfig       `mapstructure:"ai"`
	Memory   MemoryConfig   `mapstructure:"memory"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	Development bool   `mapstructure:"development"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns host:port for the Redis client.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite or postgres
	DSN    string `mapstructure:"dsn"`
}

type AIConfig struct {
	Provider       string        `mapstructure:"provider"` // ollama or mock
	BaseURL        string        `mapstructure:"base_url"`
	Model          string        `mapstructure:"model"`
	FallbackModel  string        `mapstructure:"fallback_model"`
	Timeout        time.Duration `mapstructure:"timeout"`
	InterCallDelay time.Duration `mapstructure:"inter_call_delay"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
}

type MemoryConfig struct {
	Window     int           `mapstructure:"window"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// Load reads configuration from the optional config file and the
// environment, applying defaults first.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("SOUSCHEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, env and defaults cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "souschef")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.development", false)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "souschef.db")

	v.SetDefault("ai.provider", "ollama")
	v.SetDefault("ai.base_url", "http://localhost:11434")
	v.SetDefault("ai.model", "llama3.2:3b")
	v.SetDefault("ai.fallback_model", "llama3.2:1b")
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("ai.inter_call_delay", "200ms")
	v.SetDefault("ai.cache_ttl", "1h")

	v.SetDefault("memory.window", 10)
	v.SetDefault("memory.session_ttl", "24h")
}

// Validate checks the fields that would otherwise fail at first use.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	switch c.AI.Provider {
	case "ollama", "mock":
	default:
		return fmt.Errorf("unsupported ai provider: %q", c.AI.Provider)
	}
	if c.Memory.Window < 1 {
		return fmt.Errorf("memory window must be positive, got %d", c.Memory.Window)
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
