package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "config/config.yaml"

type (
	Config struct {
		App        `yaml:"app"`
		HTTP       `yaml:"http"`
		Log        `yaml:"log"`
		Prometheus `yaml:"prometheus"`
		DebugLog   `yaml:"debug_log"`
		Token      `yaml:"token"`
		PG         `yaml:"pg"`
		Kafka      `yaml:"kafka"`
	}

	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Version string `env-required:"true" yaml:"version" env:"APP_VERSION"`
		// Debug and DebugDisplay together allow error details in responses.
		Debug        bool `yaml:"debug" env:"APP_DEBUG" env-default:"false"`
		DebugDisplay bool `yaml:"debug_display" env:"APP_DEBUG_DISPLAY" env-default:"false"`
	}

	HTTP struct {
		Port            string        `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"3s"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	Prometheus struct {
		Port string `yaml:"port" env:"PROMETHEUS_PORT" env-default:"9090"`
	}

	DebugLog struct {
		Path         string `env-required:"true" yaml:"path" env:"DEBUG_LOG_PATH"`
		CaptureLevel string `yaml:"capture_level" env:"DEBUG_LOG_CAPTURE_LEVEL" env-default:"error"`
	}

	Token struct {
		Secret   string        `yaml:"secret" env:"TOKEN_SECRET"`
		Lifetime time.Duration `yaml:"lifetime" env:"TOKEN_LIFETIME" env-default:"24h"`
	}

	PG struct {
		URL         string `yaml:"url" env:"PG_URL"`
		MaxPoolSize int    `yaml:"max_pool_size" env:"PG_MAX_POOL_SIZE" env-default:"2"`
	}

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"debuglog-actions"`
	}
)

// New loads .env if present, then the YAML file at CONFIG_PATH (or
// config/config.yaml) overridden by environment variables.
func New() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := &Config{}

	if err := cleanenv.ReadConfig(filepath.Clean(path), cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// DisplayErrors reports whether error details may be shown in-band.
func (c *Config) DisplayErrors() bool {
	return c.App.Debug && c.App.DebugDisplay
}

func (c *Config) PGEnabled() bool {
	return c.PG.URL != ""
}

func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func (c *Config) validate() error {
	if !filepath.IsAbs(c.DebugLog.Path) {
		return fmt.Errorf("debug_log.path %q must be absolute", c.DebugLog.Path)
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("http timeouts must be positive")
	}
	if c.Token.Lifetime <= 0 {
		return fmt.Errorf("token.lifetime must be positive, got %s", c.Token.Lifetime)
	}
	return nil
}
