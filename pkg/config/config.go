package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"CryptoAPI/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	CoinGecko struct {
		BaseURL        string        `yaml:"base_url"`
		APIKey         string        `yaml:"api_key"`
		Currency       string        `yaml:"currency"`
		Timeout        time.Duration `yaml:"timeout"`
		RateLimit      float64       `yaml:"rate_limit"` // requests per second
		RateBurst      int           `yaml:"rate_burst"`
		RetryMax       int           `yaml:"retry_max"`
		BackoffInitial time.Duration `yaml:"backoff_initial"`
		BackoffMax     time.Duration `yaml:"backoff_max"`
	} `yaml:"coingecko"`
	Cache struct {
		Enabled bool `yaml:"enabled"`
		TTL     struct {
			Markets time.Duration `yaml:"markets"`
			Profile time.Duration `yaml:"profile"`
			Chart   time.Duration `yaml:"chart"`
			News    time.Duration `yaml:"news"`
		} `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	News struct {
		Feeds   []string      `yaml:"feeds"`
		Timeout time.Duration `yaml:"timeout"`
		Limit   int           `yaml:"limit"`
	} `yaml:"news"`
	Stream struct {
		Enabled  bool     `yaml:"enabled"`
		Assets   []string `yaml:"assets"`
		Interval string   `yaml:"interval"` // cron spec, e.g. "@every 30s"
	} `yaml:"stream"`
	Reference struct {
		Assets []string `yaml:"assets"` // correlation baselines
	} `yaml:"reference"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		c.CoinGecko.APIKey = v
	}
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		c.CoinGecko.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("NEWS_FEEDS"); v != "" {
		c.News.Feeds = strings.Split(v, ",")
	}
	if v := os.Getenv("STREAM_ASSETS"); v != "" {
		c.Stream.Assets = strings.Split(v, ",")
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.CoinGecko.BaseURL == "" {
		return fmt.Errorf("coingecko.base_url is required")
	}
	if c.CoinGecko.Currency == "" {
		return fmt.Errorf("coingecko.currency is required")
	}
	if c.Stream.Enabled && len(c.Stream.Assets) == 0 {
		return fmt.Errorf("stream.assets cannot be empty when stream is enabled")
	}
	if c.Stream.Enabled && c.Stream.Interval == "" {
		return fmt.Errorf("stream.interval is required when stream is enabled")
	}
	return nil
}
