package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings for both binaries.
// Values come from config.yaml (optional) and are overridden by env vars.
type Config struct {
	Env  string `yaml:"env"`
	Port int    `yaml:"port"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`

	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	JWT struct {
		Secret      string `yaml:"secret"`
		ExpiryHours int    `yaml:"expiry_hours"`
	} `yaml:"jwt"`

	News struct {
		// GatewayURL is where the feed aggregator finds the news proxy
		GatewayURL string `yaml:"gateway_url"`
		// UpstreamURL and APIKey are used by the proxy binary only
		UpstreamURL string `yaml:"upstream_url"`
		APIKey      string `yaml:"api_key"`
		ProxyPort   int    `yaml:"proxy_port"`
	} `yaml:"news"`

	CORS struct {
		AllowOrigins string `yaml:"allow_origins"`
	} `yaml:"cors"`
}

// Load reads config.yaml when present, then applies env var overrides
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{Env: "development", Port: 8080}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "openvoice"
	cfg.Database.Name = "openvoice"
	cfg.Database.SSLMode = "disable"
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = 6379
	cfg.Redis.PoolSize = 10
	cfg.JWT.ExpiryHours = 24
	cfg.News.GatewayURL = "http://localhost:5050"
	cfg.News.UpstreamURL = "https://newsdata.io/api/1/news"
	cfg.News.ProxyPort = 5050
	return cfg
}

func applyEnv(cfg *Config) {
	setStr(&cfg.Env, "APP_ENV")
	setInt(&cfg.Port, "PORT")
	setStr(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setStr(&cfg.Database.User, "DB_USER")
	setStr(&cfg.Database.Password, "DB_PASSWORD")
	setStr(&cfg.Database.Name, "DB_NAME")
	setStr(&cfg.Database.SSLMode, "DB_SSLMODE")
	setStr(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setStr(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")
	setStr(&cfg.JWT.Secret, "JWT_SECRET")
	setInt(&cfg.JWT.ExpiryHours, "JWT_EXPIRY_HOURS")
	setStr(&cfg.News.GatewayURL, "NEWS_GATEWAY_URL")
	setStr(&cfg.News.UpstreamURL, "NEWS_UPSTREAM_URL")
	setStr(&cfg.News.APIKey, "NEWS_API_KEY")
	setInt(&cfg.News.ProxyPort, "NEWS_PROXY_PORT")
	setStr(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// DSN builds the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.Name, c.Database.SSLMode)
}
