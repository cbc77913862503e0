package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Redis          RedisConfig          `toml:"redis"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	RateLimit      RateLimitConfig      `toml:"rate_limit"`
	CatalogService CatalogServiceConfig `toml:"catalog_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к базе данных
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RateLimitConfig настройки ограничения частоты запросов
type RateLimitConfig struct {
	Enabled       bool  `toml:"enabled"`
	Requests      int64 `toml:"requests"`       // запросов за окно
	WindowSeconds int   `toml:"window_seconds"` // размер окна в секундах
}

// CatalogServiceConfig настройки клиента каталога
type CatalogServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	if c.CatalogService.URL == "" {
		return fmt.Errorf("catalog_service.url is required")
	}
	if c.RateLimit.Enabled && c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive when rate limiting is enabled")
	}
	return nil
}
