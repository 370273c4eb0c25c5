package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingDSN возвращается, если не задан DB_DSN
var ErrMissingDSN = errors.New("DB_DSN is required but not set")

type Config struct {
	TelegramToken   string        `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN           string        `mapstructure:"DB_DSN"`
	Environment     string        `mapstructure:"ENV"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR"`
	MigrationsDir   string        `mapstructure:"MIGRATIONS_DIR"`
	RefreshInterval time.Duration `mapstructure:"CALENDAR_REFRESH_INTERVAL"`
	CacheTTL        time.Duration `mapstructure:"CALENDAR_CACHE_TTL"`
	Timezone        string        `mapstructure:"TIMEZONE"`
	ChatStateTTL    time.Duration `mapstructure:"CHAT_STATE_TTL"`

	location *time.Location
}

func defaults(v *viper.Viper) {
	v.SetDefault("TELEGRAM_TOKEN", "")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("ENV", "development")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("CALENDAR_REFRESH_INTERVAL", 15*time.Minute)
	v.SetDefault("CALENDAR_CACHE_TTL", 5*time.Minute)
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("CHAT_STATE_TTL", 24*time.Hour)
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	defaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBDSN == "" {
		return nil, ErrMissingDSN
	}
	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("CALENDAR_REFRESH_INTERVAL must be positive, got %s", cfg.RefreshInterval)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// Location часовой пояс школы; все даты календаря считаются в нём
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// IsProduction включает JSON-логи и отключает отладку HTTP
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
