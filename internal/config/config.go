package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Booking  BookingConfig  `toml:"booking"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к базе данных
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
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

// AdminConfig учетные данные администратора
// Токен сравнивается с заголовком X-Admin-Token (capability-токен)
type AdminConfig struct {
	Token string `toml:"token"`
}

// BookingConfig настройки движка слотов
// Набор слотов фиксирован на весь процесс и не меняется в рантайме
type BookingConfig struct {
	Slots []string `toml:"slots"`
}

// CatalogConfig статический каталог услуг
type CatalogConfig struct {
	Tiers []TierConfig `toml:"tiers"`
}

// TierConfig описание одного тарифа
type TierConfig struct {
	ID          string  `toml:"id"`
	Title       string  `toml:"title"`
	Price       float64 `toml:"price"`
	Description string  `toml:"description"`
}

// Load читает конфигурацию из TOML файла, применяет дефолты и валидирует
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с дефолтными значениями
// Слоты и тарифы соответствуют базовому прайс-листу RoyalRinse
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "stdout",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Booking: BookingConfig{
			Slots: []string{
				"08:00", "09:00", "10:00", "11:00", "12:00",
				"13:00", "14:00", "15:00", "16:00",
			},
		},
		Catalog: CatalogConfig{
			Tiers: []TierConfig{
				{ID: "basic", Title: "Basic Rinse", Price: 15.0, Description: "Exterior wash & dry"},
				{ID: "deluxe", Title: "Deluxe Rinse", Price: 30.0, Description: "Exterior + interior vacuum"},
				{ID: "royal", Title: "Royal Rinse", Price: 50.0, Description: "Full detail: wax, polish, deep interior clean"},
			},
		},
	}
}

// validate проверяет корректность конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("config: admin.token is required")
	}
	if len(c.Booking.Slots) == 0 {
		return fmt.Errorf("config: booking.slots must not be empty")
	}
	if len(c.Catalog.Tiers) == 0 {
		return fmt.Errorf("config: catalog.tiers must not be empty")
	}

	seen := make(map[string]struct{}, len(c.Catalog.Tiers))
	for _, tier := range c.Catalog.Tiers {
		if tier.ID == "" {
			return fmt.Errorf("config: catalog tier with empty id")
		}
		if tier.Price < 0 {
			return fmt.Errorf("config: catalog tier %s has negative price", tier.ID)
		}
		if _, ok := seen[tier.ID]; ok {
			return fmt.Errorf("config: duplicate catalog tier %s", tier.ID)
		}
		seen[tier.ID] = struct{}{}
	}

	return nil
}
