package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig      `toml:"server"`
	Logs           LogsConfig        `toml:"logs"`
	Metrics        MetricsConfig     `toml:"metrics"`
	BookingService IntegrationConfig `toml:"booking_service"`
	StaffService   IntegrationConfig `toml:"staff_service"`
	Schedule       ScheduleConfig    `toml:"schedule"`
}

// ServerConfig конфигурация HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig конфигурация логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig конфигурация метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig конфигурация интеграционного клиента
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ScheduleConfig параметры календарной сетки
type ScheduleConfig struct {
	GridStartHour int `toml:"grid_start_hour"`
	GridEndHour   int `toml:"grid_end_hour"`
}

// Load загружает конфигурацию из TOML файла.
// Если рядом есть .env файл, подхватывает его и позволяет переопределить
// путь к конфигу через переменную окружения CONFIG_PATH.
func Load(path string) (*Config, error) {
	// .env опционален, отсутствие файла не является ошибкой
	_ = godotenv.Load()

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.BookingService.URL == "" {
		return fmt.Errorf("booking_service.url is required")
	}
	if c.StaffService.URL == "" {
		return fmt.Errorf("staff_service.url is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Schedule.GridStartHour == 0 && c.Schedule.GridEndHour == 0 {
		c.Schedule.GridStartHour = 8
		c.Schedule.GridEndHour = 20
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.BookingService.Timeout == 0 {
		c.BookingService.Timeout = 5
	}
	if c.StaffService.Timeout == 0 {
		c.StaffService.Timeout = 5
	}
}
