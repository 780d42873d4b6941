package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CleaningService/internal/domain"
	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Slots    SlotsConfig    `toml:"slots"`
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

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SlotsConfig канонический шаблон слотов по умолчанию
// Применяется при ленивой генерации слотов на дату, у которой их ещё нет
type SlotsConfig struct {
	DayStart      string `toml:"day_start"`
	DayEnd        string `toml:"day_end"`
	WindowMinutes int    `toml:"window_minutes"`
	MaxOccupancy  int    `toml:"max_occupancy"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if _, err := cfg.Slots.Template(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// DSN собирает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Template конвертирует секцию [slots] в доменный шаблон
func (c *SlotsConfig) Template() (domain.SlotTemplate, error) {
	tmpl := domain.SlotTemplate{
		DayStart:      types.TimeString(c.DayStart),
		DayEnd:        types.TimeString(c.DayEnd),
		WindowMinutes: c.WindowMinutes,
		MaxOccupancy:  c.MaxOccupancy,
	}
	if err := tmpl.Validate(); err != nil {
		return domain.SlotTemplate{}, err
	}
	return tmpl, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-cleaning-service"
	}
	if c.Slots.DayStart == "" {
		c.Slots.DayStart = domain.DefaultDayStart
	}
	if c.Slots.DayEnd == "" {
		c.Slots.DayEnd = domain.DefaultDayEnd
	}
	if c.Slots.WindowMinutes == 0 {
		c.Slots.WindowMinutes = domain.DefaultWindowMinutes
	}
	if c.Slots.MaxOccupancy == 0 {
		c.Slots.MaxOccupancy = domain.DefaultMaxOccupancy
	}
}
