package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultBaseURL адрес публичного API городских сервисов
const DefaultBaseURL = "https://mobile.wemakesoftwares.com"

// Config конфигурация клиента
type Config struct {
	Server        ServerConfig        `toml:"server"`
	API           APIConfig           `toml:"api"`
	Storage       StorageConfig       `toml:"storage"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки локального HTTP шлюза
type ServerConfig struct {
	Host            string   `toml:"host"`
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// APIConfig настройки клиента внешнего API
type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	Timeout   int    `toml:"timeout"`
	UserAgent string `toml:"user_agent"`
}

// StorageConfig настройки локального хранилища сессии.
// DSN вида postgres://... использует PostgreSQL, иначе это путь к файлу sqlite.
type StorageConfig struct {
	DSN             string `toml:"dsn"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotificationsConfig настройки хранилища уведомлений
type NotificationsConfig struct {
	RefreshOnStart bool `toml:"refresh_on_start"`
}

// Load читает toml-файл, затем применяет .env и переменные окружения.
// Отсутствующий файл не считается ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Notifications: NotificationsConfig{RefreshOnStart: true},
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CITIZEN_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("CITIZEN_STORAGE_DSN"); v != "" {
		c.Storage.DSN = v
	}
	if v := os.Getenv("CITIZEN_LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("CITIZEN_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CITIZEN_HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8085
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 20
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = "citizen-client/1.0"
	}
	if c.Storage.DSN == "" {
		c.Storage.DSN = "citizen.db"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.Format == "" {
		c.Logs.Format = "text"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "citizen-client"
	}
}

// Validate проверяет значения после применения умолчаний
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("config: api.timeout must not be negative")
	}
	switch c.Logs.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown logs.format %q", c.Logs.Format)
	}
	return nil
}

// Addr адрес, на котором слушает шлюз
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.HTTPPort)
}
