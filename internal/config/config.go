package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "SMC"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Payments PaymentsConfig `toml:"payments"`
	Broker   BrokerConfig   `toml:"broker"`
	Mail     MailConfig     `toml:"mail"`
	Courts   CourtsConfig   `toml:"courts"`
}

// ServerConfig настройки HTTP сервера. Таймауты в секундах
type ServerConfig struct {
	HTTPPort                int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout             int `toml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout            int `toml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout             int `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout         int `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	OperationTimeoutSeconds int `toml:"operation_timeout_seconds" envconfig:"OPERATION_TIMEOUT_SECONDS"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"HOST"`
	Port            int    `toml:"port" envconfig:"PORT"`
	User            string `toml:"user" envconfig:"USER"`
	Password        string `toml:"password" envconfig:"PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" envconfig:"LEVEL"`
	File  string `toml:"file" envconfig:"FILE"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"ENABLED"`
	Path        string `toml:"path" envconfig:"PATH"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME"`
}

// AuthConfig проверка токенов провайдера идентификации
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret" envconfig:"JWT_SECRET"`
	Issuer    string `toml:"issuer" envconfig:"ISSUER"`
}

// PaymentsConfig настройки платежной системы (Razorpay)
type PaymentsConfig struct {
	Enabled         bool   `toml:"enabled" envconfig:"ENABLED"`
	KeyID           string `toml:"key_id" envconfig:"KEY_ID"`
	KeySecret       string `toml:"key_secret" envconfig:"KEY_SECRET"`
	Currency        string `toml:"currency" envconfig:"CURRENCY"`
	VerifySignature bool   `toml:"verify_signature" envconfig:"VERIFY_SIGNATURE"`
}

// BrokerConfig настройки RabbitMQ для событий бронирований
type BrokerConfig struct {
	Enabled  bool   `toml:"enabled" envconfig:"ENABLED"`
	URL      string `toml:"url" envconfig:"URL"`
	Exchange string `toml:"exchange" envconfig:"EXCHANGE"`
}

// MailConfig настройки SMTP для писем с чеком
type MailConfig struct {
	Enabled  bool   `toml:"enabled" envconfig:"ENABLED"`
	Host     string `toml:"host" envconfig:"HOST"`
	Port     int    `toml:"port" envconfig:"PORT"`
	Username string `toml:"username" envconfig:"USERNAME"`
	Password string `toml:"password" envconfig:"PASSWORD"`
	From     string `toml:"from" envconfig:"FROM"`
}

// CourtsConfig настройки каталога кортов
type CourtsConfig struct {
	CacheTTLSeconds int `toml:"cache_ttl_seconds" envconfig:"CACHE_TTL_SECONDS"`
}

// OperationTimeout таймаут одной операции с внешними системами
func (c ServerConfig) OperationTimeout() time.Duration {
	return time.Duration(c.OperationTimeoutSeconds) * time.Second
}

// CacheTTL окно свежести кэша кортов
func (c CourtsConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Load читает config.toml, затем .env рядом с ним (если есть) и переменные окружения SMC_*
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(filepath.Join(filepath.Dir(path), ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Server.OperationTimeoutSeconds == 0 {
		c.Server.OperationTimeoutSeconds = 5
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
		c.Metrics.ServiceName = "club_booking_service"
	}
	if c.Payments.Currency == "" {
		c.Payments.Currency = "INR"
	}
	if c.Broker.Exchange == "" {
		c.Broker.Exchange = "club.bookings"
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.Courts.CacheTTLSeconds == 0 {
		c.Courts.CacheTTLSeconds = 600
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("config: database host and dbname are required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret is required (SMC_AUTH_JWT_SECRET)")
	}
	if c.Payments.Enabled && (c.Payments.KeyID == "" || c.Payments.KeySecret == "") {
		return errors.New("config: payments.key_id and payments.key_secret are required when payments are enabled")
	}
	if c.Broker.Enabled && c.Broker.URL == "" {
		return errors.New("config: broker.url is required when broker is enabled")
	}
	if c.Mail.Enabled && (c.Mail.Host == "" || c.Mail.From == "") {
		return errors.New("config: mail.host and mail.from are required when mail is enabled")
	}
	if c.Server.OperationTimeoutSeconds < 0 || c.Courts.CacheTTLSeconds < 0 {
		return errors.New("config: timeouts must be non-negative")
	}
	return nil
}
