package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Redis      RedisConfig      `toml:"redis"`
	Kafka      KafkaConfig      `toml:"kafka"`
	Auth       AuthConfig       `toml:"auth"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq в виде postgres:// URL.
// Учетные данные и имя базы экранируются, поэтому пароль может содержать любые символы.
func (d DatabaseConfig) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки кэша конфигурации доступности
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// KafkaConfig настройки публикации событий о записях
type KafkaConfig struct {
	Enabled      bool     `toml:"enabled"`
	Brokers      []string `toml:"brokers"`
	Topic        string   `toml:"topic"`
	WriteTimeout int      `toml:"write_timeout"` // секунды
}

// AuthConfig настройки доступа к защищенным маршрутам
type AuthConfig struct {
	APIKey string `toml:"api_key"`
}

// SchedulingConfig параметры расчета слотов
type SchedulingConfig struct {
	SlotStepMinutes         int `toml:"slot_step_minutes"`
	OverviewDurationMinutes int `toml:"overview_duration_minutes"`
	MinDurationMinutes      int `toml:"min_duration_minutes"`
	MaxDurationMinutes      int `toml:"max_duration_minutes"`
	MaxOverviewDays         int `toml:"max_overview_days"`
}

// Load читает конфигурацию из toml-файла.
// Секреты можно переопределить переменными окружения, в том числе из необязательного .env.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "appointment_service",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  300,
		},
		Kafka: KafkaConfig{
			Topic:        "appointments",
			WriteTimeout: 5,
		},
		Scheduling: SchedulingConfig{
			SlotStepMinutes:         15,
			OverviewDurationMinutes: 30,
			MinDurationMinutes:      5,
			MaxDurationMinutes:      480,
			MaxOverviewDays:         366,
		},
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv("DB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT: %v", ErrInvalidConfig, err)
		}
		c.Database.Port = port
	}
	if v, ok := os.LookupEnv("API_KEY"); ok {
		c.Auth.APIKey = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		c.Redis.Password = v
	}
	return nil
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("%w: auth.api_key is required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return fmt.Errorf("%w: kafka.brokers and kafka.topic are required when kafka is enabled", ErrInvalidConfig)
	}

	s := c.Scheduling
	if s.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if s.MinDurationMinutes <= 0 || s.MaxDurationMinutes < s.MinDurationMinutes {
		return fmt.Errorf("%w: scheduling duration bounds are invalid", ErrInvalidConfig)
	}
	if s.OverviewDurationMinutes < s.MinDurationMinutes || s.OverviewDurationMinutes > s.MaxDurationMinutes {
		return fmt.Errorf("%w: scheduling.overview_duration_minutes is out of bounds", ErrInvalidConfig)
	}
	if s.MaxOverviewDays <= 0 {
		return fmt.Errorf("%w: scheduling.max_overview_days must be positive", ErrInvalidConfig)
	}

	return nil
}
