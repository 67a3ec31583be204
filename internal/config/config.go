package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Redis       RedisConfig       `toml:"redis"`
	RabbitMQ    RabbitMQConfig    `toml:"rabbitmq"`
	Identity    IdentityConfig    `toml:"identity"`
	Reservation ReservationConfig `toml:"reservation"`
	Remind      RemindConfig      `toml:"remind"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TLS        bool   `toml:"tls"`
	LockTTLMs  int    `toml:"lock_ttl_ms"`
	LockWaitMs int    `toml:"lock_wait_ms"`
}

type RabbitMQConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Queue   string `toml:"queue"`
}

type IdentityConfig struct {
	ChannelID     string `toml:"channel_id"`
	ChannelSecret string `toml:"channel_secret"`
	Issuer        string `toml:"issuer"`
}

type ReservationConfig struct {
	RetentionDays   int `toml:"retention_days"`
	MaxMergeRetries int `toml:"max_merge_retries"`
	CleanupInterval int `toml:"cleanup_interval"` // секунды
}

type RemindConfig struct {
	ChannelID      string `toml:"channel_id"`
	DateDifference int    `toml:"date_difference"` // дни, 0 - в день визита, -1 - накануне
	PollInterval   int    `toml:"poll_interval"`   // секунды
	BatchSize      int    `toml:"batch_size"`
}

// Load читает TOML файл, подгружает .env и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: load .env: %v", ErrLoadConfig, err)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrLoadConfig, path, err)
	}

	cfg.applyDefaults(meta)
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults(meta toml.MetaData) {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "reservation-service"
	}

	setDefault(&c.Redis.LockTTLMs, 5000)
	setDefault(&c.Redis.LockWaitMs, 2000)

	if c.RabbitMQ.Queue == "" {
		c.RabbitMQ.Queue = "restaurant.remind"
	}

	setDefault(&c.Reservation.RetentionDays, domain.DefaultRetentionDays)
	if !meta.IsDefined("reservation", "max_merge_retries") {
		c.Reservation.MaxMergeRetries = domain.DefaultMaxMergeRetries
	}
	setDefault(&c.Reservation.CleanupInterval, 3600)

	// 0 - допустимое значение (только напоминание в день визита), поэтому смотрим, задано ли поле
	if !meta.IsDefined("remind", "date_difference") {
		c.Remind.DateDifference = domain.DefaultRemindDateDifference
	}
	setDefault(&c.Remind.PollInterval, 60)
	setDefault(&c.Remind.BatchSize, 100)
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// секреты не храним в config.toml
func (c *Config) applyEnv() error {
	overrides := []struct {
		key string
		dst *string
	}{
		{"DB_PASSWORD", &c.Database.Password},
		{"IDENTITY_CHANNEL_SECRET", &c.Identity.ChannelSecret},
		{"RABBITMQ_URL", &c.RabbitMQ.URL},
		{"REDIS_PASSWORD", &c.Redis.Password},
		{"REDIS_ADDR", &c.Redis.Addr},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok {
			*o.dst = v
		}
	}

	if v, ok := os.LookupEnv("REMIND_DATE_DIFFERENCE"); ok {
		diff, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: REMIND_DATE_DIFFERENCE must be an integer: %v", ErrInvalidConfig, err)
		}
		c.Remind.DateDifference = diff
	}

	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Identity.ChannelSecret == "" {
		return fmt.Errorf("%w: identity channel secret is required", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("%w: rabbitmq url is required when rabbitmq is enabled", ErrInvalidConfig)
	}
	if c.Reservation.MaxMergeRetries < 0 {
		return fmt.Errorf("%w: reservation max_merge_retries must not be negative", ErrInvalidConfig)
	}
	if c.Reservation.CleanupInterval < 0 || c.Remind.PollInterval < 0 || c.Remind.BatchSize < 0 {
		return fmt.Errorf("%w: worker intervals and batch size must be positive", ErrInvalidConfig)
	}
	if c.Remind.DateDifference > 0 {
		return fmt.Errorf("%w: remind date_difference must be zero or negative", ErrInvalidConfig)
	}
	return nil
}
