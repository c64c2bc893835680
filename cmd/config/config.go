package config

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/muhammadheryan/marketplace/constant"
)

type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:""`

	// sections are processed one by one so their tags are not prefixed with the field name
	Server   ServerConfig   `ignored:"true"`
	Database DatabaseConfig `ignored:"true"`
	Redis    RedisConfig    `ignored:"true"`
	RabbitMQ RabbitMQConfig `ignored:"true"`
	Auth     AuthConfig     `ignored:"true"`
	Identity IdentityConfig `ignored:"true"`
	Mail     MailConfig     `ignored:"true"`
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"20s"`
	// RequestTimeout bounds each request's unit of work, a timeout rolls back and returns unavailable
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Driver          string        `envconfig:"DB_DRIVER" default:"mysql"`
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"3306"`
	User            string        `envconfig:"DB_USER" default:"root"`
	Password        string        `envconfig:"DB_PASSWORD" default:""`
	Name            string        `envconfig:"DB_NAME" default:"marketplace"`
	SQLitePath      string        `envconfig:"DB_SQLITE_PATH" default:"marketplace.db"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host         string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port         int           `envconfig:"REDIS_PORT" default:"6379"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"3s"`
}

type RabbitMQConfig struct {
	Enabled        bool          `envconfig:"RABBITMQ_ENABLED" default:"false"`
	Host           string        `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port           int           `envconfig:"RABBITMQ_PORT" default:"5672"`
	User           string        `envconfig:"RABBITMQ_USER" default:"guest"`
	Password       string        `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
	PublishTimeout time.Duration `envconfig:"RABBITMQ_PUBLISH_TIMEOUT" default:"3s"`
}

type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiration  time.Duration `envconfig:"JWT_EXPIRATION" default:"30m"`
	SessionExpTime time.Duration `envconfig:"SESSION_EXPIRATION" default:"30m"`
	RefreshExpTime time.Duration `envconfig:"REFRESH_EXPIRATION" default:"168h"`
	InternalAPIKey string        `envconfig:"INTERNAL_API_KEY" required:"true"`
}

type IdentityConfig struct {
	Mode           string        `envconfig:"IDENTITY_MODE" default:"local"`
	AuthServiceURL string        `envconfig:"AUTH_SERVICE_URL" default:"http://auth-service:8080"`
	Timeout        time.Duration `envconfig:"IDENTITY_TIMEOUT" default:"5s"`
}

type MailConfig struct {
	Mode     string        `envconfig:"MAIL_MODE" default:"log"`
	Host     string        `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int           `envconfig:"SMTP_PORT" default:"25"`
	User     string        `envconfig:"SMTP_USER" default:""`
	Password string        `envconfig:"SMTP_PASSWORD" default:""`
	From     string        `envconfig:"MAIL_FROM" default:"no-reply@marketplace.local"`
	Timeout  time.Duration `envconfig:"MAIL_DISPATCH_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	sections := []any{&cfg, &cfg.Server, &cfg.Database, &cfg.Redis, &cfg.RabbitMQ, &cfg.Auth, &cfg.Identity, &cfg.Mail}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case constant.DriverMySQL, constant.DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", constant.DriverMySQL, constant.DriverSQLite, c.Database.Driver)
	}
	switch c.Identity.Mode {
	case constant.IdentityModeLocal, constant.IdentityModeRemote:
	default:
		return fmt.Errorf("IDENTITY_MODE must be %q or %q, got %q", constant.IdentityModeLocal, constant.IdentityModeRemote, c.Identity.Mode)
	}
	switch c.Mail.Mode {
	case constant.MailModeLog, constant.MailModeSMTP:
	default:
		return fmt.Errorf("MAIL_MODE must be %q or %q, got %q", constant.MailModeLog, constant.MailModeSMTP, c.Mail.Mode)
	}
	return nil
}

// GetDSN returns the data source name for the configured driver.
func (c *Config) GetDSN() string {
	if c.Database.Driver == constant.DriverSQLite {
		return c.Database.SQLitePath
	}
	mc := mysql.NewConfig()
	mc.User = c.Database.User
	mc.Passwd = c.Database.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	mc.DBName = c.Database.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

func (c *Config) GetRabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}
