package config

import (
	"fmt"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env         string   `env:"ENV" env-required:"true"`
	StoreDriver string   `env:"STORE_DRIVER" env-default:"postgres"`
	CORSOrigins []string `env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
	HTTP        HTTPConfig
	Postgres    PostgresConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type PostgresConfig struct {
	// URL is a full connection string, as handed out by hosted
	// databases. When set it takes precedence over the parts below.
	URL            string        `env:"POSTGRES_URL"`
	Host           string        `env:"POSTGRES_HOST"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
	TasksTable     string        `env:"POSTGRES_TASKS_TABLE" env-default:"tasks"`
}

// ConnString returns URL if set, otherwise a URL built from the parts.
func (c PostgresConfig) ConnString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username, c.Password, c.Host,
		c.Port, c.Database, c.SSLMode)
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %q", c.Env)
	}

	switch c.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		pg := c.Postgres
		if pg.URL == "" && (pg.Host == "" || pg.Username == "" || pg.Database == "") {
			return fmt.Errorf("postgres requires POSTGRES_URL or POSTGRES_HOST, POSTGRES_USERNAME and POSTGRES_DATABASE")
		}
		if pg.TasksTable == "" {
			return fmt.Errorf("POSTGRES_TASKS_TABLE must not be empty")
		}
	default:
		return fmt.Errorf("unknown store driver: %q", c.StoreDriver)
	}
	return nil
}
