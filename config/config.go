package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Storage
	Postgres
	HTTPServer
}

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"postgres"`
}

type Postgres struct {
	URL          string        `env:"DATABASE_URL"`
	User         string        `env:"POSTGRES_USER" env-default:"postgres"`
	Pass         string        `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Host         string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         string        `env:"POSTGRES_PORT" env-default:"5432"`
	DB           string        `env:"POSTGRES_DB" env-default:"pastebin"`
	SSLMode      string        `env:"POSTGRES_SSLMODE" env-default:"disable"`
	Timeout      time.Duration `env:"POSTGRES_TIMEOUT" env-default:"5s"`
	MaxOpenConns int           `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"10"`
}

type HTTPServer struct {
	BindAddress     string        `env:"BIND_ADDRESS"`
	BindPort        string        `env:"PORT" env-required:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" env-default:"5s"`
}

// New loads the optional env file and then reads the process environment.
// Variables already set in the environment win over the file.
func New(env string) (*Config, error) {
	conf := &Config{}

	if err := godotenv.Load(env); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	switch conf.Storage.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", conf.Storage.Driver)
	}

	return conf, nil
}

// DSN returns DATABASE_URL when set, otherwise a URL assembled from the parts.
func (p Postgres) DSN() string {
	if p.URL != "" {
		return p.URL
	}

	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(p.User, p.Pass),
		Host:     fmt.Sprintf("%v:%v", p.Host, p.Port),
		Path:     p.DB,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}
