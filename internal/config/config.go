package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App is read from the environment. Nested fields are prefixed by their
// section, e.g. DB_MAX_OPEN_CONNS or VIEW_CACHE_TTL.
type App struct {
	Env    string `envconfig:"ENV" default:"development"`
	Server Server `envconfig:"SERVER"`
	DB     DB     `envconfig:"DB"`
	Cache  Cache  `envconfig:"VIEW_CACHE"`
	Redis  Redis  `envconfig:"REDIS"`
	Log    Log    `envconfig:"LOG"`
	CORS   CORS   `envconfig:"CORS"`
}

type Server struct {
	Addr string `split_words:"true" default:":8080"`
}

// DB takes either a full URL or the discrete fields.
type DB struct {
	URL             string        `split_words:"true"`
	Host            string        `split_words:"true" default:"localhost"`
	Port            string        `split_words:"true" default:"5432"`
	User            string        `split_words:"true" default:"postgres"`
	Password        string        `split_words:"true" default:"postgres"`
	Name            string        `split_words:"true" default:"postgres"`
	SSLMode         string        `split_words:"true" default:"disable"`
	MaxIdleConns    int           `split_words:"true" default:"10"`
	MaxOpenConns    int           `split_words:"true" default:"100"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"1h"`
	LogLevel        string        `split_words:"true" default:"warn"`
	AutoMigrate     bool          `split_words:"true" default:"true"`
}

// DSN returns URL when set, otherwise a keyword/value DSN.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type Cache struct {
	Driver string        `split_words:"true" default:"memory"`
	TTL    time.Duration `split_words:"true" default:"5m"`
}

type Redis struct {
	Addr     string `split_words:"true" default:"localhost:6379"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
	Prefix   string `split_words:"true" default:"dashboard:"`
}

type Log struct {
	Level  string `split_words:"true" default:"info"`
	Format string `split_words:"true" default:"text"`
	Prefix string `split_words:"true" default:"dashboard"`
}

type CORS struct {
	AllowOrigins []string `split_words:"true" default:"http://localhost:3000"`
}

// Load reads .env files (the first that exists wins) and then the environment.
func Load(envFiles ...string) (*App, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file found, relying on system env")
	}
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &cfg, nil
}

// LogValue keeps secrets out of the startup log.
func (a *App) LogValue() slog.Value {
	db := "host=" + a.DB.Host + " dbname=" + a.DB.Name
	if a.DB.URL != "" {
		db = "url=****"
	}
	return slog.GroupValue(
		slog.String("env", a.Env),
		slog.String("addr", a.Server.Addr),
		slog.String("db", db),
		slog.String("view_cache", a.Cache.Driver),
		slog.Duration("view_cache_ttl", a.Cache.TTL),
		slog.Any("cors_origins", a.CORS.AllowOrigins),
	)
}
