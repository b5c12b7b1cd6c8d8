// AngelaMos | 2026
// config.go

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	Session   SessionConfig   `koanf:"session"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
	Seed      SeedConfig      `koanf:"seed"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig.URL selects the driver: postgres:// and postgresql://
// go through pgx, anything else is opened as a SQLite DSN.
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

type SessionConfig struct {
	Store         string        `koanf:"store"`
	CookieName    string        `koanf:"cookie_name"`
	Secret        string        `koanf:"secret"`
	TTL           time.Duration `koanf:"ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
	CookieSecure  bool          `koanf:"cookie_secure"`
}

type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Burst    int           `koanf:"burst"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

type SeedConfig struct {
	OnStart bool `koanf:"on_start"`
}

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	devSessionSecret = "dev-session-secret-change-me"
)

// Load layers configuration from lowest to highest precedence: built-in
// defaults, the optional YAML file at configPath, then the environment.
// A .env file in the working directory is folded into the environment
// first, without overriding variables that are already set.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("default %s: %w", key, err)
		}
	}

	if configPath != "" {
		err := k.Load(file.Provider(configPath), yaml.Parser())
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &c, nil
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        "Travel Marketplace",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"server.host":             "0.0.0.0",
		"server.port":             5000,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"database.url":                "file:travel.db?_pragma=foreign_keys(1)",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"database.auto_migrate":       true,

		"redis.pool_size":      10,
		"redis.min_idle_conns": 5,

		"session.store":          SessionStoreMemory,
		"session.cookie_name":    "travel.sid",
		"session.secret":         devSessionSecret,
		"session.ttl":            "168h",
		"session.sweep_interval": "24h",
		"session.cookie_secure":  false,

		"rate_limit.requests": 100,
		"rate_limit.window":   "1m",
		"rate_limit.burst":    20,

		"cors.allowed_origins": []string{"http://localhost:5173"},
		"cors.allowed_methods": []string{
			"GET",
			"POST",
			"PATCH",
			"OPTIONS",
		},
		"cors.allowed_headers": []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		"cors.allow_credentials": true,
		"cors.max_age":           300,

		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.file_path":   "logs/api.log",
		"log.max_size":    100,
		"log.max_backups": 5,
		"log.max_age":     30,
		"log.compress":    true,

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "travel-marketplace",

		"seed.on_start": true,
	}
}

// envKeys lists the environment variables read; anything else is ignored.
var envKeys = map[string]string{
	"DATABASE_URL":                "database.url",
	"DATABASE_AUTO_MIGRATE":       "database.auto_migrate",
	"REDIS_URL":                   "redis.url",
	"ENVIRONMENT":                 "app.environment",
	"HOST":                        "server.host",
	"PORT":                        "server.port",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"LOG_OUTPUT":                  "log.output",
	"LOG_FILE_PATH":               "log.file_path",
	"SESSION_STORE":               "session.store",
	"SESSION_SECRET":              "session.secret",
	"SESSION_TTL":                 "session.ttl",
	"SESSION_SWEEP_INTERVAL":      "session.sweep_interval",
	"SESSION_COOKIE_SECURE":       "session.cookie_secure",
	"RATE_LIMIT_REQUESTS":         "rate_limit.requests",
	"RATE_LIMIT_WINDOW":           "rate_limit.window",
	"RATE_LIMIT_BURST":            "rate_limit.burst",
	"SEED_ON_START":               "seed.on_start",
	"OTEL_ENDPOINT":               "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",
}

func envKey(name string) string {
	return envKeys[name]
}

// validate reports every problem at once so a bad deployment is fixed in
// one round trip.
func validate(c *Config) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Database.URL != "", "DATABASE_URL is required")
	check(c.Session.Secret != "", "SESSION_SECRET is required")
	check(c.Session.TTL > 0, "session.ttl must be positive")
	check(c.Session.SweepInterval > 0, "session.sweep_interval must be positive")
	check(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	check(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")

	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		check(c.Redis.Enabled(), "REDIS_URL is required for the redis session store")
	default:
		check(false, "unknown session store %q", c.Session.Store)
	}

	if c.CORS.AllowCredentials {
		check(!slices.Contains(c.CORS.AllowedOrigins, "*"),
			"CORS wildcard '*' cannot be used with allow_credentials")
	}

	if c.Log.Output == "file" || c.Log.Output == "both" {
		check(c.Log.FilePath != "", "log.file_path is required when logging to a file")
	}

	if c.IsProduction() {
		check(c.Session.Secret != devSessionSecret, "SESSION_SECRET must be set in production")
		check(!c.Otel.Enabled || !c.Otel.Insecure, "OTEL_INSECURE must be false in production")
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (s *ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
