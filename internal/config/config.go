// Package config loads the API server configuration.
//
// Values are resolved in three layers, later layers winning:
// built-in defaults, an optional YAML file named by NEWSDESK_CONFIG, and
// environment variables (a .env file in the working directory is loaded
// into the environment first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	envcfg "newsdesk/pkg/config"
)

// ConfigFileEnv names the environment variable holding the YAML file path.
const ConfigFileEnv = "NEWSDESK_CONFIG"

// Config is the complete server configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	News      NewsConfig      `yaml:"news"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// RequestTimeout bounds handler execution; 0 disables it.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// MaxBodyBytes caps request bodies; 0 disables the cap.
	MaxBodyBytes       int64    `yaml:"max_body_bytes"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type NewsConfig struct {
	PageSize              int  `yaml:"page_size"`
	MinTextLength         int  `yaml:"min_text_length"`
	RejectPastPublication bool `yaml:"reject_past_publication"`
}

type RateLimitConfig struct {
	// RPS is the sustained per-client request rate; 0 disables limiting.
	RPS        float64 `yaml:"rps"`
	Burst      int     `yaml:"burst"`
	TrustProxy bool    `yaml:"trust_proxy"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":3000",
			ShutdownTimeout: 5 * time.Second,
			RequestTimeout:  30 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		News: NewsConfig{
			PageSize:              10,
			MinTextLength:         500,
			RejectPastPublication: true,
		},
		RateLimit: RateLimitConfig{
			Burst: 20,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file and
// the environment, then validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadFile reads a YAML file on top of the defaults without consulting the
// environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	// #nosec G304 -- path comes from the operator's environment
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HTTP.Addr = envcfg.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.ShutdownTimeout = envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	c.HTTP.RequestTimeout = envcfg.GetEnvDuration("REQUEST_TIMEOUT", c.HTTP.RequestTimeout)
	c.HTTP.MaxBodyBytes = envcfg.GetEnvInt64("MAX_BODY_BYTES", c.HTTP.MaxBodyBytes)
	c.HTTP.CORSAllowedOrigins = envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.HTTP.CORSAllowedOrigins)

	c.Database.URL = envcfg.GetEnvString("DATABASE_URL", c.Database.URL)
	c.Database.MaxOpenConns = envcfg.GetEnvInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = envcfg.GetEnvInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.ConnMaxLifetime = envcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime)
	c.Database.ConnMaxIdleTime = envcfg.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", c.Database.ConnMaxIdleTime)

	c.Log.Level = envcfg.GetEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = envcfg.GetEnvString("LOG_FORMAT", c.Log.Format)

	c.News.PageSize = envcfg.GetEnvInt("NEWS_PAGE_SIZE", c.News.PageSize)
	c.News.MinTextLength = envcfg.GetEnvInt("NEWS_MIN_TEXT_LENGTH", c.News.MinTextLength)
	c.News.RejectPastPublication = envcfg.GetEnvBool("NEWS_REJECT_PAST_PUBLICATION", c.News.RejectPastPublication)

	c.RateLimit.RPS = envcfg.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = envcfg.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.TrustProxy = envcfg.GetEnvBool("RATE_LIMIT_TRUST_PROXY", c.RateLimit.TrustProxy)
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.HTTP.Addr == "" {
		add("HTTP_ADDR must not be empty")
	}
	if err := envcfg.ValidatePositiveDuration(c.HTTP.ShutdownTimeout); err != nil {
		add("SHUTDOWN_TIMEOUT: %w", err)
	}
	if err := envcfg.ValidateNonNegativeDuration(c.HTTP.RequestTimeout); err != nil {
		add("REQUEST_TIMEOUT: %w", err)
	}
	if c.HTTP.MaxBodyBytes < 0 {
		add("MAX_BODY_BYTES must not be negative, got %d", c.HTTP.MaxBodyBytes)
	}

	if c.Database.URL == "" {
		add("DATABASE_URL is required")
	}
	if c.Database.MaxOpenConns < 0 {
		add("DB_MAX_OPEN_CONNS must not be negative, got %d", c.Database.MaxOpenConns)
	}
	if c.Database.MaxIdleConns < 0 {
		add("DB_MAX_IDLE_CONNS must not be negative, got %d", c.Database.MaxIdleConns)
	}
	if err := envcfg.ValidateNonNegativeDuration(c.Database.ConnMaxLifetime); err != nil {
		add("DB_CONN_MAX_LIFETIME: %w", err)
	}
	if err := envcfg.ValidateNonNegativeDuration(c.Database.ConnMaxIdleTime); err != nil {
		add("DB_CONN_MAX_IDLE_TIME: %w", err)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		add("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		add("LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}

	if c.News.PageSize <= 0 {
		add("NEWS_PAGE_SIZE must be positive, got %d", c.News.PageSize)
	}
	if c.News.MinTextLength < 0 {
		add("NEWS_MIN_TEXT_LENGTH must not be negative, got %d", c.News.MinTextLength)
	}

	if c.RateLimit.RPS < 0 {
		add("RATE_LIMIT_RPS must not be negative, got %g", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		add("RATE_LIMIT_BURST must be at least 1 when rate limiting is on, got %d", c.RateLimit.Burst)
	}

	return errors.Join(errs...)
}
