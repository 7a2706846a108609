package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with every variable Load reads unset.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{
		ConfigFileEnv, "HTTP_ADDR", "SHUTDOWN_TIMEOUT", "REQUEST_TIMEOUT", "MAX_BODY_BYTES",
		"CORS_ALLOWED_ORIGINS", "DATABASE_URL", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME", "LOG_LEVEL", "LOG_FORMAT",
		"NEWS_PAGE_SIZE", "NEWS_MIN_TEXT_LENGTH", "NEWS_REJECT_PAST_PUBLICATION",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_TRUST_PROXY",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/news")

	cfg, err := Load()
	require.NoError(t, err)

	want := Default()
	want.Database.URL = "postgres://localhost/news"
	assert.Equal(t, want, *cfg)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, 10, cfg.News.PageSize)
	assert.Equal(t, 500, cfg.News.MinTextLength)
	assert.True(t, cfg.News.RejectPastPublication)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "postgres://db/news")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("NEWS_PAGE_SIZE", "25")
	t.Setenv("NEWS_REJECT_PAST_PUBLICATION", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_TRUST_PROXY", "true")
	t.Setenv("REQUEST_TIMEOUT", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_CONN_MAX_LIFETIME", "10m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 25, cfg.News.PageSize)
	assert.False(t, cfg.News.RejectPastPublication)
	assert.InDelta(t, 2.5, cfg.RateLimit.RPS, 1e-9)
	assert.True(t, cfg.RateLimit.TrustProxy)
	assert.Zero(t, cfg.HTTP.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "newsdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":9000"
  shutdown_timeout: 12s
database:
  url: postgres://yaml/news
  max_open_conns: 5
news:
  min_text_length: 100
rate_limit:
  rps: 5
  burst: 10
`), 0o600))
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("HTTP_ADDR", ":9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.HTTP.Addr, "env wins over file")
	assert.Equal(t, 12*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "postgres://yaml/news", cfg.Database.URL)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns, "unset keys keep defaults")
	assert.Equal(t, 100, cfg.News.MinTextLength)
	assert.InDelta(t, 5.0, cfg.RateLimit.RPS, 1e-9)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("DATABASE_URL=postgres://dotenv/news\nNEWS_PAGE_SIZE=3\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://dotenv/news", cfg.Database.URL)
	assert.Equal(t, 3, cfg.News.PageSize)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	isolate(t)

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is required")
}

func TestLoad_BadFile(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/news")

	t.Run("missing", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("http: [unterminated"), 0o600))
		t.Setenv(ConfigFileEnv, path)
		_, err := Load()
		assert.ErrorContains(t, err, "parse config file")
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: text\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.HTTP.ShutdownTimeout = 0
	cfg.HTTP.MaxBodyBytes = -1
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.News.PageSize = 0
	cfg.RateLimit.RPS = 1
	cfg.RateLimit.Burst = 0

	err := cfg.Validate()
	require.Error(t, err)

	for _, want := range []string{
		"SHUTDOWN_TIMEOUT",
		"MAX_BODY_BYTES",
		"DATABASE_URL is required",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"NEWS_PAGE_SIZE",
		"RATE_LIMIT_BURST",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := Default()
	cfg.Database.URL = "postgres://localhost/news"

	assert.NoError(t, cfg.Validate())
}
