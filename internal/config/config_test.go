package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"BIDINTEL_CONFIG_PATH", "BIDINTEL_SERVER_HOST", "BIDINTEL_SERVER_PORT", "BIDINTEL_TRANSPORT",
	"BIDINTEL_DB_PATH", "BIDINTEL_LOG_LEVEL", "BIDINTEL_SEED_PATH", "BIDINTEL_SEED_DISABLED",
	"GEMINI_API_KEY", "API_KEY", "BIDINTEL_SUGGEST_API_KEY", "BIDINTEL_SUGGEST_MODEL",
	"BIDINTEL_SUGGEST_TIMEOUT",
}

// isolate runs the test in an empty directory with a clean environment.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Empty(t, cfg.DB.Path)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "bidintel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
db:
  path: data/bidintel.db
seed:
  disabled: true
suggest:
  model: gemini-test
  timeout: 5s
`), 0o644))

	t.Setenv("BIDINTEL_CONFIG_PATH", path)
	t.Setenv("BIDINTEL_SERVER_PORT", "9100")
	t.Setenv("BIDINTEL_TRANSPORT", "stdio")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, "data/bidintel.db", cfg.DB.Path)
	require.True(t, cfg.Seed.Disabled)
	require.Equal(t, "gemini-test", cfg.Suggest.Model)
	require.Equal(t, 5*time.Second, cfg.Suggest.Timeout)
	require.Equal(t, "secret", cfg.Suggest.APIKey)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("API_KEY=from-dotenv\nBIDINTEL_LOG_LEVEL=debug\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", cfg.Suggest.APIKey)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"BIDINTEL_SERVER_PORT":     "eighty",
		"BIDINTEL_TRANSPORT":       "grpc",
		"BIDINTEL_SEED_DISABLED":   "maybe",
		"BIDINTEL_SUGGEST_TIMEOUT": "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("BIDINTEL_CONFIG_PATH", filepath.Join(dir, "missing.yaml"))

	_, err := Load()
	require.ErrorContains(t, err, "read config file")
}
