package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Seed      SeedConfig      `yaml:"seed"`
	Suggest   SuggestConfig   `yaml:"suggest"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	// Mode is "http" or "stdio".
	Mode string `yaml:"mode"`
}

type DBConfig struct {
	// Path of the SQLite file. Empty keeps records in memory only.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type SeedConfig struct {
	// Path of a YAML dataset replacing the embedded default.
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

type SuggestConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// Load reads configuration from .env, an optional YAML file and environment variables,
// in that order of increasing precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("BIDINTEL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.Transport.Mode != "http" && cfg.Transport.Mode != "stdio" {
		return Config{}, fmt.Errorf("invalid transport mode %q", cfg.Transport.Mode)
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Log: LogConfig{
			Level: "info",
		},
		Suggest: SuggestConfig{
			Timeout: 30 * time.Second,
		},
	}
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("BIDINTEL_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("BIDINTEL_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid BIDINTEL_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("BIDINTEL_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if dbPath := os.Getenv("BIDINTEL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("BIDINTEL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if seedPath := os.Getenv("BIDINTEL_SEED_PATH"); seedPath != "" {
		cfg.Seed.Path = seedPath
	}
	if disabled := os.Getenv("BIDINTEL_SEED_DISABLED"); disabled != "" {
		v, err := strconv.ParseBool(disabled)
		if err != nil {
			return fmt.Errorf("invalid BIDINTEL_SEED_DISABLED: %w", err)
		}
		cfg.Seed.Disabled = v
	}

	for _, key := range []string{"GEMINI_API_KEY", "API_KEY", "BIDINTEL_SUGGEST_API_KEY"} {
		if v := os.Getenv(key); v != "" {
			cfg.Suggest.APIKey = v
		}
	}
	if model := os.Getenv("BIDINTEL_SUGGEST_MODEL"); model != "" {
		cfg.Suggest.Model = model
	}
	if timeout := os.Getenv("BIDINTEL_SUGGEST_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid BIDINTEL_SUGGEST_TIMEOUT: %w", err)
		}
		cfg.Suggest.Timeout = d
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
