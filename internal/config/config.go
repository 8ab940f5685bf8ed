package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server struct {
		Port        int    `yaml:"port"`
		MetricsPort int    `yaml:"metrics_port"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"server"`

	Database struct {
		Dialect string `yaml:"dialect"` // "sqlite3" or "postgres"
		DSN     string `yaml:"dsn"`
	} `yaml:"database"`

	Model struct {
		Provider    string  `yaml:"provider"` // "ollama" or "azure"
		Name        string  `yaml:"name"`
		Temperature float64 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
		ServerURL   string  `yaml:"server_url"`
	} `yaml:"model"`

	Embedding struct {
		Model     string `yaml:"model"`
		ServerURL string `yaml:"server_url"`
	} `yaml:"embedding"`

	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		AdminUser     string `yaml:"admin_user"`
		AdminPassword string `yaml:"admin_password"`
	} `yaml:"auth"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Server.BaseURL = "http://localhost:8080"
	cfg.Database.Dialect = "sqlite3"
	cfg.Database.DSN = "qrmenu.db"
	cfg.Model.Provider = "ollama"
	cfg.Model.Name = "llama3.2"
	cfg.Model.Temperature = 0.7
	cfg.Model.MaxTokens = 150
	cfg.Embedding.Model = "mxbai-embed-large"
	cfg.Auth.AdminUser = "admin"
	return cfg
}

// Load reads a YAML configuration file on top of the defaults and then
// applies environment overrides for the secrets that should not live in
// a checked-in file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured (set auth.jwt_secret or QRMENU_JWT_SECRET)")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("QRMENU_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("QRMENU_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("QRMENU_ADMIN_PASSWORD"); v != "" {
		cfg.Auth.AdminPassword = v
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		if cfg.Model.ServerURL == "" {
			cfg.Model.ServerURL = v
		}
		if cfg.Embedding.ServerURL == "" {
			cfg.Embedding.ServerURL = v
		}
	}
}
