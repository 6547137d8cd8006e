package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

type Configuration struct {
	Server   ServerConfig   `json:"server"`
	Security SecurityConfig `json:"security"`
	Logging  LoggingConfig  `json:"logging"`
	Database DatabaseConfig `json:"database"`
	Gemini   GeminiConfig   `json:"gemini"`
	Render   RenderConfig   `json:"render"`
	Storage  StorageConfig  `json:"storage"`
	CORS     CORSConfig     `json:"cors"`
}

type ServerConfig struct {
	Port         string        `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

type SecurityConfig struct {
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

type LoggingConfig struct {
	Level       string `json:"level"`
	Environment string `json:"environment"`
}

type DatabaseConfig struct {
	Host            string `json:"host"`
	Port            string `json:"port"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	SSLMode         string `json:"ssl_mode"`
	MaxIdleConns    int    `json:"max_idle_conns"`
	MaxOpenConns    int    `json:"max_open_conns"`
	ConnMaxLifetime int    `json:"conn_max_lifetime"`
}

type GeminiConfig struct {
	APIKey  string        `json:"api_key"`
	Model   string        `json:"model"`
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

type RenderConfig struct {
	Timeout time.Duration `json:"timeout"`
}

type StorageConfig struct {
	Dir           string `json:"dir"`
	PublicBaseURL string `json:"public_base_url"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins"`
}

// Load reads an optional JSON config file, fills defaults, and applies
// environment overrides last so deployment settings always win.
func Load(filePath string) (*Configuration, error) {
	cfg := defaults()

	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer file.Close()

		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Port:         "3001",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Security: SecurityConfig{
			JWTSecret: "doccontrol-dev-secret",
			TokenTTL:  24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Environment: "development",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            "5432",
			Username:        "postgres",
			Password:        "password",
			Name:            "doccontrol",
			SSLMode:         "disable",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: 300,
		},
		Gemini: GeminiConfig{
			Model:   "gemini-pro",
			BaseURL: "https://generativelanguage.googleapis.com",
			Timeout: 60 * time.Second,
		},
		Render: RenderConfig{
			Timeout: 60 * time.Second,
		},
		Storage: StorageConfig{
			Dir:           "storage",
			PublicBaseURL: "http://localhost:3001/files",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:3001"},
		},
	}
}

func applyEnv(cfg *Configuration) {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Security.JWTSecret, "JWT_SECRET")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Environment, "APP_ENV")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.Username, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "GEMINI_MODEL")
	setString(&cfg.Gemini.BaseURL, "GEMINI_BASE_URL")
	setString(&cfg.Storage.Dir, "STORAGE_DIR")
	setString(&cfg.Storage.PublicBaseURL, "PUBLIC_BASE_URL")

	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.CORS.AllowedOrigins = []string{v}
	}
}

// LogConfig records the effective configuration with secrets redacted.
func LogConfig(cfg *Configuration, logger *zap.Logger) {
	logger.Info("Application configuration",
		zap.String("port", cfg.Server.Port),
		zap.Duration("read_timeout", cfg.Server.ReadTimeout),
		zap.Duration("write_timeout", cfg.Server.WriteTimeout),
		zap.Duration("token_ttl", cfg.Security.TokenTTL),
		zap.String("database_host", cfg.Database.Host),
		zap.String("database_name", cfg.Database.Name),
		zap.String("gemini_model", cfg.Gemini.Model),
		zap.String("storage_dir", cfg.Storage.Dir),
		zap.Strings("cors_origins", cfg.CORS.AllowedOrigins),
	)
}
