package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config настройки сервиса калькулятора
type Config struct {
	// Порты
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`
	GRPCPort int `env:"GRPC_PORT" envDefault:"50052"`

	// Логирование
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Таймауты
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`

	EnvFile string `env:"ENV_FILE" envDefault:".env"`
}

// Load загружает конфигурацию из переменных окружения.
// Если рядом лежит .env (или файл из ENV_FILE), его значения подставляются
// только для переменных, которые ещё не заданы.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
		// Повторный разбор, чтобы подхватить значения из файла
		if err := env.Parse(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if err := validatePort("HTTP_PORT", c.HTTPPort); err != nil {
		return err
	}
	if err := validatePort("GRPC_PORT", c.GRPCPort); err != nil {
		return err
	}
	if c.HTTPPort == c.GRPCPort {
		return fmt.Errorf("HTTP_PORT and GRPC_PORT must differ, both are %d", c.HTTPPort)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("READ_HEADER_TIMEOUT must be positive")
	}

	return nil
}

// HTTPAddr адрес HTTP сервера
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// GRPCAddr адрес gRPC сервера
func (c *Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// String возвращает конфигурацию в виде строки для логов
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{HTTPPort: %d, GRPCPort: %d, LogLevel: %s, LogFormat: %s, ShutdownTimeout: %s, ReadHeaderTimeout: %s}",
		c.HTTPPort, c.GRPCPort, c.LogLevel, c.LogFormat, c.ShutdownTimeout, c.ReadHeaderTimeout,
	)
}

func validatePort(name string, port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%s must be in 1..65535, got %d", name, port)
	}
	return nil
}
