package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/ledger-explorer/pkg/stringsutil"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port         string
	UseHttp2     bool
	CorsOrigins  []string `validate:"min=1"`
	RateLimitRPS float64  `validate:"gte=0"`
	LogLevel     string   `validate:"oneof=debug info warn error"`
}

var validate = validator.New()

func LoadConfig() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := stringsutil.SplitList(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	var rps float64
	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", raw, err)
		}
		rps = parsed
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	cfg := &Config{
		Port:         port,
		UseHttp2:     os.Getenv("USE_HTTP2") == "true",
		CorsOrigins:  origins,
		RateLimitRPS: rps,
		LogLevel:     logLevel,
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto slog; unknown values fall back to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
