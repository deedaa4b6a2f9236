package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/es"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/pg"
	"github.com/DjordjeVuckovic/ledger-explorer/pkg/stringsutil"
	"github.com/go-playground/validator/v10"
)

// Backend names where the gateway reads the ledger from
type Backend string

const (
	PG    Backend = "pg"
	ES    Backend = "es"
	InMem Backend = "inmem"
)

const DefaultQueryTimeout = 5 * time.Second

type Config struct {
	Backend            Backend       `validate:"required,oneof=pg es inmem"`
	QueryTimeout       time.Duration `validate:"gte=0s"`
	CancelOnDisconnect bool

	PgConnStr   string   `validate:"required_if=Backend pg"`
	PgMaxConns  int32    `validate:"gte=0"`
	EsAddresses []string `validate:"required_if=Backend es,dive,url"`
	EsIndexName string   `validate:"required_if=Backend es"`
	EsUsername  string
	EsPassword  string
	EsAPIKey    string `validate:"excluded_with=EsUsername"`
	FixturePath string `validate:"required_if=Backend inmem"`
}

var validate = validator.New()

func LoadEnv() (*Config, error) {
	timeout := DefaultQueryTimeout
	if raw := os.Getenv("LEDGER_QUERY_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LEDGER_QUERY_TIMEOUT %q: %w", raw, err)
		}
		timeout = parsed
	}

	var maxConns int32
	if raw := os.Getenv("PG_MAX_CONNS"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid PG_MAX_CONNS %q: %w", raw, err)
		}
		maxConns = int32(parsed)
	}

	cfg := &Config{
		Backend:            Backend(os.Getenv("LEDGER_BACKEND")),
		QueryTimeout:       timeout,
		CancelOnDisconnect: os.Getenv("LEDGER_CANCEL_ON_DISCONNECT") == "true",
		PgConnStr:          os.Getenv("PG_CONNECTION_STRING"),
		PgMaxConns:         maxConns,
		EsAddresses:        stringsutil.SplitList(os.Getenv("ES_ADDRESSES")),
		EsIndexName:        os.Getenv("ES_INDEX_NAME"),
		EsUsername:         os.Getenv("ES_USERNAME"),
		EsPassword:         os.Getenv("ES_PASSWORD"),
		EsAPIKey:           os.Getenv("ES_API_KEY"),
		FixturePath:        os.Getenv("LEDGER_FIXTURE_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid ledger configuration", "backend", cfg.Backend, "error", err)
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid ledger configuration: %w", err)
	}
	return nil
}

func (c *Config) PgConfig() pg.PoolConfig {
	return pg.PoolConfig{ConnStr: c.PgConnStr, MaxConns: c.PgMaxConns, ReadOnly: true}
}

func (c *Config) EsConfig() es.ClientConfig {
	return es.ClientConfig{
		Addresses: c.EsAddresses,
		IndexName: c.EsIndexName,
		Username:  c.EsUsername,
		Password:  c.EsPassword,
		APIKey:    c.EsAPIKey,
	}
}
