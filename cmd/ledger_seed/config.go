package main

import (
	"flag"
	"fmt"

	"github.com/DjordjeVuckovic/ledger-explorer/pkg/stringsutil"
)

type cliConfig struct {
	FixturePath string
	Backend     string
	PgConnStr   string
	EsAddresses string
	EsIndex     string
	EsUsername  string
	EsPassword  string
	EsAPIKey    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.FixturePath, "fixture", "db/fixtures/wonderland.yaml", "Path to ledger fixture YAML")
	flag.StringVar(&cfg.Backend, "backend", "pg", "Target mirror: pg or es")
	flag.StringVar(&cfg.PgConnStr, "pg", "", "PostgreSQL connection string")
	flag.StringVar(&cfg.EsAddresses, "es-addresses", "", "Elasticsearch addresses, comma-separated")
	flag.StringVar(&cfg.EsIndex, "es-index", "ledger", "Elasticsearch index name")
	flag.StringVar(&cfg.EsUsername, "es-username", "", "Elasticsearch username")
	flag.StringVar(&cfg.EsPassword, "es-password", "", "Elasticsearch password")
	flag.StringVar(&cfg.EsAPIKey, "es-api-key", "", "Elasticsearch API key, instead of username and password")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	if c.FixturePath == "" {
		return fmt.Errorf("-fixture is required")
	}

	switch c.Backend {
	case "pg":
		if c.PgConnStr == "" {
			return fmt.Errorf("-pg is required for the pg backend")
		}
	case "es":
		if len(stringsutil.SplitList(c.EsAddresses)) == 0 || c.EsIndex == "" {
			return fmt.Errorf("-es-addresses and -es-index are required for the es backend")
		}
		if c.EsAPIKey != "" && c.EsUsername != "" {
			return fmt.Errorf("-es-api-key cannot be combined with -es-username")
		}
	default:
		return fmt.Errorf("unsupported backend %q, expected pg or es", c.Backend)
	}

	return nil
}
