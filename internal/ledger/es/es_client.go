package es

import (
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
	APIKey    string
}

// transportConfig never retries: a failed ledger read surfaces to the caller as is
func (config ClientConfig) transportConfig() (elasticsearch.Config, error) {
	if len(config.Addresses) == 0 {
		return elasticsearch.Config{}, fmt.Errorf("no Elasticsearch addresses configured")
	}
	if config.APIKey != "" && config.Username != "" {
		return elasticsearch.Config{}, fmt.Errorf("configure either an API key or basic auth, not both")
	}

	cfg := elasticsearch.Config{
		Addresses:    config.Addresses,
		DisableRetry: true,
		APIKey:       config.APIKey,
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}
	return cfg, nil
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg, err := config.transportConfig()
	if err != nil {
		return nil, err
	}
	return elasticsearch.NewTypedClient(cfg)
}
