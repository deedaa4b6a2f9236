package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/api/server"
	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger/factory"
	"github.com/DjordjeVuckovic/ledger-explorer/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type LedgerApiConfig struct {
	Server *server.Config
	Ledger *factory.Config
}

func (as *AppConfig) Load() (*LedgerApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/ledger_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	ledgerCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	return &LedgerApiConfig{
		Server: serverCfg,
		Ledger: ledgerCfg,
	}, nil
}
