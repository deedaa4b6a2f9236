package factory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/ledger-explorer/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LEDGER_BACKEND", "LEDGER_QUERY_TIMEOUT", "LEDGER_CANCEL_ON_DISCONNECT",
		"PG_CONNECTION_STRING", "PG_MAX_CONNS", "ES_ADDRESSES", "ES_INDEX_NAME", "ES_USERNAME", "ES_PASSWORD", "ES_API_KEY",
		"LEDGER_FIXTURE_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "backend missing",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			env:     map[string]string{"LEDGER_BACKEND": "mongo"},
			wantErr: true,
		},
		{
			name:    "pg without connection string",
			env:     map[string]string{"LEDGER_BACKEND": "pg"},
			wantErr: true,
		},
		{
			name: "pg with defaults",
			env: map[string]string{
				"LEDGER_BACKEND":       "pg",
				"PG_CONNECTION_STRING": "postgres://ledger@localhost:5432/ledger",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, PG, cfg.Backend)
				assert.Equal(t, DefaultQueryTimeout, cfg.QueryTimeout)
				assert.False(t, cfg.CancelOnDisconnect)
				assert.Equal(t, "postgres://ledger@localhost:5432/ledger", cfg.PgConfig().ConnStr)
				assert.True(t, cfg.PgConfig().ReadOnly)
				assert.Zero(t, cfg.PgConfig().MaxConns)
			},
		},
		{
			name: "pg with pool size",
			env: map[string]string{
				"LEDGER_BACKEND":       "pg",
				"PG_CONNECTION_STRING": "postgres://ledger@localhost:5432/ledger",
				"PG_MAX_CONNS":         "16",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int32(16), cfg.PgConfig().MaxConns)
			},
		},
		{
			name: "pg with malformed pool size",
			env: map[string]string{
				"LEDGER_BACKEND":       "pg",
				"PG_CONNECTION_STRING": "postgres://ledger@localhost:5432/ledger",
				"PG_MAX_CONNS":         "many",
			},
			wantErr: true,
		},
		{
			name: "pg with negative pool size",
			env: map[string]string{
				"LEDGER_BACKEND":       "pg",
				"PG_CONNECTION_STRING": "postgres://ledger@localhost:5432/ledger",
				"PG_MAX_CONNS":         "-2",
			},
			wantErr: true,
		},
		{
			name: "es with api key and basic auth",
			env: map[string]string{
				"LEDGER_BACKEND": "es",
				"ES_ADDRESSES":   "http://localhost:9200",
				"ES_INDEX_NAME":  "ledger",
				"ES_USERNAME":    "elastic",
				"ES_API_KEY":     "a2V5",
			},
			wantErr: true,
		},
		{
			name:    "es without index",
			env:     map[string]string{"LEDGER_BACKEND": "es", "ES_ADDRESSES": "http://localhost:9200"},
			wantErr: true,
		},
		{
			name: "es with malformed address",
			env: map[string]string{
				"LEDGER_BACKEND": "es",
				"ES_ADDRESSES":   "not a url",
				"ES_INDEX_NAME":  "ledger",
			},
			wantErr: true,
		},
		{
			name: "es complete",
			env: map[string]string{
				"LEDGER_BACKEND":              "es",
				"ES_ADDRESSES":                "http://es1:9200, http://es2:9200",
				"ES_INDEX_NAME":               "ledger",
				"LEDGER_QUERY_TIMEOUT":        "750ms",
				"LEDGER_CANCEL_ON_DISCONNECT": "true",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.EsConfig().Addresses)
				assert.Equal(t, 750*time.Millisecond, cfg.QueryTimeout)
				assert.True(t, cfg.CancelOnDisconnect)
			},
		},
		{
			name:    "malformed timeout",
			env:     map[string]string{"LEDGER_BACKEND": "inmem", "LEDGER_FIXTURE_PATH": "x.yaml", "LEDGER_QUERY_TIMEOUT": "soon"},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			env:     map[string]string{"LEDGER_BACKEND": "inmem", "LEDGER_FIXTURE_PATH": "x.yaml", "LEDGER_QUERY_TIMEOUT": "-1s"},
			wantErr: true,
		},
		{
			name:    "inmem without fixture",
			env:     map[string]string{"LEDGER_BACKEND": "inmem"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestNewLedger_InMem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
status:
  peers: 1
entities:
  domain:
    - id: wonderland
`), 0o600))

	l, err := NewLedger(context.Background(), &Config{Backend: InMem, FixturePath: path})
	require.NoError(t, err)
	defer l.Client.Close()

	assert.True(t, l.HealthChecker.Healthy(context.Background()))

	res, err := l.Client.Query(context.Background(), ledger.Request{Kind: ledger.KindDomain}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
}

func TestNewLedger_InMemMissingFixture(t *testing.T) {
	_, err := NewLedger(context.Background(), &Config{Backend: InMem, FixturePath: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestNewLedger_UnknownBackend(t *testing.T) {
	_, err := NewLedger(context.Background(), &Config{Backend: "mongo"})
	assert.Error(t, err)
}
