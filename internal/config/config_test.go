package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "postgres", cfg.Store.Normalized())
	assert.Equal(t, "https://horizon-testnet.stellar.org", cfg.Stellar.HorizonURL)
	assert.Equal(t, "1", cfg.Stellar.StartingBalance.String())
	assert.Equal(t, 5*time.Minute, cfg.Stellar.EnvelopeTTL)
	assert.True(t, cfg.Reconcile.Enabled)
	assert.Equal(t, uint(8), cfg.Reconcile.MaxRetries)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/fund.db")
	t.Setenv("STELLAR_STARTING_BALANCE", "2.5")
	t.Setenv("RECONCILE_INTERVAL", "30s")
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Normalized())
	assert.Equal(t, "/tmp/fund.db", cfg.SQLite.Path)
	assert.Equal(t, "2.5", cfg.Stellar.StartingBalance.String())
	assert.Equal(t, 30*time.Second, cfg.Reconcile.Interval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"unknown driver":   {"STORE_DRIVER", "mongo"},
		"zero balance":     {"STELLAR_STARTING_BALANCE", "0"},
		"negative ttl":     {"STELLAR_ENVELOPE_TTL", "-1s"},
		"garbage duration": {"RECONCILE_INTERVAL", "soon"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}
