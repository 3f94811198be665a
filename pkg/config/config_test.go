package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const sample = `
signer:
  private_key: ${PAX_TEST_SIGNER_KEY}
chain_id: 44787
chains:
  44787:
    rpc: https://alfajores-forno.celo-testnet.org
    task_manager: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
    poll_interval: 2s
    start_block: 100
http:
  port: 9090
guard:
  ttl: 1h
`

func TestParse(t *testing.T) {
	t.Setenv("PAX_TEST_SIGNER_KEY", devKey)

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, devKey, cfg.Signer.PrivateKey)
	assert.Equal(t, uint64(44787), cfg.ChainID)
	require.NotNil(t, cfg.Signing())
	assert.Equal(t, 2*time.Second, cfg.Signing().PollInterval)
	assert.Equal(t, uint64(100), cfg.Signing().StartBlock)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Guard.TTL)

	// defaults survive partial files
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 4014, cfg.Metric.Port)
}

func TestValidate(t *testing.T) {
	t.Setenv("PAX_TEST_SIGNER_KEY", devKey)

	tests := []struct {
		name string
		edit func(c *Config)
	}{
		{"no signer", func(c *Config) { c.Signer.PrivateKey = "" }},
		{"unknown signing chain", func(c *Config) { c.ChainID = 1 }},
		{"bad address", func(c *Config) { c.Signing().TaskManager = "0x123" }},
		{"missing rpc", func(c *Config) { c.Signing().RPC = "" }},
		{"negative ttl", func(c *Config) { c.Guard.TTL = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(sample))
			require.NoError(t, err)
			tt.edit(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMaskedHidesSecrets(t *testing.T) {
	t.Setenv("PAX_TEST_SIGNER_KEY", devKey)
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	masked, err := Masked(cfg)
	require.NoError(t, err)
	assert.NotContains(t, fmt.Sprintf("%+v", masked), devKey)
	assert.Equal(t, devKey, cfg.Signer.PrivateKey)
}
