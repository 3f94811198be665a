package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	mask "github.com/showa-93/go-mask"
	"gopkg.in/yaml.v3"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
)

type ChainConfig struct {
	// RPC endpoint for the chain
	RPC string `yaml:"rpc"`

	// TaskManager contract address the task master signs for
	TaskManager string `yaml:"task_manager"`

	// How often the event listener polls for new blocks
	PollInterval time.Duration `yaml:"poll_interval"`

	// First block the event listener scans
	StartBlock uint64 `yaml:"start_block"`
}

type HTTPConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`

	// Requests per second across the API, 0 disables limiting
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
}

type MetricConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GuardConfig struct {
	// How long an issued nonce stays reserved
	TTL time.Duration `yaml:"ttl"`
}

type Config struct {
	// Signing authority for EIP-712 packages and owner transactions
	Signer signer.Config `yaml:"signer"`

	// Chain whose TaskManager is the signing domain
	ChainID uint64 `yaml:"chain_id"`

	// Chains configuration (multiple chain support)
	Chains map[uint64]*ChainConfig `yaml:"chains"`

	HTTP    HTTPConfig   `yaml:"http"`
	Metric  MetricConfig `yaml:"metric"`
	Guard   GuardConfig  `yaml:"guard"`
	Logging LogConfig    `yaml:"logging"`
}

// LoadConfig loads the configuration from the given file path.
// ${VAR} references are expanded from the environment before parsing.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes raw YAML over DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	content := os.ExpandEnv(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	masked, err := Masked(cfg)
	if err == nil {
		log.Info().Msgf("Loaded config: %+v", masked)
	}
	return cfg, nil
}

// Validate checks the fields the task master cannot start without.
func (c *Config) Validate() error {
	if !c.Signer.IsValid() {
		return errors.New("invalid signer config")
	}
	chain, ok := c.Chains[c.ChainID]
	if !ok {
		return fmt.Errorf("no chain configured for chain_id %d", c.ChainID)
	}
	for id, ch := range c.Chains {
		if ch == nil || ch.RPC == "" {
			return fmt.Errorf("chain %d: rpc is required", id)
		}
		if !common.IsHexAddress(ch.TaskManager) {
			return fmt.Errorf("chain %d: invalid task_manager address %q", id, ch.TaskManager)
		}
	}
	if chain.PollInterval < 0 || c.Guard.TTL < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

// Signing returns the chain config of the signing domain.
func (c *Config) Signing() *ChainConfig {
	return c.Chains[c.ChainID]
}

// Masked returns a copy of cfg with secrets blanked, safe to log.
func Masked(cfg *Config) (any, error) {
	masker := mask.NewMasker()
	masker.RegisterMaskStringFunc(mask.MaskTypeFilled, masker.MaskFilledString)
	return masker.Mask(cfg)
}

func DefaultConfig() *Config {
	return &Config{
		ChainID: 42220,
		Chains:  map[uint64]*ChainConfig{},
		HTTP: HTTPConfig{
			Port:      8080,
			Host:      "0.0.0.0",
			RateLimit: 50,
			Burst:     100,
		},
		Metric: MetricConfig{
			Port: 4014,
		},
		Guard: GuardConfig{
			TTL: 7 * 24 * time.Hour,
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
