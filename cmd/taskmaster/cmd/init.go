package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize task master configuration",
	Long: `Initialize task master configuration with interactive prompts.
Default values will be used if you press enter without input.
Secrets are written as ${VAR} references and read from the environment at start.`,
	RunE: runInit,
}

var forceInit bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing config file")
}

const (
	signerKeystore   = "keystore"
	signerPrivateKey = "private key (development only)"
	signerRemote     = "remote clef signer"
)

// ConfigAnswers holds all configuration answers
type ConfigAnswers struct {
	ChainID      string
	RPC          string
	TaskManager  string
	StartBlock   string
	SignerSource string
	KeystorePath string
	RemoteURL    string
	RemoteAddr   string
	HTTPPort     string
	RateLimit    string
	LogLevel     string
}

// known chains the TaskManager is deployed on
var chainPresets = map[string]struct {
	id  uint64
	rpc string
}{
	"celo":      {id: 42220, rpc: "https://forno.celo.org"},
	"alfajores": {id: 44787, rpc: "https://alfajores-forno.celo-testnet.org"},
	"local":     {id: 31337, rpc: "http://localhost:8545"},
}

func isAddress(ans interface{}) error {
	if s, _ := ans.(string); !ethcommon.IsHexAddress(s) {
		return fmt.Errorf("not a hex address")
	}
	return nil
}

func isUint(ans interface{}) error {
	s, _ := ans.(string)
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return fmt.Errorf("not an unsigned integer")
	}
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	var network string
	if err := survey.AskOne(&survey.Select{
		Message: "Select network:",
		Options: []string{"celo", "alfajores", "local"},
		Default: "celo",
	}, &network); err != nil {
		return fmt.Errorf("failed to select network: %w", err)
	}
	preset := chainPresets[network]

	var answers ConfigAnswers
	if err := survey.Ask([]*survey.Question{
		{
			Name:     "ChainID",
			Prompt:   &survey.Input{Message: "Enter Chain ID:", Default: strconv.FormatUint(preset.id, 10)},
			Validate: isUint,
		},
		{
			Name:     "RPC",
			Prompt:   &survey.Input{Message: "Enter RPC URL:", Default: preset.rpc},
			Validate: survey.Required,
		},
		{
			Name:     "TaskManager",
			Prompt:   &survey.Input{Message: "Enter TaskManager contract address:"},
			Validate: isAddress,
		},
		{
			Name:     "StartBlock",
			Prompt:   &survey.Input{Message: "Enter first block to scan for signature usage:", Default: "0"},
			Validate: isUint,
		},
		{
			Name: "SignerSource",
			Prompt: &survey.Select{
				Message: "Where does the task master key live?",
				Options: []string{signerKeystore, signerPrivateKey, signerRemote},
				Default: signerKeystore,
			},
		},
	}, &answers); err != nil {
		return fmt.Errorf("failed to collect chain config: %w", err)
	}

	signerCfg := map[string]interface{}{}
	switch answers.SignerSource {
	case signerKeystore:
		if err := survey.AskOne(&survey.Input{
			Message: "Enter keystore file path:",
			Default: "./keys/taskmaster.json",
		}, &answers.KeystorePath, survey.WithValidator(survey.Required)); err != nil {
			return fmt.Errorf("failed to collect keystore path: %w", err)
		}
		signerCfg["keystore_path"] = answers.KeystorePath
		signerCfg["password"] = "${TASKMASTER_KEYSTORE_PASSWORD}"
	case signerPrivateKey:
		signerCfg["private_key"] = "${TASKMASTER_PRIVATE_KEY}"
	case signerRemote:
		if err := survey.Ask([]*survey.Question{
			{
				Name:     "RemoteURL",
				Prompt:   &survey.Input{Message: "Enter clef endpoint:", Default: "http://localhost:8550"},
				Validate: survey.Required,
			},
			{
				Name:     "RemoteAddr",
				Prompt:   &survey.Input{Message: "Enter task master address held by clef:"},
				Validate: isAddress,
			},
		}, &answers); err != nil {
			return fmt.Errorf("failed to collect remote signer config: %w", err)
		}
		signerCfg["remote_url"] = answers.RemoteURL
		signerCfg["address"] = answers.RemoteAddr
	}

	if err := survey.Ask([]*survey.Question{
		{
			Name:     "HTTPPort",
			Prompt:   &survey.Input{Message: "Enter HTTP Port:", Default: "8080"},
			Validate: isUint,
		},
		{
			Name:   "RateLimit",
			Prompt: &survey.Input{Message: "Requests per second per client (0 disables):", Default: "50"},
		},
		{
			Name: "LogLevel",
			Prompt: &survey.Select{
				Message: "Log level:",
				Options: []string{"debug", "info", "warn", "error"},
				Default: "info",
			},
		},
	}, &answers); err != nil {
		return fmt.Errorf("failed to collect service config: %w", err)
	}

	out, err := buildConfig(&answers, signerCfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nConfiguration written to %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "\nNext steps:")
	fmt.Fprintln(cmd.OutOrStdout(), "1. Export the signer secret referenced in the config")
	fmt.Fprintln(cmd.OutOrStdout(), "2. Export POSTGRES_* and REDIS_* connection settings")
	fmt.Fprintln(cmd.OutOrStdout(), "3. Start the task master:")
	fmt.Fprintln(cmd.OutOrStdout(), "   taskmaster serve")
	return nil
}

// buildConfig renders answers as the YAML layout pkg/config reads.
func buildConfig(answers *ConfigAnswers, signerCfg map[string]interface{}) ([]byte, error) {
	chainID, err := strconv.ParseUint(answers.ChainID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chain id: %w", err)
	}
	startBlock, err := strconv.ParseUint(answers.StartBlock, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid start block: %w", err)
	}
	port, err := strconv.Atoi(answers.HTTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid http port: %w", err)
	}
	rateLimit, err := strconv.ParseFloat(answers.RateLimit, 64)
	if err != nil || rateLimit < 0 {
		return nil, fmt.Errorf("invalid rate limit %q", answers.RateLimit)
	}

	config := map[string]interface{}{
		"signer":   signerCfg,
		"chain_id": chainID,
		"chains": map[uint64]interface{}{
			chainID: map[string]interface{}{
				"rpc":           answers.RPC,
				"task_manager":  ethcommon.HexToAddress(answers.TaskManager).Hex(),
				"poll_interval": "5s",
				"start_block":   startBlock,
			},
		},
		"http": map[string]interface{}{
			"host":       "0.0.0.0",
			"port":       port,
			"rate_limit": rateLimit,
			"burst":      100,
		},
		"metric": map[string]interface{}{
			"port": 4014,
		},
		"guard": map[string]interface{}{
			"ttl": "168h",
		},
		"logging": map[string]interface{}{
			"level":  answers.LogLevel,
			"format": "json",
		},
	}
	out, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
