package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	logger "github.com/canvassing/pax-rewards/internal/zerolog"
	"github.com/canvassing/pax-rewards/pkg/config"
	"github.com/canvassing/pax-rewards/pkg/version"
)

const defaultConfigPath = "./config/taskmaster.yaml"

var (
	// Global flags
	cfgFile   string
	debugMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskmaster",
	Short: "Pax task master",
	Long: `The task master authorizes participants of a Pax task.

It issues EIP-712 signatures that a TaskManager contract accepts as proof
that a participant passed screening or is entitled to a reward, and it
administers the contract on behalf of its owner.

Signing key options (in config/taskmaster.yaml, ${VAR} is expanded):
1. Keystore file:
   signer.keystore_path + signer.password
2. Raw private key:
   signer.private_key
3. Remote clef signer:
   signer.remote_url + signer.address`,
	Version:       version.Short(),
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitLogger(debugMode)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $CONFIG_PATH or ./config/taskmaster.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"enable debug mode")

	rootCmd.SetVersionTemplate(`Version: {{.Version}}
`)
}

// configPath resolves the config file from the flag, then CONFIG_PATH.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultConfigPath
}

func loadConfig() (*config.Config, error) {
	path := configPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s. Run 'taskmaster init' first", path)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
