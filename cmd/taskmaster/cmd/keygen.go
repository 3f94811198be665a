package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/spf13/cobra"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/signer"
)

const keystorePasswordEnv = "TASKMASTER_KEYSTORE_PASSWORD"

var (
	keysDir     string
	lightScrypt bool
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Create a task master key in an encrypted keystore",
	Long: `Generate a secp256k1 key and store it as a keystore file.

The password is read from $` + keystorePasswordEnv + ` or prompted for.
Point signer.keystore_path at the printed file.`,
	RunE: runKeygen,
}

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the address of the configured signer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		authority, err := signer.New(contextOf(cmd), &cfg.Signer)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), authority.Address().Hex())
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keysDir, "dir", "keys", "directory the keystore file is written to")
	keygenCmd.Flags().BoolVar(&lightScrypt, "light", false, "use light scrypt parameters (testing only)")
	rootCmd.AddCommand(keygenCmd, addressCmd)
}

func keystorePassword() (string, error) {
	if p := os.Getenv(keystorePasswordEnv); p != "" {
		return p, nil
	}
	var password, confirm string
	if err := survey.AskOne(&survey.Password{Message: "Keystore password:"}, &password,
		survey.WithValidator(survey.MinLength(8))); err != nil {
		return "", err
	}
	if err := survey.AskOne(&survey.Password{Message: "Repeat password:"}, &confirm); err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return password, nil
}

func runKeygen(cmd *cobra.Command, args []string) error {
	password, err := keystorePassword()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := os.MkdirAll(keysDir, 0700); err != nil {
		return fmt.Errorf("failed to create keys directory: %w", err)
	}

	scryptN, scryptP := keystore.StandardScryptN, keystore.StandardScryptP
	if lightScrypt {
		scryptN, scryptP = keystore.LightScryptN, keystore.LightScryptP
	}
	account, err := keystore.NewKeyStore(keysDir, scryptN, scryptP).NewAccount(password)
	if err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Address:  %s\nKeystore: %s\n", account.Address.Hex(), account.URL.Path)
	return nil
}
