package signer

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Config represents signer configuration. Exactly one key source is used:
// a remote endpoint, a keystore file, or a raw hex key, in that order.
type Config struct {
	// KeystorePath is the path to the keystore file
	KeystorePath string `yaml:"keystore_path"`
	// Password is the password to decrypt the keystore
	Password string `yaml:"password" mask:"filled"`
	// PrivateKey is a hex encoded secp256k1 key, for development only
	PrivateKey string `yaml:"private_key" mask:"filled"`
	// RemoteURL points at a Clef compatible account_signTypedData endpoint
	RemoteURL string `yaml:"remote_url"`
	// Address is the account the remote endpoint signs for
	Address string `yaml:"address"`
}

// IsValid checks if the config is valid
func (c *Config) IsValid() bool {
	switch {
	case c.RemoteURL != "":
		return ethcommon.IsHexAddress(c.Address)
	case c.KeystorePath != "":
		return c.Password != ""
	default:
		return c.PrivateKey != ""
	}
}
