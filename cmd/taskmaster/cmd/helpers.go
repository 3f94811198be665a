package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
	"github.com/canvassing/pax-rewards/pkg/config"
)

// configuredDomain is the signing domain as configured, without dialing the chain.
func configuredDomain(cfg *config.Config) eip712.Domain {
	return eip712.BuildDomain(
		ethcommon.HexToAddress(cfg.Signing().TaskManager),
		new(big.Int).SetUint64(cfg.ChainID),
	)
}

func parseAddressFlag(name, value string) (ethcommon.Address, error) {
	if !ethcommon.IsHexAddress(value) {
		return ethcommon.Address{}, fmt.Errorf("--%s must be a hex address", name)
	}
	addr := ethcommon.HexToAddress(value)
	if addr == (ethcommon.Address{}) {
		return ethcommon.Address{}, fmt.Errorf("--%s must not be the zero address", name)
	}
	return addr, nil
}

// parseUint256 accepts decimal or 0x-prefixed hex.
func parseUint256(name, value string) (*big.Int, error) {
	base := 10
	if rest, hex := strings.CutPrefix(strings.ToLower(value), "0x"); hex {
		value, base = rest, 16
	}
	n, ok := new(big.Int).SetString(value, base)
	if !ok || n.Sign() < 0 || n.BitLen() > 256 {
		return nil, fmt.Errorf("--%s must be an unsigned 256-bit integer", name)
	}
	return n, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
