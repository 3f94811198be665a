// Package nonce draws the 256-bit values that make each signed request unique.
package nonce

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Size is the nonce width in bytes.
const Size = 32

var ErrEntropyUnavailable = errors.New("entropy source unavailable")

// Generator reads nonces from an entropy source.
type Generator struct {
	source io.Reader
}

// NewGenerator returns a Generator over source. A nil source means crypto/rand.
func NewGenerator(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

// Next returns a uniformly distributed value in [0, 2^256).
// A short read is reported as ErrEntropyUnavailable; there is no fallback.
func (g *Generator) Next() (*big.Int, error) {
	buf := make([]byte, Size)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return new(big.Int).SetBytes(buf), nil
}

var defaultGenerator = NewGenerator(rand.Reader)

// Random returns a nonce from the system CSPRNG.
func Random() (*big.Int, error) {
	return defaultGenerator.Next()
}
