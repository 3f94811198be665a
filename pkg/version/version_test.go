package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	prev := GitCommit
	t.Cleanup(func() { GitCommit = prev })

	GitCommit = "unknown"
	assert.Equal(t, Version, Short())

	GitCommit = "0123456789abcdef"
	assert.Equal(t, Version+" (0123456)", Short())
}
