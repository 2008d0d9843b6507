package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	assert.Equal(t, "v"+Version, FullVersion())
	assert.False(t, strings.HasPrefix(Version, "v"))
}
