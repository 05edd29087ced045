package assetdirstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtColor(t *testing.T) {
	t.Parallel()
	for _, ext := range []string{".png", ".txt", ".mat", ""} {
		c := ExtColor(ext)
		assert.Equal(t, c, ExtColor(ext), "stable for %q", ext)
		r, g, b := c.RGB()
		assert.GreaterOrEqual(t, r, int32(128))
		assert.GreaterOrEqual(t, g, int32(128))
		assert.GreaterOrEqual(t, b, int32(128))
	}
	assert.NotEqual(t, ExtColor(".png"), ExtColor(".txt"))
}
