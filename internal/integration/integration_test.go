package integration

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		t.Skip("zsh not installed")
	}

	rendered, err := Render()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rendered, "#!"), "missing shebang")
	assert.Contains(t, rendered, zsh)
	assert.Contains(t, rendered, "dsz()")
	assert.NotContains(t, rendered, "{{")
}
