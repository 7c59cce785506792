package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "data", "kubera.db"), ExpandPath("~/data/kubera.db"))
	assert.Equal(t, "/plain/path.db", ExpandPath("/plain/path.db"))

	t.Setenv("KUBERA_TEST_DIR", "/var/kubera")
	assert.Equal(t, "/var/kubera/kubera.db", ExpandPath("$KUBERA_TEST_DIR/kubera.db"))
}
