package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_PrintsEffectiveConfigAsYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sharpfang.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`engine:
  command: /opt/engine
output:
  format: json
`), 0o600))

	var out bytes.Buffer

	cmd := newConfigCommandWithDeps(&out)
	cmd.SetArgs([]string{"-c", path})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "command: /opt/engine")
	assert.Contains(t, out.String(), "format: json")
}

func TestConfig_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := newConfigCommandWithDeps(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "command: stylecop-engine")
	assert.Contains(t, out.String(), "format: text")
}
