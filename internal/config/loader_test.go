package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/sharpfang/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultEngineCommand, cfg.Engine.Command)
	assert.Empty(t, cfg.Engine.SettingsFile)
	assert.Equal(t, config.FormatText, cfg.Output.Format)
	assert.Equal(t, 0, cfg.Output.MaxViolations)
	assert.False(t, cfg.Output.NoColor)
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sharpfang.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`engine:
  command: /opt/stylecop/engine
  settings_file: Settings.StyleCop
  args: ["--json"]
output:
  format: json
  max_violations: 50
  no_color: true
`), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/stylecop/engine", cfg.Engine.Command)
	assert.Equal(t, "Settings.StyleCop", cfg.Engine.SettingsFile)
	assert.Equal(t, []string{"--json"}, cfg.Engine.Args)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, 50, cfg.Output.MaxViolations)
	assert.True(t, cfg.Output.NoColor)
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sharpfang.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o600))

	_, err := config.LoadConfig(path)
	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestLoadConfig_InvalidMaxViolations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sharpfang.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  max_violations: -1\n"), 0o600))

	_, err := config.LoadConfig(path)
	require.ErrorIs(t, err, config.ErrInvalidMaxViolations)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr error
	}{
		{
			name: "valid text",
			cfg: config.Config{
				Output: config.OutputConfig{Format: config.FormatText},
			},
		},
		{
			name: "valid json",
			cfg: config.Config{
				Output: config.OutputConfig{Format: config.FormatJSON},
			},
		},
		{
			name: "unknown format",
			cfg: config.Config{
				Output: config.OutputConfig{Format: "tsv"},
			},
			wantErr: config.ErrInvalidFormat,
		},
		{
			name: "negative max violations",
			cfg: config.Config{
				Output: config.OutputConfig{Format: config.FormatText, MaxViolations: -5},
			},
			wantErr: config.ErrInvalidMaxViolations,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.cfg.Validate()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}
