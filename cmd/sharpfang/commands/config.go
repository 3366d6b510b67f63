package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/sharpfang/internal/config"
)

// ConfigCommand holds the flags for the config command.
type ConfigCommand struct {
	configPath string

	stdout io.Writer
}

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return newConfigCommandWithDeps(os.Stdout)
}

func newConfigCommandWithDeps(stdout io.Writer) *cobra.Command {
	cc := &ConfigCommand{stdout: stdout}

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration after merging defaults, the config
file, and environment variables, as YAML.`,
		RunE: cc.Run,
	}

	cobraCmd.Flags().StringVarP(&cc.configPath, "config", "c", "", "config file path")

	return cobraCmd
}

// Run executes the config command.
func (cc *ConfigCommand) Run(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cc.configPath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	_, writeErr := cc.stdout.Write(data)
	if writeErr != nil {
		return fmt.Errorf("write config: %w", writeErr)
	}

	return nil
}
