package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/sharpfang/internal/config"
	"github.com/Sumatoshi-tech/sharpfang/internal/render"
	"github.com/Sumatoshi-tech/sharpfang/internal/worklist"
	"github.com/Sumatoshi-tech/sharpfang/pkg/engine"
)

var (
	// ErrNoInputFiles is returned when neither solutions nor projects are given.
	ErrNoInputFiles = errors.New(
		"no input files. Use -s for solutions or -p for projects, e.g.: -s All.sln",
	)
	// ErrViolationsFound is returned when the engine reported violations.
	ErrViolationsFound = errors.New("style violations found")
)

// engineFactory builds the analysis engine for a run. Swappable in tests.
type engineFactory func(cfg config.EngineConfig, logger *slog.Logger) (engine.Engine, error)

// CheckCommand holds configuration and dependencies for the check command.
type CheckCommand struct {
	solutions     []string
	projects      []string
	configPath    string
	format        string
	noColor       bool
	maxViolations int
	settingsFile  string
	engineCommand string

	newEngine engineFactory
	stdout    io.Writer
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return newCheckCommandWithDeps(defaultEngineFactory, os.Stdout)
}

func newCheckCommandWithDeps(factory engineFactory, stdout io.Writer) *cobra.Command {
	cc := &CheckCommand{newEngine: factory, stdout: stdout}

	cobraCmd := &cobra.Command{
		Use:   "check",
		Short: "Discover C# sources and run the analysis engine",
		Long: `Discover C# source files from Visual Studio solution and project
files and run the configured style-analysis engine over them.

Examples:
  sharpfang check -s All.sln
  sharpfang check -p src/MyApp.csproj -p src/MyLib.csproj
  sharpfang check -s All.sln --format json --max-violations 100`,
		RunE: cc.Run,
	}

	cobraCmd.Flags().StringSliceVarP(&cc.solutions, "solution", "s", nil, "solution file to check (repeatable)")
	cobraCmd.Flags().StringSliceVarP(&cc.projects, "project", "p", nil, "project file to check (repeatable)")
	cobraCmd.Flags().StringVarP(&cc.configPath, "config", "c", "", "config file path")
	cobraCmd.Flags().StringVarP(&cc.format, "format", "f", "", "output format: text or json")
	cobraCmd.Flags().BoolVar(&cc.noColor, "no-color", false, "disable colored output")
	cobraCmd.Flags().IntVar(&cc.maxViolations, "max-violations", 0, "max violations to print (0 = unlimited)")
	cobraCmd.Flags().StringVar(&cc.settingsFile, "settings", "", "engine settings file")
	cobraCmd.Flags().StringVar(&cc.engineCommand, "engine-cmd", "", "engine command override")

	return cobraCmd
}

// Run executes the check command.
func (cc *CheckCommand) Run(cmd *cobra.Command, _ []string) error {
	if len(cc.solutions) == 0 && len(cc.projects) == 0 {
		return ErrNoInputFiles
	}

	logger := newLogger(cmd)

	cfg, err := config.LoadConfig(cc.configPath)
	if err != nil {
		return err
	}

	cc.applyFlagOverrides(cmd, cfg)

	validateErr := cfg.Validate()
	if validateErr != nil {
		return validateErr
	}

	projects, err := worklist.Build(cc.solutions, cc.projects, logger)
	if err != nil {
		return err
	}

	eng, err := cc.newEngine(cfg.Engine, logger)
	if err != nil {
		return err
	}

	fileCount := 0

	for key, project := range projects {
		desc := engine.Descriptor{
			Key:      key,
			Location: project.Dir(),
			Flags:    cfg.Engine.Flags,
		}

		registerErr := eng.Register(desc, project.Sources)
		if registerErr != nil {
			return fmt.Errorf("register project %s: %w", project.Path(), registerErr)
		}

		fileCount += len(project.Sources)
	}

	renderer := cc.newRenderer(cfg)
	start := time.Now()

	runErr := eng.Run(cmd.Context(), renderer)
	if runErr != nil {
		return runErr
	}

	total, finishErr := renderer.Finish(len(projects), fileCount, time.Since(start))
	if finishErr != nil {
		return finishErr
	}

	if total > 0 {
		return fmt.Errorf("%w: %d", ErrViolationsFound, total)
	}

	return nil
}

// applyFlagOverrides lets explicitly-set flags win over config file values.
func (cc *CheckCommand) applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cc.engineCommand != "" {
		cfg.Engine.Command = cc.engineCommand
	}

	if cc.settingsFile != "" {
		cfg.Engine.SettingsFile = cc.settingsFile
	}

	if cc.format != "" {
		cfg.Output.Format = cc.format
	}

	if cmd.Flags().Changed("max-violations") {
		cfg.Output.MaxViolations = cc.maxViolations
	}

	if cc.noColor {
		cfg.Output.NoColor = true
	}
}

func (cc *CheckCommand) newRenderer(cfg *config.Config) render.Renderer {
	if cfg.Output.Format == config.FormatJSON {
		return render.NewJSON(cc.stdout)
	}

	return render.NewText(cc.stdout, cfg.Output.NoColor, cfg.Output.MaxViolations)
}

func defaultEngineFactory(cfg config.EngineConfig, logger *slog.Logger) (engine.Engine, error) {
	return engine.NewExec(engine.ExecConfig{
		Command:      cfg.Command,
		Args:         cfg.Args,
		SettingsFile: cfg.SettingsFile,
	}, logger)
}
