package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/sharpfang/internal/worklist"
)

// ListCommand holds the flags for the list command.
type ListCommand struct {
	solutions []string
	projects  []string

	stdout io.Writer
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return newListCommandWithDeps(os.Stdout)
}

func newListCommandWithDeps(stdout io.Writer) *cobra.Command {
	lc := &ListCommand{stdout: stdout}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "Discover C# sources and print them",
		Long: `Discover C# source files from Visual Studio solution and project
files and print them without running the analysis engine.

Examples:
  sharpfang list -s All.sln
  sharpfang list -p src/MyApp.csproj`,
		RunE: lc.Run,
	}

	cobraCmd.Flags().StringSliceVarP(&lc.solutions, "solution", "s", nil, "solution file to list (repeatable)")
	cobraCmd.Flags().StringSliceVarP(&lc.projects, "project", "p", nil, "project file to list (repeatable)")

	return cobraCmd
}

// Run executes the list command.
func (lc *ListCommand) Run(cmd *cobra.Command, _ []string) error {
	if len(lc.solutions) == 0 && len(lc.projects) == 0 {
		return ErrNoInputFiles
	}

	projects, err := worklist.Build(lc.solutions, lc.projects, newLogger(cmd))
	if err != nil {
		return err
	}

	for _, project := range projects {
		name := project.Name
		if name == "" {
			name = project.Path()
		}

		fmt.Fprintf(lc.stdout, "%s (%d sources)\n", name, len(project.Sources))

		for _, source := range project.Sources {
			fmt.Fprintf(lc.stdout, "  %s\n", source)
		}
	}

	return nil
}
