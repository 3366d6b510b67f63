// Package worklist builds the ordered list of loaded C# projects to analyze
// from solution and project paths given on the command line.
package worklist

import (
	"fmt"
	"log/slog"

	"github.com/Sumatoshi-tech/sharpfang/pkg/vsfile"
)

// Build loads every solution in solutionPaths, collecting the projects each
// declares, then appends the directly-given projectPaths. All projects are
// loaded before return. Discovery is fail-fast: the first load error aborts
// the build and propagates.
func Build(solutionPaths, projectPaths []string, logger *slog.Logger) ([]*vsfile.Project, error) {
	var projects []*vsfile.Project

	for _, path := range solutionPaths {
		solution := vsfile.NewSolution(path)

		err := solution.Load()
		if err != nil {
			return nil, fmt.Errorf("load solution: %w", err)
		}

		logger.Debug("loaded solution",
			slog.String("path", path),
			slog.Int("projects", len(solution.Projects)))

		projects = append(projects, solution.Projects...)
	}

	for _, path := range projectPaths {
		projects = append(projects, vsfile.NewProject(path))
	}

	for _, project := range projects {
		err := project.Load()
		if err != nil {
			return nil, fmt.Errorf("load project: %w", err)
		}

		logger.Debug("loaded project",
			slog.String("path", project.Path()),
			slog.Int("sources", len(project.Sources)))
	}

	return projects, nil
}
