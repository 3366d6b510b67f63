package vsfile

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// SolutionExt is the file extension of a Visual Studio solution file.
const SolutionExt = ".sln"

// projectLinePrefix marks solution lines that may declare a project.
const projectLinePrefix = "Project"

// projectLineRe matches a C# project declaration:
//
//	Project("{GUID}") = "Name", "Relative\Path.csproj", "{GUID}"
//
// Lines starting with Project that do not match (other project types,
// malformed entries) are skipped without error.
var projectLineRe = regexp.MustCompile(
	`^Project\("\{[0-9A-Fa-f-]+\}"\) = "(?P<name>\w+)", "(?P<path>[\w.\\]+)", "\{[0-9A-Fa-f-]+\}"`,
)

// Solution is a Visual Studio solution file. After Load, Projects holds one
// entry per recognized C# project declaration, in file order. The solution
// owns its projects; they are constructed unloaded.
type Solution struct {
	file

	Projects []*Project
}

// NewSolution creates a solution from a path.
func NewSolution(path string) *Solution {
	return &Solution{file: file{path: path}}
}

// Load validates the solution path and extension, then scans the file line
// by line for project declarations. Each match yields a named project with
// its path resolved against the solution's directory.
func (s *Solution) Load() error {
	return load(s.path, SolutionExt, s.read)
}

func (s *Solution) read() error {
	handle, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open solution %s: %w", s.path, err)
	}
	defer handle.Close()

	nameIdx := projectLineRe.SubexpIndex("name")
	pathIdx := projectLineRe.SubexpIndex("path")

	scanner := bufio.NewScanner(handle)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, projectLinePrefix) {
			continue
		}

		match := projectLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name := match[nameIdx]
		path := s.FullPath(match[pathIdx])
		s.Projects = append(s.Projects, NewNamedProject(name, path))
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return fmt.Errorf("scan solution %s: %w", s.path, scanErr)
	}

	return nil
}
