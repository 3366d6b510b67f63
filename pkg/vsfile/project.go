package vsfile

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// ProjectExt is the file extension of a C# project file.
const ProjectExt = ".csproj"

// SourceExt is the file extension of a C# source file.
const SourceExt = ".cs"

// Project is a C# project file. After Load, Sources holds the resolved paths
// of every hand-authored compile item, in document order.
type Project struct {
	file

	// Name is the project name. Empty unless the project was discovered
	// through a solution file.
	Name string

	// Sources are the resolved paths of the project's .cs compile items.
	Sources []string
}

// NewProject creates a project from a path alone. The name is left unset.
func NewProject(path string) *Project {
	return &Project{file: file{path: path}}
}

// NewNamedProject creates a project with an explicit name, as declared by a
// solution file entry.
func NewNamedProject(name, path string) *Project {
	return &Project{file: file{path: path}, Name: name}
}

// projectXML mirrors the MSBuild project shape we care about. Tags use local
// element names so both MSBuild-2003-namespaced and SDK-style projects decode.
type projectXML struct {
	ItemGroups []itemGroupXML `xml:"ItemGroup"`
}

type itemGroupXML struct {
	Compiles []compileItemXML `xml:"Compile"`
}

type compileItemXML struct {
	Include string `xml:"Include,attr"`
	AutoGen string `xml:"AutoGen"`
}

// Load validates the project path and extension, then extracts the compile
// items. Items flagged as auto-generated are excluded; items without an
// Include attribute or whose Include does not end in .cs are skipped. An
// item-group-free project yields an empty source list.
func (p *Project) Load() error {
	return load(p.path, ProjectExt, p.read)
}

func (p *Project) read() error {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read project %s: %w", p.path, err)
	}

	var doc projectXML

	unmarshalErr := xml.Unmarshal(data, &doc)
	if unmarshalErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, p.path, unmarshalErr)
	}

	for _, group := range doc.ItemGroups {
		for _, item := range group.Compiles {
			if strings.EqualFold(strings.TrimSpace(item.AutoGen), "true") {
				continue
			}

			if item.Include == "" {
				continue
			}

			if !hasSuffixFold(item.Include, SourceExt) {
				continue
			}

			p.Sources = append(p.Sources, p.FullPath(item.Include))
		}
	}

	return nil
}

// hasSuffixFold reports whether s ends in suffix, compared case-insensitively.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
