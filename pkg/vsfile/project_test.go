package vsfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/sharpfang/pkg/vsfile"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestProjectLoad_MissingFile(t *testing.T) {
	t.Parallel()

	project := vsfile.NewProject(filepath.Join(t.TempDir(), "absent.csproj"))

	err := project.Load()
	require.ErrorIs(t, err, vsfile.ErrNotFound)
}

func TestProjectLoad_WrongExtension(t *testing.T) {
	t.Parallel()

	// Content is a valid project; the extension check must fire first.
	path := writeFile(t, t.TempDir(), "app.vbproj",
		`<Project><ItemGroup><Compile Include="A.cs"/></ItemGroup></Project>`)

	err := vsfile.NewProject(path).Load()
	require.ErrorIs(t, err, vsfile.ErrInvalidExtension)
}

func TestProjectLoad_ExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.CsProj",
		`<Project><ItemGroup><Compile Include="A.cs"/></ItemGroup></Project>`)

	project := vsfile.NewProject(path)
	require.NoError(t, project.Load())
	assert.Len(t, project.Sources, 1)
}

func TestProjectLoad_MalformedXML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.csproj", `<Project><ItemGroup>`)

	err := vsfile.NewProject(path).Load()
	require.ErrorIs(t, err, vsfile.ErrParse)
}

func TestProjectLoad_CollectsSourcesInDocumentOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "app.csproj", `<Project xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <ItemGroup>
    <Compile Include="B.cs"/>
    <Compile Include="A.cs"/>
  </ItemGroup>
  <ItemGroup>
    <Compile Include="sub\C.cs"/>
  </ItemGroup>
</Project>`)

	project := vsfile.NewProject(path)
	require.NoError(t, project.Load())

	want := []string{
		filepath.Join(dir, "B.cs"),
		filepath.Join(dir, "A.cs"),
		filepath.Join(dir, "sub", "C.cs"),
	}
	assert.Equal(t, want, project.Sources)
}

func TestProjectLoad_SkipsAutoGenerated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "app.csproj", `<Project>
  <ItemGroup>
    <Compile Include="A.cs"/>
    <Compile Include="Gen.cs"><AutoGen>true</AutoGen></Compile>
    <Compile Include="Gen2.cs"><AutoGen>TRUE</AutoGen></Compile>
    <Compile Include="Kept.cs"><AutoGen>false</AutoGen></Compile>
  </ItemGroup>
</Project>`)

	project := vsfile.NewProject(path)
	require.NoError(t, project.Load())

	want := []string{
		filepath.Join(dir, "A.cs"),
		filepath.Join(dir, "Kept.cs"),
	}
	assert.Equal(t, want, project.Sources)
}

func TestProjectLoad_SkipsNonSourceAndMissingInclude(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "app.csproj", `<Project>
  <ItemGroup>
    <Compile Include="readme.txt"/>
    <Compile/>
    <Compile Include="Upper.CS"/>
  </ItemGroup>
</Project>`)

	project := vsfile.NewProject(path)
	require.NoError(t, project.Load())

	// Extension comparison is case-insensitive; non-.cs and attribute-less
	// items are skipped silently.
	assert.Equal(t, []string{filepath.Join(dir, "Upper.CS")}, project.Sources)
}

func TestProjectLoad_EmptyItemGroups(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "app.csproj", `<Project><ItemGroup/></Project>`)

	project := vsfile.NewProject(path)
	require.NoError(t, project.Load())
	assert.Empty(t, project.Sources)
}

func TestNewNamedProject(t *testing.T) {
	t.Parallel()

	project := vsfile.NewNamedProject("MyApp", "/tmp/src/MyApp.csproj")

	assert.Equal(t, "MyApp", project.Name)
	assert.Equal(t, "/tmp/src/MyApp.csproj", project.Path())
	assert.Equal(t, "/tmp/src", project.Dir())
}

func TestFullPath_NormalizesBackslashes(t *testing.T) {
	t.Parallel()

	project := vsfile.NewProject(filepath.Join("base", "app.csproj"))

	got := project.FullPath(`sub\deep\File.cs`)
	assert.Equal(t, filepath.Join("base", "sub", "deep", "File.cs"), got)
}
