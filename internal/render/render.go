// Package render prints engine events and run summaries to the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/sharpfang/pkg/engine"
)

// Severity names on the engine wire format.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Renderer receives engine events and writes them to a terminal or file.
// It implements engine.Handler.
type Renderer interface {
	engine.Handler

	// Finish writes any buffered output plus the run summary and returns
	// the number of violations rendered (before truncation).
	Finish(projects, files int, elapsed time.Duration) (int, error)
}

// Text renders violations line by line as they arrive, with severity
// coloring, followed by a per-project summary table.
type Text struct {
	writer  io.Writer
	noColor bool

	// maxViolations caps printed violations; zero means unlimited.
	maxViolations int

	total      int
	perProject map[string]int
	order      []string
}

// NewText creates a text renderer writing to w.
func NewText(w io.Writer, noColor bool, maxViolations int) *Text {
	if NoColorEnv() {
		noColor = true
	}

	return &Text{
		writer:        w,
		noColor:       noColor,
		maxViolations: maxViolations,
		perProject:    map[string]int{},
	}
}

// HandleViolation prints one violation line, unless the cap is reached.
func (t *Text) HandleViolation(v engine.Violation) {
	t.count(v.Project)

	if t.maxViolations > 0 && t.total > t.maxViolations {
		return
	}

	fmt.Fprintf(t.writer, "%s %s:%d [%s] %s\n",
		t.severityTag(v.Severity), v.File, v.Line, v.Rule, v.Message)
}

// HandleOutput prints a free-form engine message.
func (t *Text) HandleOutput(o engine.Output) {
	fmt.Fprintln(t.writer, o.Message)
}

// Finish prints the truncation notice, the per-project table, and the run
// summary line.
func (t *Text) Finish(projects, files int, elapsed time.Duration) (int, error) {
	if t.maxViolations > 0 && t.total > t.maxViolations {
		fmt.Fprintf(t.writer, "... %s more violations suppressed\n",
			humanize.Comma(int64(t.total-t.maxViolations)))
	}

	if t.total > 0 {
		t.writeTable()
	}

	fmt.Fprintf(t.writer, "Checked %s source files in %d projects: %s violations (%s)\n",
		humanize.Comma(int64(files)),
		projects,
		humanize.Comma(int64(t.total)),
		elapsed.Round(time.Millisecond))

	return t.total, nil
}

func (t *Text) count(project string) {
	if _, seen := t.perProject[project]; !seen {
		t.order = append(t.order, project)
	}

	t.perProject[project]++
	t.total++
}

func (t *Text) writeTable() {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(t.writer)
	tbl.SetAllowedRowLength(DetectWidth())
	tbl.AppendHeader(table.Row{"Project", "Violations"})

	for _, name := range t.order {
		label := name
		if label == "" {
			label = "(unnamed)"
		}

		tbl.AppendRow(table.Row{label, t.perProject[name]})
	}

	tbl.Render()
}

func (t *Text) severityTag(severity string) string {
	tag := severity

	if t.noColor {
		return tag
	}

	switch severity {
	case SeverityError:
		return color.New(color.FgRed).Sprint(tag)
	case SeverityWarning:
		return color.New(color.FgYellow).Sprint(tag)
	case SeverityInfo:
		return color.New(color.FgBlue).Sprint(tag)
	default:
		return tag
	}
}

// JSON buffers violations and writes them as a single JSON document on
// Finish. Engine output messages are dropped in this mode.
type JSON struct {
	writer     io.Writer
	violations []engine.Violation
}

// NewJSON creates a JSON renderer writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{writer: w, violations: []engine.Violation{}}
}

// HandleViolation buffers one violation.
func (j *JSON) HandleViolation(v engine.Violation) {
	j.violations = append(j.violations, v)
}

// HandleOutput is a no-op in JSON mode.
func (j *JSON) HandleOutput(engine.Output) {}

// Finish writes the buffered violations and summary counts as JSON.
func (j *JSON) Finish(projects, files int, elapsed time.Duration) (int, error) {
	doc := struct {
		Projects   int                `json:"projects"`
		Files      int                `json:"files"`
		ElapsedMS  int64              `json:"elapsed_ms"`
		Violations []engine.Violation `json:"violations"`
	}{
		Projects:   projects,
		Files:      files,
		ElapsedMS:  elapsed.Milliseconds(),
		Violations: j.violations,
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")

	err := enc.Encode(doc)
	if err != nil {
		return 0, fmt.Errorf("encode violations: %w", err)
	}

	return len(j.violations), nil
}
