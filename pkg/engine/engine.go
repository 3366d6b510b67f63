// Package engine defines the contract between the CLI and the external
// style-analysis engine, plus an implementation that drives an engine
// process over a JSON-lines event stream.
package engine

import "context"

// Descriptor identifies one project registered for analysis.
type Descriptor struct {
	// Key is the numeric project key, assigned by the caller.
	Key int

	// Location is the project's directory.
	Location string

	// Flags are engine configuration flags for this project.
	Flags []string
}

// Violation is a single style violation reported during a run.
type Violation struct {
	Project  string `json:"project"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Output is a free-form textual message emitted during a run.
type Output struct {
	Message string `json:"message"`
}

// Handler receives events as an analysis run produces them.
type Handler interface {
	HandleViolation(v Violation)
	HandleOutput(o Output)
}

// Engine accepts project registrations and runs analysis over the
// registered source files, reporting events to the handler.
type Engine interface {
	// Register adds a project and its source file paths to the run.
	Register(desc Descriptor, sources []string) error

	// Run analyzes every registered project. Events are delivered to h in
	// emission order. Run returns after all projects are processed or on
	// the first engine failure.
	Run(ctx context.Context, h Handler) error
}
