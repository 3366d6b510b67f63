package engine

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Sentinel errors for engine runs.
var (
	// ErrEngineCommandUnset indicates no engine command is configured.
	ErrEngineCommandUnset = errors.New("engine command not configured")
	// ErrBadEvent indicates the engine emitted an event that does not
	// conform to the event schema.
	ErrBadEvent = errors.New("engine emitted malformed event")
)

//go:embed event_schema.json
var eventSchemaJSON []byte

// event mirrors one JSON line on the engine's stdout.
type event struct {
	Type     string `json:"type"`
	Project  string `json:"project"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Event type discriminators on the engine wire format.
const (
	eventTypeViolation = "violation"
	eventTypeOutput    = "output"
)

// maxEventLineBytes bounds a single event line on the engine's stdout.
const maxEventLineBytes = 1 << 20

// ExecConfig configures an exec-based engine.
type ExecConfig struct {
	// Command is the engine executable.
	Command string

	// Args are arguments passed before the per-project arguments.
	Args []string

	// SettingsFile, when set, is passed to the engine as --settings.
	SettingsFile string
}

// Exec drives an external analysis engine process. One process is started
// per registered project; the engine reports events as JSON lines on stdout.
// Each line is validated against the event schema before dispatch.
type Exec struct {
	cfg    ExecConfig
	logger *slog.Logger
	schema *gojsonschema.Schema

	registered []registration
}

type registration struct {
	desc    Descriptor
	sources []string
}

// NewExec creates an exec engine from cfg. The logger may not be nil.
func NewExec(cfg ExecConfig, logger *slog.Logger) (*Exec, error) {
	if cfg.Command == "" {
		return nil, ErrEngineCommandUnset
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(eventSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("load event schema: %w", err)
	}

	return &Exec{cfg: cfg, logger: logger, schema: schema}, nil
}

// Register queues a project and its sources for the next Run.
func (e *Exec) Register(desc Descriptor, sources []string) error {
	e.registered = append(e.registered, registration{desc: desc, sources: sources})

	return nil
}

// Run starts one engine process per registered project, in registration
// order, streaming events to h. The first process failure aborts the run.
func (e *Exec) Run(ctx context.Context, h Handler) error {
	for _, reg := range e.registered {
		err := e.runProject(ctx, reg, h)
		if err != nil {
			return fmt.Errorf("project %d (%s): %w", reg.desc.Key, reg.desc.Location, err)
		}
	}

	return nil
}

func (e *Exec) runProject(ctx context.Context, reg registration, h Handler) error {
	args := append([]string(nil), e.cfg.Args...)
	args = append(args, "--project-key", strconv.Itoa(reg.desc.Key))

	if e.cfg.SettingsFile != "" {
		args = append(args, "--settings", e.cfg.SettingsFile)
	}

	args = append(args, reg.desc.Flags...)
	args = append(args, reg.sources...)

	cmd := exec.CommandContext(ctx, e.cfg.Command, args...)
	cmd.Dir = reg.desc.Location

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	e.logger.Debug("starting engine",
		slog.String("command", e.cfg.Command),
		slog.Int("project_key", reg.desc.Key),
		slog.Int("sources", len(reg.sources)))

	startErr := cmd.Start()
	if startErr != nil {
		return fmt.Errorf("start engine: %w", startErr)
	}

	// Both pipes must be drained while the engine runs: an engine that
	// fills one pipe's buffer blocks until it is read. Stderr is consumed
	// on its own goroutine; handler calls are serialized. Per-stream event
	// order is preserved, cross-stream order is best-effort.
	locked := &lockedHandler{next: h}

	var (
		wg        sync.WaitGroup
		stderrErr error
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		stderrErr = e.forwardStderr(stderr, locked)
	}()

	streamErr := e.dispatchEvents(stdout, locked)
	if streamErr != nil {
		// Unblock an engine still writing stdout so it can exit.
		_, _ = io.Copy(io.Discard, stdout)
	}

	wg.Wait()

	waitErr := cmd.Wait()

	if streamErr != nil {
		return streamErr
	}

	if waitErr != nil {
		return fmt.Errorf("engine exited: %w", waitErr)
	}

	return stderrErr
}

// dispatchEvents reads JSON-lines events from r, validating each line
// against the event schema before delivering it to h.
func (e *Exec) dispatchEvents(r io.Reader, h Handler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxEventLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		validateErr := e.validate(line)
		if validateErr != nil {
			return validateErr
		}

		var ev event

		unmarshalErr := json.Unmarshal(line, &ev)
		if unmarshalErr != nil {
			return fmt.Errorf("%w: %v", ErrBadEvent, unmarshalErr)
		}

		switch ev.Type {
		case eventTypeViolation:
			h.HandleViolation(Violation{
				Project:  ev.Project,
				File:     ev.File,
				Line:     ev.Line,
				Rule:     ev.Rule,
				Message:  ev.Message,
				Severity: ev.Severity,
			})
		case eventTypeOutput:
			h.HandleOutput(Output{Message: ev.Message})
		}
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return fmt.Errorf("read engine output: %w", scanErr)
	}

	return nil
}

func (e *Exec) validate(line []byte) error {
	result, err := e.schema.Validate(gojsonschema.NewBytesLoader(line))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadEvent, err)
	}

	if !result.Valid() {
		first := result.Errors()[0]

		return fmt.Errorf("%w: %s: %s", ErrBadEvent, first.Field(), first.Description())
	}

	return nil
}

// forwardStderr relays engine stderr lines to the handler as output events.
func (e *Exec) forwardStderr(r io.Reader, h Handler) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		h.HandleOutput(Output{Message: scanner.Text()})
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return fmt.Errorf("read engine stderr: %w", scanErr)
	}

	return nil
}

// lockedHandler serializes handler calls from the stdout and stderr readers.
type lockedHandler struct {
	mu   sync.Mutex
	next Handler
}

func (l *lockedHandler) HandleViolation(v Violation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next.HandleViolation(v)
}

func (l *lockedHandler) HandleOutput(o Output) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next.HandleOutput(o)
}
