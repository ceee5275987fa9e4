package models

import "context"

// ExecResult is what comes back across the process boundary: whatever the
// ping binary wrote, its exit status, and whether the bounded wait expired.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// Executor interface defines the external ping process invocation
type Executor interface {
	Run(ctx context.Context, args []string) (*ExecResult, error)
}

// LogStore interface defines operations on the append-only probe log
type LogStore interface {
	Append(result ProbeResult) error
	Read() (string, error)
	Clear() error
	Path() string
}

// Reporter interface defines terminal rendering of probe results
type Reporter interface {
	Render(result ProbeResult)
	RenderError(err error)
}
