package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	log "github.com/sirupsen/logrus"

	"pingtool/internal/models"
)

// ExecutionError reports that the ping process could not be started at all,
// as opposed to running and exiting nonzero.
type ExecutionError struct {
	Binary string
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("could not run %s: %v", e.Binary, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Executor runs the platform ping binary with a bounded context.
type Executor struct {
	binary string
}

// New creates an Executor invoking the system ping binary.
func New() *Executor {
	return &Executor{binary: "ping"}
}

// Run executes ping with the given arguments, capturing stdout and stderr
// separately. A nonzero exit code is not an error here: ping exits nonzero
// on total loss and the caller decides what that means. Deadline expiry is
// reported on the result with whatever partial output was captured.
func (e *Executor) Run(ctx context.Context, args []string) (*models.ExecResult, error) {
	log.Debugf("exec: %s %v", e.binary, args)

	cmd := exec.CommandContext(ctx, e.binary, args...)
	var outb, errb bytes.Buffer
	cmd.Stdout = &outb
	cmd.Stderr = &errb

	err := cmd.Run()

	result := &models.ExecResult{
		Stdout:   outb.String(),
		Stderr:   errb.String(),
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}

	if err != nil && !result.TimedOut {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			// Process never started: binary missing, permission denied.
			return nil, &ExecutionError{Binary: e.binary, Err: err}
		}
	}

	log.Debugf("exec done: exit=%d timedOut=%v stdout=%dB", result.ExitCode, result.TimedOut, outb.Len())
	return result, nil
}
