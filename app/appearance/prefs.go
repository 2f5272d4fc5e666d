package appearance

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner
//go:generate moq -out mocks/prefs.go -pkg mocks -skip-ensure -fmt goimports . Prefs

// ErrExitStatus is returned by Runner.Output when the process exits with non-zero status.
var ErrExitStatus = errors.New("non-zero exit status")

// Runner starts external processes.
type Runner interface {
	// Run starts the process and waits for it to exit. Only a failure to start is an error.
	Run(name string, args ...string) error
	// Output runs the process and returns its stdout.
	Output(name string, args ...string) ([]byte, error)
}

// Prefs reads string preferences. ok is false when the key is not set.
type Prefs interface {
	String(key string) (value string, ok bool, err error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

// Run starts the process and waits for it. Exit status is logged, not returned.
func (ExecRunner) Run(name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...) //nolint:gosec // name is a fixed interpreter path from config
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Printf("[WARN] %s exited with %d: %s", name, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to wait for %s: %w", name, err)
	}
	return nil
}

// Output runs the process and returns its stdout.
// Non-zero exit is reported as ErrExitStatus with stderr attached.
func (ExecRunner) Output(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output() //nolint:gosec // fixed command
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("%w: %s", ErrExitStatus, strings.TrimSpace(string(exitErr.Stderr)))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return out, nil
}

// Defaults reads global preferences with the macOS defaults tool.
type Defaults struct {
	runner Runner
}

// NewDefaults makes Defaults using the given runner.
func NewDefaults(runner Runner) *Defaults {
	return &Defaults{runner: runner}
}

// String returns the global preference value for key.
// defaults exits with non-zero status for a missing key, which is reported as not set.
func (d *Defaults) String(key string) (string, bool, error) {
	out, err := d.runner.Output("defaults", "read", "-g", key)
	if errors.Is(err, ErrExitStatus) {
		log.Printf("[DEBUG] preference %s is not set", key)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return strings.TrimSpace(string(out)), true, nil
}
