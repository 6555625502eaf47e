package bcd

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/conn-castle/wtg/internal/messages"
)

// ErrElevationUnsupported is returned by RunElevated where the platform has
// no elevation prompt.
var ErrElevationUnsupported = errors.New(messages.BCDElevationUnsupported)

// Launch is what a finished tool process reported.
type Launch struct {
	ExitCode int
	// Output holds console text when Captured is true.
	Output   string
	Captured bool
}

// System abstracts launching the external configuration tool so the
// executor can be tested without one. Launch methods wait for the process
// without a timeout; an error means the process could not be started.
type System interface {
	// RunElevated starts the tool with administrative rights. Elevated
	// launches usually cannot capture console output.
	RunElevated(path string, args []string) (Launch, error)
	// Run starts the tool with the caller's rights and captures its output.
	Run(path string, args []string) (Launch, error)
	// Capture starts the tool only to collect its console output.
	Capture(path string, args []string) (string, error)
}

// RealSystem implements System with os/exec and, on Windows, the shell's
// runas verb.
type RealSystem struct{}

// RunElevated launches path with elevation.
func (RealSystem) RunElevated(path string, args []string) (Launch, error) {
	return runElevated(path, args)
}

// Run launches path and captures combined output.
func (RealSystem) Run(path string, args []string) (Launch, error) {
	return runCaptured(path, args)
}

// Capture launches path and returns its combined output.
func (RealSystem) Capture(path string, args []string) (string, error) {
	launch, err := runCaptured(path, args)
	if err != nil {
		return "", err
	}
	return launch.Output, nil
}

// runCaptured runs the tool to completion. A non-zero exit is a completed
// launch, not an error.
func runCaptured(path string, args []string) (Launch, error) {
	out, err := exec.Command(path, args...).CombinedOutput()
	launch := Launch{Output: strings.TrimRight(string(out), "\r\n"), Captured: true}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			launch.ExitCode = exitErr.ExitCode()
			return launch, nil
		}
		return Launch{}, err
	}
	return launch, nil
}
