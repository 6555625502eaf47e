package bcd

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/conn-castle/wtg/internal/status"
	"github.com/conn-castle/wtg/internal/volume"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests. Every method fails fast
// when its Func field is nil; a real tool launch never happens in tests.
type testSystem struct {
	RunElevatedFunc func(path string, args []string) (Launch, error)
	RunFunc         func(path string, args []string) (Launch, error)
	CaptureFunc     func(path string, args []string) (string, error)
}

func (s *testSystem) RunElevated(path string, args []string) (Launch, error) {
	if s.RunElevatedFunc != nil {
		return s.RunElevatedFunc(path, args)
	}
	return Launch{}, fmt.Errorf("%w: RunElevated", errNotMocked)
}

func (s *testSystem) Run(path string, args []string) (Launch, error) {
	if s.RunFunc != nil {
		return s.RunFunc(path, args)
	}
	return Launch{}, fmt.Errorf("%w: Run", errNotMocked)
}

func (s *testSystem) Capture(path string, args []string) (string, error) {
	if s.CaptureFunc != nil {
		return s.CaptureFunc(path, args)
	}
	return "", fmt.Errorf("%w: Capture", errNotMocked)
}

const (
	testTool      = `C:\Windows\System32\bcdedit.exe`
	testStorePath = `C:\Boot\BCD`
	testGUID      = "{11111111-2222-3333-4444-555555555555}"
)

var (
	testSource = volume.Source("C:")
	testTarget = volume.Target("F:")
)

// fakeTool scripts tool behavior per directive. It launches unelevated with
// captured output, the way an already elevated process would.
type fakeTool struct {
	mu sync.Mutex
	// enums are returned by successive /enum directives; the last repeats.
	enums []string
	// createOutput is returned by /create.
	createOutput string
	// exitCode overrides the exit code for a directive; nil means 0.
	exitCode func(d Directive) int
	// onRun runs after a directive is recorded.
	onRun func(d Directive)
	calls []Directive
	enumN int
}

func (f *fakeTool) system() *testSystem {
	return &testSystem{
		RunElevatedFunc: func(string, []string) (Launch, error) {
			return Launch{}, ErrElevationUnsupported
		},
		RunFunc: f.run,
	}
}

func (f *fakeTool) run(_ string, args []string) (Launch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := Directive(args[2:])
	f.calls = append(f.calls, d)
	if f.onRun != nil {
		f.onRun(d)
	}
	launch := Launch{Captured: true}
	if f.exitCode != nil {
		launch.ExitCode = f.exitCode(d)
	}
	switch d[0] {
	case "/enum":
		if len(f.enums) > 0 {
			i := f.enumN
			if i >= len(f.enums) {
				i = len(f.enums) - 1
			}
			launch.Output = f.enums[i]
		}
		f.enumN++
	case "/create":
		launch.Output = f.createOutput
	default:
		launch.Output = "The operation completed successfully."
	}
	return launch, nil
}

func (f *fakeTool) directives() []Directive {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Directive(nil), f.calls...)
}

// countPrefix counts recorded directives whose first argument is verb.
func (f *fakeTool) countPrefix(verb string) int {
	n := 0
	for _, d := range f.directives() {
		if len(d) > 0 && d[0] == verb {
			n++
		}
	}
	return n
}

// recorder collects published events.
type recorder struct {
	mu     sync.Mutex
	events []status.Event
}

func (r *recorder) Publish(e status.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Message
	}
	return out
}

func (r *recorder) level(level status.Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// storeFs returns a filesystem holding the store file on the test source.
func storeFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testStorePath, []byte("regf"), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}
	return fs
}

// noSleep replaces the pacing sleep and records requested delays.
func noSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	original := sleepFunc
	t.Cleanup(func() { sleepFunc = original })
	var delays []time.Duration
	sleepFunc = func(d time.Duration) { delays = append(delays, d) }
	return &delays
}

// elevated overrides the process elevation check for one test.
func elevated(t *testing.T, value bool) {
	t.Helper()
	original := processElevated
	t.Cleanup(func() { processElevated = original })
	processElevated = func() bool { return value }
}
