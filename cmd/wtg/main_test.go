package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"wtg", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"wtg", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"wtg", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"wtg", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	original := executeFunc
	t.Cleanup(func() { executeFunc = original })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"wtg"}, &out, &out, func(exitCode int) { code = exitCode })
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunMainWrappedSilentExit(t *testing.T) {
	original := executeFunc
	t.Cleanup(func() { executeFunc = original })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return errors.Join(errors.New("context"), &SilentExitError{Code: 2})
	}

	code := 0
	runMain([]string{"wtg"}, io.Discard, io.Discard, func(exitCode int) { code = exitCode })
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	if got := versionString(); got != "v1.2.3" {
		t.Fatalf("unexpected version %q", got)
	}

	Commit, BuildDate = "abc123", "2026-01-02"
	if got := versionString(); got != "v1.2.3 (commit abc123, built 2026-01-02)" {
		t.Fatalf("unexpected version %q", got)
	}
}

func TestRootHelpListsConfigKeys(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"wtg", "--help"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	for _, key := range []string{"bcdedit.path", "pacing.directive_delay", "entry.label", "tuning.enabled"} {
		if !strings.Contains(out.String(), key) {
			t.Fatalf("expected help to mention %s, got %q", key, out.String())
		}
	}
}

func TestShutdownSignalsCancelOnInterruptAndTerminate(t *testing.T) {
	want := map[os.Signal]bool{os.Interrupt: false, syscall.SIGTERM: false}
	for _, sig := range shutdownSignals {
		want[sig] = true
	}
	for sig, found := range want {
		if !found {
			t.Fatalf("shutdown signals missing %v", sig)
		}
	}
}
