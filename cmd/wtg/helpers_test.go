package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/conn-castle/wtg/internal/bcd"
	"github.com/conn-castle/wtg/internal/osversion"
	"github.com/conn-castle/wtg/internal/prompt"
)

const (
	testStorePath = `C:\Boot\BCD`
	testGUID      = "{a1b2c3d4-0000-1111-2222-333344445555}"
	healthyEnum   = "Windows Boot Manager\nidentifier {bootmgr}\n\nWindows Boot Loader\nidentifier {current}\ndevice partition=C:\n"
	updatedEnum   = "Windows Boot Manager\nidentifier {bootmgr}\n\nWindows Boot Loader\nidentifier {current}\ndevice partition=F:\n"
	missingEnum   = "Windows Boot Manager\nidentifier {bootmgr}\n"
)

// fakeSystem scripts the boot configuration tool for command tests.
type fakeSystem struct {
	mu    sync.Mutex
	enums []string
	calls [][]string
	enumN int
}

func (f *fakeSystem) RunElevated(string, []string) (bcd.Launch, error) {
	return bcd.Launch{}, bcd.ErrElevationUnsupported
}

func (f *fakeSystem) Run(_ string, args []string) (bcd.Launch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, args)
	launch := bcd.Launch{Captured: true, Output: "The operation completed successfully."}
	switch args[2] {
	case "/enum":
		i := min(f.enumN, len(f.enums)-1)
		launch.Output = f.enums[i]
		f.enumN++
	case "/create":
		launch.Output = "The entry " + testGUID + " was successfully created."
	}
	return launch, nil
}

func (f *fakeSystem) Capture(string, []string) (string, error) {
	return "", errors.New("capture not expected")
}

func (f *fakeSystem) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type stubReader struct{}

func (stubReader) ProductVersion(string) (osversion.FileVersion, error) {
	return osversion.FileVersion{}, errors.New("no version resource")
}

type stubConfirmer struct {
	answer bool
	err    error
	asked  int
}

func (c *stubConfirmer) Confirm(string, string) (bool, error) {
	c.asked++
	return c.answer, c.err
}

// env wires fakes into the command seams for one test.
type env struct {
	sys       *fakeSystem
	fs        afero.Fs
	confirmer *stubConfirmer
	config    string
}

func newEnv(t *testing.T, enums ...string) *env {
	t.Helper()
	if len(enums) == 0 {
		enums = []string{healthyEnum}
	}
	e := &env{
		sys:       &fakeSystem{enums: enums},
		fs:        afero.NewMemMapFs(),
		confirmer: &stubConfirmer{},
		config:    filepath.Join(t.TempDir(), "config.toml"),
	}
	writeFile(t, e.fs, testStorePath)
	writeFile(t, e.fs, `C:\Windows\System32\MusUpdateHandlers.dll`)
	content := "[bcdedit]\npath = 'C:\\Windows\\System32\\bcdedit.exe'\n\n[pacing]\ndirective_delay = \"0s\"\nentry_delay = \"0s\"\n"
	if err := os.WriteFile(e.config, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	origSystem, origFs, origReader, origConfirmer, origInteractive := newSystem, newFs, newVersionReader, newConfirmer, isInteractive
	t.Cleanup(func() {
		newSystem, newFs, newVersionReader, newConfirmer, isInteractive = origSystem, origFs, origReader, origConfirmer, origInteractive
	})
	newSystem = func() bcd.System { return e.sys }
	newFs = func() afero.Fs { return e.fs }
	newVersionReader = func() osversion.VersionReader { return stubReader{} }
	newConfirmer = func() prompt.Confirmer { return e.confirmer }
	isInteractive = func() bool { return false }
	return e
}

func writeFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// run executes the CLI with the env's config file.
func (e *env) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	full := append([]string{"wtg", "--config", e.config}, args...)
	err := execute(full, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}
