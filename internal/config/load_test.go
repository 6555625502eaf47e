package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"), false)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 500*time.Millisecond, cfg.DirectiveDelay())
	require.Equal(t, 200*time.Millisecond, cfg.EntryDelay())
	require.True(t, cfg.EntryEnabled())
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.toml"), true)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "missing config file")
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[bcdedit]
path = 'D:\tools\bcdedit.exe'

[pacing]
directive_delay = "1s"

[entry]
enabled = false

[tuning]
enabled = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, `D:\tools\bcdedit.exe`, cfg.BCDEdit.Path)
	require.Equal(t, "BCD", cfg.BCDEdit.StoreFile)
	require.Equal(t, time.Second, cfg.DirectiveDelay())
	require.Equal(t, 200*time.Millisecond, cfg.EntryDelay())
	require.False(t, cfg.EntryEnabled())
	require.True(t, cfg.Tuning.Enabled)
}

func TestLoad_ExpandsHome(t *testing.T) {
	original := readFile
	t.Cleanup(func() { readFile = original })
	var requested string
	readFile = func(name string) ([]byte, error) {
		requested = name
		return nil, fs.ErrNotExist
	}

	_, err := Load(DefaultPath, false)
	require.NoError(t, err)
	require.False(t, strings.HasPrefix(requested, "~"), "path %q was not expanded", requested)
	require.True(t, strings.HasSuffix(requested, filepath.Join(".wtg", "config.toml")))
}

func TestLoad_ReadError(t *testing.T) {
	original := readFile
	t.Cleanup(func() { readFile = original })
	readFile = func(string) ([]byte, error) { return nil, errors.New("permission denied") }

	_, err := Load("config.toml", false)
	require.ErrorContains(t, err, "permission denied")
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		validation bool
		contains   string
	}{
		{name: "syntax", content: "[bcdedit\n", contains: "invalid config"},
		{name: "unknown key", content: "[bcdedit]\ntool = \"x\"\n", validation: true, contains: "unrecognized config keys"},
		{name: "unknown table", content: "[agents]\nenabled = true\n", validation: true, contains: "unrecognized config keys"},
		{name: "bad delay", content: "[pacing]\ndirective_delay = \"soon\"\n", validation: true, contains: "pacing.directive_delay"},
		{name: "negative delay", content: "[pacing]\nentry_delay = \"-1s\"\n", validation: true, contains: "pacing.entry_delay"},
		{name: "store file path", content: "[bcdedit]\nstore_file = 'Boot\\BCD'\n", validation: true, contains: "bare file name"},
		{name: "blank label", content: "[entry]\nlabel = \"   \"\n", validation: true, contains: "entry.label"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.content), "config.toml")
			require.Error(t, err)
			require.Equal(t, tt.validation, errors.Is(err, ErrConfigValidation))
			require.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParseConfig_BlankLabelAllowedWhenEntryDisabled(t *testing.T) {
	cfg, err := ParseConfig([]byte("[entry]\nenabled = false\nlabel = \" \"\n"), "config.toml")
	require.NoError(t, err)
	require.False(t, cfg.EntryEnabled())
}

func TestResolveToolPath(t *testing.T) {
	original := lookPath
	t.Cleanup(func() { lookPath = original })

	cfg, err := ParseConfig([]byte("[bcdedit]\npath = \"\"\n"), "config.toml")
	require.NoError(t, err)
	require.Empty(t, cfg.BCDEdit.Path)

	lookPath = func(file string) (string, error) {
		require.Equal(t, "bcdedit.exe", file)
		return `C:\Windows\System32\bcdedit.exe`, nil
	}
	path, err := cfg.ResolveToolPath()
	require.NoError(t, err)
	require.Equal(t, `C:\Windows\System32\bcdedit.exe`, path)

	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	_, err = cfg.ResolveToolPath()
	require.ErrorContains(t, err, "bcdedit.exe was not found on PATH")

	path, err = Default().ResolveToolPath()
	require.NoError(t, err)
	require.Equal(t, `C:\Windows\System32\bcdedit.exe`, path)
}

func TestFields(t *testing.T) {
	cfg := Default()
	for _, f := range Fields() {
		require.NotEmpty(t, f.Description, f.Key)
		require.NotEmpty(t, f.Default, f.Key)
	}
	field, ok := LookupField("pacing.directive_delay")
	require.True(t, ok)
	require.Equal(t, FieldDuration, field.Type)
	require.Equal(t, cfg.Pacing.DirectiveDelay, field.Default)

	_, ok = LookupField("approvals.mode")
	require.False(t, ok)
}
