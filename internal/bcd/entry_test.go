package bcd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/wtg/internal/osversion"
	"github.com/conn-castle/wtg/internal/status"
)

func newTestEntryManager(tool *fakeTool, sink status.Sink) *EntryManager {
	exec := NewExecutor(tool.system(), testTool, sink, nil)
	return NewEntryManager(exec, "BCD", "Windows To Go - USB", 0, sink)
}

func TestCreateDedicatedEntry_ConfiguresAndPromotes(t *testing.T) {
	noSleep(t)
	tool := &fakeTool{createOutput: "The entry " + testGUID + " was successfully created."}
	rec := &recorder{}
	m := newTestEntryManager(tool, rec)

	id, err := m.CreateDedicatedEntry(context.Background(), osversion.Win11, testSource, testTarget)

	require.NoError(t, err)
	require.Equal(t, RecordID(testGUID), id)

	calls := tool.directives()
	require.Equal(t, CreateDirective("Windows To Go - USB"), calls[0])
	require.Contains(t, calls, Directive{"/set", testGUID, "device", "partition=F:"})
	require.Contains(t, calls, Directive{"/set", testGUID, "hypervisorlaunchtype", "Off"})
	require.Equal(t, PromoteDirectives(id), calls[len(calls)-2:])
	require.Len(t, calls, 1+len(EntrySettings(osversion.Win11, testTarget))+2)
	require.Contains(t, rec.messages(), "USB-specific boot entry created successfully: "+testGUID)
}

func TestCreateDedicatedEntry_OlderReleaseSkipsHypervisorSettings(t *testing.T) {
	require.NotContains(t, EntrySettings(osversion.Win8, testTarget), Setting{"hypervisorlaunchtype", "Off"})
	require.Contains(t, EntrySettings(osversion.Win10, testTarget), Setting{"isolatedcontext", "no"})
}

func TestCreateDedicatedEntry_ConfigFailuresAreWarnings(t *testing.T) {
	noSleep(t)
	elevated(t, true)
	tool := &fakeTool{
		createOutput: testGUID,
		exitCode: func(d Directive) int {
			if d[0] == "/set" && d[2] == "sos" {
				return 1
			}
			return 0
		},
	}
	rec := &recorder{}
	m := newTestEntryManager(tool, rec)

	id, err := m.CreateDedicatedEntry(context.Background(), osversion.Win10, testSource, testTarget)

	require.NoError(t, err)
	require.Equal(t, RecordID(testGUID), id)
	require.Equal(t, []string{"WARNING: Failed to configure USB boot entry: /set " + testGUID + " sos yes"}, rec.level(status.LevelWarn))
}

func TestCreate_PromotionFailureIsReported(t *testing.T) {
	noSleep(t)
	elevated(t, true)
	tool := &fakeTool{
		createOutput: testGUID,
		exitCode: func(d Directive) int {
			if d[0] == "/default" {
				return 1
			}
			return 0
		},
	}
	rec := &recorder{}
	m := newTestEntryManager(tool, rec)

	entry, err := m.Create(context.Background(), osversion.Win10, testSource, testTarget)

	require.NoError(t, err)
	require.Equal(t, RecordID(testGUID), entry.ID)
	require.False(t, entry.Promoted())
	require.Len(t, entry.Configuration, len(EntrySettings(osversion.Win10, testTarget))+2)
	failed := entry.Configuration.Failed()
	require.Len(t, failed, 1)
	require.Equal(t, Directive{"/default", testGUID}, failed[0].Directive)
	require.Equal(t, []string{
		"WARNING: Failed to configure USB boot entry: /default " + testGUID,
		"WARNING: USB boot entry " + testGUID + " was created but could not be made the default",
	}, rec.level(status.LevelWarn))
}

func TestCreate_WarnsWhenNotElevated(t *testing.T) {
	noSleep(t)
	tool := &fakeTool{createOutput: testGUID}

	elevated(t, false)
	rec := &recorder{}
	entry, err := newTestEntryManager(tool, rec).Create(context.Background(), osversion.Win10, testSource, testTarget)
	require.NoError(t, err)
	require.True(t, entry.Promoted())
	warnings := rec.level(status.LevelWarn)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "Run wtg from an elevated shell")

	elevated(t, true)
	rec = &recorder{}
	_, err = newTestEntryManager(tool, rec).Create(context.Background(), osversion.Win10, testSource, testTarget)
	require.NoError(t, err)
	require.Empty(t, rec.level(status.LevelWarn))
}

func TestCreateDedicatedEntry_Errors(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		exitCode int
		wantErr  error
	}{
		{name: "create exits non-zero", output: testGUID, exitCode: 1, wantErr: ErrCreateFailed},
		{name: "no identifier", output: "The operation completed successfully.", wantErr: ErrNoRecordID},
		{name: "sentinel identifier", output: "{current}", wantErr: ErrNotGUID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := &fakeTool{
				createOutput: tt.output,
				exitCode:     func(Directive) int { return tt.exitCode },
			}
			rec := &recorder{}
			m := newTestEntryManager(tool, rec)

			id, err := m.CreateDedicatedEntry(context.Background(), osversion.Win10, testSource, testTarget)

			require.ErrorIs(t, err, tt.wantErr)
			require.Empty(t, id)
			require.Len(t, tool.directives(), 1, "nothing may be configured without an identifier")
			require.NotEmpty(t, rec.level(status.LevelError))
		})
	}
}

func TestCreateDedicatedEntry_LaunchFailure(t *testing.T) {
	rec := &recorder{}
	exec := NewExecutor(&testSystem{}, testTool, rec, nil)
	m := NewEntryManager(exec, "BCD", "label", 0, rec)

	_, err := m.CreateDedicatedEntry(context.Background(), osversion.Win10, testSource, testTarget)

	require.ErrorIs(t, err, ErrCreateFailed)
	require.ErrorIs(t, err, errNotMocked)
	require.Contains(t, err.Error(), "exit code -1")
}
