package bcd

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/osversion"
	"github.com/conn-castle/wtg/internal/status"
	"github.com/conn-castle/wtg/internal/volume"
)

// ErrCreateFailed is returned when the create directive exits non-zero.
var ErrCreateFailed = errors.New(messages.BCDCreateFailedErr)

// EntryManager creates a dedicated loader record for the removable volume.
type EntryManager struct {
	exec      *Executor
	storeFile string
	label     string
	delay     time.Duration
	sink      status.Sink
}

// NewEntryManager returns an EntryManager labelling new records with label
// and pacing their configuration by delay.
func NewEntryManager(exec *Executor, storeFile, label string, delay time.Duration, sink status.Sink) *EntryManager {
	return &EntryManager{
		exec:      exec,
		storeFile: storeFile,
		label:     label,
		delay:     delay,
		sink:      status.Ensure(sink),
	}
}

// CreateDirective is the directive that creates a loader record.
func CreateDirective(label string) Directive {
	return Directive{"/create", "/d", label, "/application", "osloader"}
}

// EntrySettings are applied to a freshly created record.
func EntrySettings(v osversion.Version, target volume.Target) []Setting {
	partition := target.Partition()
	settings := []Setting{
		{"device", partition},
		{"osdevice", partition},
		{"path", winloadPath},
		{"systemroot", systemRoot},
		{"detecthal", "yes"},
		{"winpe", "no"},
		{"nointegritychecks", "on"},
		{"testsigning", "on"},
		{"bootmenupolicy", "Legacy"},
		{"quietboot", "no"},
		{"sos", "yes"},
	}
	if v.AtLeast(osversion.Win10) {
		settings = append(settings,
			Setting{"hypervisorlaunchtype", "Off"},
			Setting{"isolatedcontext", "no"},
		)
	}
	return settings
}

// PromoteDirectives make id the default record and list it first.
func PromoteDirectives(id RecordID) []Directive {
	return []Directive{
		{"/default", string(id)},
		{"/displayorder", string(id), "/addfirst"},
	}
}

// Entry is a created loader record and the results of configuring it.
type Entry struct {
	ID RecordID
	// Configuration holds the settings and promotion results, in order.
	Configuration Batch
}

// Promoted reports whether the record became the default and first in the
// display order.
func (e Entry) Promoted() bool {
	for _, want := range PromoteDirectives(e.ID) {
		if !slices.ContainsFunc(e.Configuration, func(r Result) bool {
			return r.Succeeded && slices.Equal(r.Directive, want)
		}) {
			return false
		}
	}
	return true
}

// CreateDedicatedEntry creates, configures, and promotes a loader record
// that boots target. The identifier is returned once creation succeeds,
// even if some configuration directives fail; those are published as
// warnings. It never returns a sentinel identifier.
func (m *EntryManager) CreateDedicatedEntry(ctx context.Context, version osversion.Version, source volume.Source, target volume.Target) (RecordID, error) {
	entry, err := m.Create(ctx, version, source, target)
	return entry.ID, err
}

// Create is CreateDedicatedEntry returning the configuration results too.
func (m *EntryManager) Create(ctx context.Context, version osversion.Version, source volume.Source, target volume.Target) (Entry, error) {
	store := NewStore(source, m.storeFile)
	m.sink.Publish(status.Info(messages.BCDCreatingEntry))
	if !processElevated() {
		m.sink.Publish(status.Warn(messages.BCDEntryNotElevated))
	}

	created := m.exec.Execute(store, CreateDirective(m.label))
	if !created.Succeeded {
		m.sink.Publish(status.Error(messages.BCDEntryCreateFailed))
		if created.Err != nil {
			return Entry{}, fmt.Errorf(messages.BCDEntryCreateErrFmt, created.ExitCode, errors.Join(ErrCreateFailed, created.Err))
		}
		return Entry{}, fmt.Errorf(messages.BCDEntryCreateErrFmt, created.ExitCode, ErrCreateFailed)
	}

	id, err := ExtractRecordID(created.Output)
	if err != nil {
		m.sink.Publish(status.Error(messages.BCDEntryNoGUID))
		return Entry{}, fmt.Errorf(messages.BCDEntryParseErrFmt, err)
	}
	if !id.IsGUID() {
		m.sink.Publish(status.Error(messages.BCDEntryNoGUID))
		return Entry{}, fmt.Errorf(messages.BCDEntryNotGUIDErrFmt, id, ErrNotGUID)
	}

	directives := applySettings(id, EntrySettings(version, target))
	directives = append(directives, PromoteDirectives(id)...)
	entry := Entry{ID: id}
	entry.Configuration = m.exec.ExecuteAll(ctx, store, directives, m.delay, messages.BCDEntryConfigWarnFmt)
	if !entry.Promoted() {
		m.sink.Publish(status.Warn(fmt.Sprintf(messages.BCDEntryNotPromotedFmt, id)))
	}

	m.sink.Publish(status.Info(fmt.Sprintf(messages.BCDEntryCreatedFmt, id)))
	return entry, nil
}
