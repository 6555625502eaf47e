package bcd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/osversion"
	"github.com/conn-castle/wtg/internal/status"
	"github.com/conn-castle/wtg/internal/volume"
)

// Report is the result of validating a store.
type Report struct {
	// OK is true when the store holds both required records and no
	// corruption marker, possibly after a repair.
	OK           bool
	StoreMissing bool
	// Inaccessible is set when the enumeration could not be launched.
	Inaccessible bool
	// Repaired is set when a repair batch was applied.
	Repaired bool
	Initial  Inspection
	Final    Inspection
	// Output is the text of the last enumeration.
	Output string
	// Invocations counts tool launches, enumerations and repairs alike.
	Invocations int
}

// Validator checks a store for its required records and repairs it at
// most once.
type Validator struct {
	exec      *Executor
	fs        afero.Fs
	storeFile string
	repair    []Directive
	delay     time.Duration
	sink      status.Sink
}

// NewValidator returns a Validator. repair is the single batch applied
// when the store is unhealthy; when it is empty, repair is unavailable.
func NewValidator(exec *Executor, fs afero.Fs, storeFile string, repair []Directive, delay time.Duration, sink status.Sink) *Validator {
	return &Validator{
		exec:      exec,
		fs:        fs,
		storeFile: storeFile,
		repair:    repair,
		delay:     delay,
		sink:      status.Ensure(sink),
	}
}

// CanRepair reports whether a repair batch is configured.
func (v *Validator) CanRepair() bool { return len(v.repair) > 0 }

// Validate inspects the store on source. It is read-only when the store is
// healthy. version only labels status output.
func (v *Validator) Validate(ctx context.Context, version osversion.Version, source volume.Source) Report {
	store := NewStore(source, v.storeFile)
	v.sink.Publish(status.Info(fmt.Sprintf(messages.BCDValidatingFmt, source)))

	var report Report
	if !store.Exists(v.fs) {
		report.StoreMissing = true
		v.sink.Publish(status.Error(fmt.Sprintf(messages.BCDStoreMissingFmt, source)))
		return report
	}
	v.sink.Publish(status.Info(fmt.Sprintf(messages.BCDDetectedVersionFmt, version)))

	enum := v.exec.Execute(store, EnumAll)
	report.Invocations++
	report.Output = enum.Output
	if enum.LaunchFailed {
		report.Inaccessible = true
		v.sink.Publish(status.Error(fmt.Sprintf(messages.BCDStoreInaccessibleFmt, source)))
		return report
	}

	report.Initial = Inspect(enum.Output)
	report.Final = report.Initial
	if report.Initial.Healthy() {
		report.OK = true
		v.sink.Publish(status.Info(fmt.Sprintf(messages.BCDValidatedFmt, source)))
		return report
	}

	if len(report.Initial.Corruption) > 0 {
		v.sink.Publish(status.Error(fmt.Sprintf(messages.BCDCorruptionFmt, strings.Join(report.Initial.Corruption, ", "))))
	} else {
		v.sink.Publish(status.Warn(messages.BCDMissingComponents))
	}
	if !v.CanRepair() {
		v.sink.Publish(status.Error(messages.BCDRepairUnavailable))
		return report
	}

	batch := v.exec.ExecuteAll(ctx, store, v.repair, v.delay, "")
	report.Invocations += len(batch)
	report.Repaired = true

	enum = v.exec.Execute(store, EnumAll)
	report.Invocations++
	report.Output = enum.Output
	if enum.LaunchFailed {
		report.Inaccessible = true
		v.sink.Publish(status.Error(fmt.Sprintf(messages.BCDStoreInaccessibleFmt, source)))
		return report
	}
	report.Final = Inspect(enum.Output)
	if !report.Final.Healthy() {
		v.sink.Publish(status.Error(messages.BCDRepairFailed))
		return report
	}
	report.OK = true
	v.sink.Publish(status.Info(messages.BCDRepaired))
	v.sink.Publish(status.Info(fmt.Sprintf(messages.BCDValidatedFmt, source)))
	return report
}
