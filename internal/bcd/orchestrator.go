package bcd

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"

	"github.com/conn-castle/wtg/internal/logging"
	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/osversion"
	"github.com/conn-castle/wtg/internal/status"
	"github.com/conn-castle/wtg/internal/volume"
)

// State is a step of a preparation run.
type State int32

// Run states, in transition order.
const (
	Idle State = iota
	Validating
	Modifying
	CreatingEntry
	Revalidating
	Succeeded
	Failed
)

var stateNames = map[State]string{
	Idle:          "idle",
	Validating:    "validating",
	Modifying:     "modifying",
	CreatingEntry: "creating-entry",
	Revalidating:  "revalidating",
	Succeeded:     "succeeded",
	Failed:        "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Options tune a run.
type Options struct {
	StoreFile      string
	DirectiveDelay time.Duration
	EntryDelay     time.Duration
	CreateEntry    bool
	EntryLabel     string
	Tuning         bool
}

// VersionDetector reports the release installed on a source volume.
type VersionDetector interface {
	Detect(source volume.Source) osversion.Version
}

// Outcome is the result of a run.
type Outcome struct {
	State   State
	Version osversion.Version
	// RecordID is the dedicated entry, empty when none was created.
	RecordID RecordID
	EntryErr error
	// FailedIn is the state a failed run was in when it stopped.
	FailedIn State
	// Reason is the error line that ended a failed run.
	Reason        string
	Modifications Batch
	// Entry holds the dedicated entry's configuration results.
	Entry   Batch
	Initial Report
	Final   Report
}

// OK reports whether the run ended in Succeeded.
func (o Outcome) OK() bool { return o.State == Succeeded }

// Before is the enumeration text from the first validation.
func (o Outcome) Before() string { return o.Initial.Output }

// After is the enumeration text from the final validation.
func (o Outcome) After() string { return o.Final.Output }

// Warnings counts modification and entry configuration directives that failed.
func (o Outcome) Warnings() int {
	return len(o.Modifications.Failed()) + len(o.Entry.Failed())
}

// Orchestrator drives validation, modification, entry creation, and final
// validation in order. It is the only place that turns component results
// into a run outcome.
type Orchestrator struct {
	exec     *Executor
	fs       afero.Fs
	detector VersionDetector
	opts     Options
	sink     status.Sink
	logger   *slog.Logger
	state    atomic.Int32
}

// New returns an Orchestrator. Events published by components during a run
// are stamped with the current state before reaching sink.
func New(exec *Executor, fs afero.Fs, detector VersionDetector, opts Options, sink status.Sink, logger *slog.Logger) *Orchestrator {
	if opts.StoreFile == "" {
		opts.StoreFile = messages.ConfigDefaultStoreFile
	}
	if opts.EntryLabel == "" {
		opts.EntryLabel = messages.ConfigDefaultEntryLabel
	}
	o := &Orchestrator{
		fs:       fs,
		detector: detector,
		opts:     opts,
		logger:   logging.Ensure(logger),
	}
	o.sink = status.SinkFunc(func(e status.Event) {
		e.State = o.State().String()
		status.Ensure(sink).Publish(e)
	})
	o.exec = exec.WithSink(o.sink)
	return o
}

// State returns the current state. It is safe to call during Run.
func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

func (o *Orchestrator) enter(s State) {
	o.logger.Debug("state", "from", o.State().String(), "to", s.String())
	o.state.Store(int32(s))
}

func (o *Orchestrator) fail(outcome Outcome, reason string) Outcome {
	o.sink.Publish(status.Error(reason))
	outcome.FailedIn = o.State()
	o.enter(Failed)
	outcome.State = Failed
	outcome.Reason = reason
	return outcome
}

// Validator returns the validator used for runs against target.
func (o *Orchestrator) Validator(target volume.Target) *Validator {
	return NewValidator(o.exec, o.fs, o.opts.StoreFile, CommonDirectives(target), o.opts.DirectiveDelay, o.sink)
}

// EntryManager returns the entry manager used for runs.
func (o *Orchestrator) EntryManager() *EntryManager {
	return NewEntryManager(o.exec, o.opts.StoreFile, o.opts.EntryLabel, o.opts.EntryDelay, o.sink)
}

// Run makes target bootable by editing the store on source. Individual
// directive failures are warnings; the run fails only when the store is
// missing or unrepairable, disappears, or the tool cannot be launched.
func (o *Orchestrator) Run(ctx context.Context, source volume.Source, target volume.Target) Outcome {
	o.state.Store(int32(Idle))
	var outcome Outcome

	o.enter(Validating)
	if err := volume.Distinct(source, target); err != nil {
		return o.fail(outcome, messages.BCDCannotProceed+": "+err.Error())
	}
	outcome.Version = o.detector.Detect(source)
	validator := o.Validator(target)
	outcome.Initial = validator.Validate(ctx, outcome.Version, source)
	if !outcome.Initial.OK {
		return o.fail(outcome, messages.BCDCannotProceed)
	}

	o.enter(Modifying)
	o.sink.Publish(status.Info(messages.BCDModifying))
	o.sink.Publish(status.Info(fmt.Sprintf(messages.BCDMakingBootableFmt, target)))
	directives := Plan(outcome.Version, target)
	if o.opts.Tuning {
		o.sink.Publish(status.Info(messages.BCDApplyingTuning))
		directives = append(directives, PlanTuning(outcome.Version)...)
	}
	store := NewStore(source, o.opts.StoreFile)
	outcome.Modifications = o.exec.ExecuteAll(ctx, store, directives, o.opts.DirectiveDelay, "")
	if failed := len(outcome.Modifications.Failed()); failed > 0 {
		o.sink.Publish(status.Warn(fmt.Sprintf(messages.BCDModifyWarningsFmt, failed, len(directives))))
	}
	if outcome.Modifications.AllLaunchesFailed() {
		return o.fail(outcome, messages.BCDAllLaunchesFailed)
	}
	if !store.Exists(o.fs) {
		return o.fail(outcome, fmt.Sprintf(messages.BCDStoreVanishedFmt, source))
	}
	if len(outcome.Modifications) < len(directives) {
		return o.fail(outcome, messages.BCDInterrupted)
	}

	o.enter(CreatingEntry)
	if o.opts.CreateEntry {
		entry, err := o.EntryManager().Create(ctx, outcome.Version, source, target)
		if err != nil {
			outcome.EntryErr = err
			o.sink.Publish(status.Warn(fmt.Sprintf(messages.BCDEntryFallbackFmt, err)))
		} else {
			outcome.RecordID = entry.ID
			outcome.Entry = entry.Configuration
		}
	} else {
		o.sink.Publish(status.Info(messages.BCDEntrySkipped))
	}

	o.enter(Revalidating)
	o.sink.Publish(status.Info(messages.BCDFinalValidation))
	outcome.Final = validator.Validate(ctx, outcome.Version, source)
	if !outcome.Final.OK {
		return o.fail(outcome, messages.BCDCorruptedAfterEdit)
	}

	o.sink.Publish(status.Info(messages.BCDConfigured))
	o.sink.Publish(status.Info(fmt.Sprintf(messages.BCDNowBootableFmt, target)))
	o.enter(Succeeded)
	outcome.State = Succeeded
	return outcome
}
