package bcd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/conn-castle/wtg/internal/logging"
	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/status"
)

// sleepFunc paces successive directives; tests replace it.
var sleepFunc = time.Sleep

// Result is the outcome of one directive. Executor never returns an error;
// every failure is represented here.
type Result struct {
	Directive Directive
	Succeeded bool
	ExitCode  int
	// Output is the tool's console text, populated best-effort even when
	// the directive failed.
	Output string
	// LaunchFailed is set when neither the elevated nor the unelevated
	// launch could start the tool.
	LaunchFailed bool
	Err          error
}

// Batch is the ordered results of a directive sequence.
type Batch []Result

// Failed returns the results that did not succeed.
func (b Batch) Failed() []Result {
	var failed []Result
	for _, r := range b {
		if !r.Succeeded {
			failed = append(failed, r)
		}
	}
	return failed
}

// AllLaunchesFailed reports whether the tool could not be started for any
// directive in a non-empty batch.
func (b Batch) AllLaunchesFailed() bool {
	if len(b) == 0 {
		return false
	}
	for _, r := range b {
		if !r.LaunchFailed {
			return false
		}
	}
	return true
}

// Executor runs directives through the external configuration tool.
type Executor struct {
	sys      System
	toolPath string
	sink     status.Sink
	logger   *slog.Logger
}

// NewExecutor returns an Executor invoking toolPath through sys.
func NewExecutor(sys System, toolPath string, sink status.Sink, logger *slog.Logger) *Executor {
	return &Executor{
		sys:      sys,
		toolPath: toolPath,
		sink:     status.Ensure(sink),
		logger:   logging.Ensure(logger),
	}
}

// ToolPath returns the configured tool path.
func (e *Executor) ToolPath() string { return e.toolPath }

// WithSink returns a copy of e that publishes to sink.
func (e *Executor) WithSink(sink status.Sink) *Executor {
	c := *e
	c.sink = status.Ensure(sink)
	return &c
}

// Execute applies d to store. It tries an elevated launch, then one
// unelevated launch. When the launch that ran did not capture output, a
// second unelevated launch collects it for parsing. Succeeded reflects the
// exit code of the launch that ran.
func (e *Executor) Execute(store Store, d Directive) Result {
	args := store.Args(d)
	line := store.CommandLine(e.toolPath, d)
	e.sink.Publish(status.Info(fmt.Sprintf(messages.BCDExecutingFmt, line)))
	e.logger.Debug("exec", "command", line)

	result := Result{Directive: d}
	launch, elevatedErr := e.sys.RunElevated(e.toolPath, args)
	if elevatedErr != nil {
		e.logger.Debug("elevated launch failed", "error", elevatedErr)
		var err error
		launch, err = e.sys.Run(e.toolPath, args)
		if err != nil {
			e.sink.Publish(status.Error(messages.BCDLaunchFailed))
			e.logger.Debug("unelevated launch failed", "error", err)
			result.LaunchFailed = true
			result.ExitCode = -1
			result.Err = fmt.Errorf(messages.BCDLaunchFailedFmt, e.toolPath, elevatedErr, err)
			return result
		}
	}

	result.ExitCode = launch.ExitCode
	result.Succeeded = launch.ExitCode == 0
	result.Output = launch.Output
	if !launch.Captured {
		output, err := e.sys.Capture(e.toolPath, args)
		if err != nil {
			e.logger.Debug("output capture failed", "error", err)
		}
		result.Output = output
	}
	e.logger.Debug("exit", "code", result.ExitCode, "output", result.Output)
	return result
}

// ExecuteAll applies every directive in order, waiting delay between
// directives. A failed directive is published as warnFmt and the sequence
// continues. Cancellation is only observed between directives; a launched
// tool always runs to completion.
func (e *Executor) ExecuteAll(ctx context.Context, store Store, directives []Directive, delay time.Duration, warnFmt string) Batch {
	if warnFmt == "" {
		warnFmt = messages.BCDDirectiveWarnFmt
	}
	batch := make(Batch, 0, len(directives))
	for i, d := range directives {
		if err := ctx.Err(); err != nil {
			e.logger.Debug("batch interrupted", "issued", i, "total", len(directives), "error", err)
			break
		}
		if i > 0 && delay > 0 {
			sleepFunc(delay)
		}
		result := e.Execute(store, d)
		if !result.Succeeded {
			e.sink.Publish(status.Warn(fmt.Sprintf(warnFmt, d.String())))
		}
		batch = append(batch, result)
	}
	return batch
}
