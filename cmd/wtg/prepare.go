package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wtg/internal/bcd"
	"github.com/conn-castle/wtg/internal/messages"
)

type prepareOptions struct {
	volumes   volumeFlags
	yes       bool
	noEntry   bool
	showDiff  bool
	diffLines int
}

func newPrepareCmd(root *rootOptions) *cobra.Command {
	opts := &prepareOptions{}
	cmd := &cobra.Command{
		Use:   messages.PrepareUse,
		Short: messages.PrepareShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrepare(cmd, root, opts)
		},
	}
	opts.volumes.addSource(cmd, true)
	opts.volumes.addTarget(cmd, true)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, messages.FlagYes)
	cmd.Flags().BoolVar(&opts.noEntry, "no-entry", false, messages.FlagNoEntry)
	cmd.Flags().BoolVar(&opts.showDiff, "show-diff", false, messages.FlagShowDiff)
	cmd.Flags().IntVar(&opts.diffLines, "diff-lines", defaultDiffMaxLines, messages.FlagDiffLines)
	return cmd
}

func runPrepare(cmd *cobra.Command, root *rootOptions, opts *prepareOptions) error {
	source, target, err := opts.volumes.parsePair()
	if err != nil {
		return err
	}
	a, err := loadApp(cmd, root)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	interactive := isInteractive()
	if !opts.yes {
		if !interactive {
			return errors.New(messages.PrepareRequiresConfirm)
		}
		version := a.detector().Detect(source)
		count := len(bcd.Plan(version, target))
		if a.cfg.Tuning.Enabled {
			count += len(bcd.PlanTuning(version))
		}
		description := fmt.Sprintf(messages.PrepareConfirmDescFmt, version, count, bcd.NewStore(source, a.cfg.BCDEdit.StoreFile).Path())
		ok, err := newConfirmer().Confirm(fmt.Sprintf(messages.PrepareConfirmFmt, source, target), description)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(out, messages.PrepareCancelled)
			return nil
		}
	}

	reporter := newStatusReporter(a.stderr, interactive && !root.verbose)
	exec, err := a.executor(reporter.sink())
	if err != nil {
		return err
	}
	orchestrator := bcd.New(exec, a.fs, a.detector(), a.orchestratorOptions(!opts.noEntry), reporter.sink(), a.logger)

	reporter.start()
	outcome := orchestrator.Run(cmd.Context(), source, target)
	reporter.stop()

	printOutcome(out, outcome, target.String())
	if opts.showDiff {
		printStoreDiff(out, bcd.NewStore(source, a.cfg.BCDEdit.StoreFile).Path(), outcome, opts.diffLines)
	}
	if !outcome.OK() {
		return &SilentExitError{Code: 1}
	}
	return nil
}

func printOutcome(out io.Writer, outcome bcd.Outcome, target string) {
	if outcome.OK() {
		_, _ = fmt.Fprintf(out, messages.PrepareSummarySucceededFmt, target, outcome.Version)
	} else {
		_, _ = fmt.Fprintf(out, messages.PrepareSummaryFailedFmt, outcome.FailedIn, outcome.Reason)
	}
	if outcome.RecordID != "" {
		_, _ = fmt.Fprintf(out, messages.PrepareSummaryEntryFmt, outcome.RecordID)
	}
	if n := outcome.Warnings(); n > 0 {
		_, _ = fmt.Fprintf(out, messages.PrepareSummaryWarningsFmt, n)
	}
}

func printStoreDiff(out io.Writer, store string, outcome bcd.Outcome, maxLines int) {
	rendered, _ := renderStoreDiff(store, outcome.Before(), outcome.After(), maxLines)
	if rendered == "" {
		_, _ = fmt.Fprintln(out, messages.PrepareDiffUnchanged)
		return
	}
	_, _ = fmt.Fprintln(out, messages.PrepareDiffHeader)
	_, _ = fmt.Fprint(out, rendered)
}
