package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wtg/internal/bcd"
	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/status"
	"github.com/conn-castle/wtg/internal/volume"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var volumes volumeFlags
	cmd := &cobra.Command{
		Use:   messages.ValidateUse,
		Short: messages.ValidateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := volume.ParseSource(volumes.source)
			if err != nil {
				return err
			}
			// Repair points the store at the target, so it needs one.
			var repair []bcd.Directive
			if volumes.target != "" {
				var target volume.Target
				source, target, err = volumes.parsePair()
				if err != nil {
					return err
				}
				repair = bcd.CommonDirectives(target)
			}
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}

			board := &status.Board{}
			reporter := newStatusReporter(a.stderr, isInteractive() && !root.verbose)
			sink := status.Fanout{reporter.sink(), board}
			exec, err := a.executor(sink)
			if err != nil {
				return err
			}
			validator := bcd.NewValidator(exec, a.fs, a.cfg.BCDEdit.StoreFile, repair, a.cfg.DirectiveDelay(), sink)

			reporter.start()
			report := validator.Validate(cmd.Context(), a.detector().Detect(source), source)
			reporter.stop()

			out := cmd.OutOrStdout()
			if report.Repaired {
				_, _ = fmt.Fprintln(out, messages.ValidateRepaired)
			}
			if !report.OK {
				_, _ = fmt.Fprintf(out, messages.ValidateFailFmt, source)
				if last := board.Err(); last != "" {
					_, _ = fmt.Fprintln(out, last)
				}
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintf(out, messages.ValidateOKFmt, source)
			return nil
		},
	}
	volumes.addSource(cmd, true)
	volumes.addTarget(cmd, false)
	return cmd
}
