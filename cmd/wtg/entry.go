package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wtg/internal/bcd"
	"github.com/conn-castle/wtg/internal/messages"
)

func newEntryCmd(root *rootOptions) *cobra.Command {
	var (
		volumes volumeFlags
		yes     bool
	)
	cmd := &cobra.Command{
		Use:   messages.EntryUse,
		Short: messages.EntryShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, target, err := volumes.parsePair()
			if err != nil {
				return err
			}
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			interactive := isInteractive()
			if !yes {
				if !interactive {
					return errors.New(messages.EntryRequiresConfirm)
				}
				ok, err := newConfirmer().Confirm(fmt.Sprintf(messages.EntryConfirmFmt, source, target), a.cfg.Entry.Label)
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.EntryCancelled)
					return nil
				}
			}

			reporter := newStatusReporter(a.stderr, interactive && !root.verbose)
			exec, err := a.executor(reporter.sink())
			if err != nil {
				return err
			}
			manager := bcd.NewEntryManager(exec, a.cfg.BCDEdit.StoreFile, a.cfg.Entry.Label, a.cfg.EntryDelay(), reporter.sink())

			reporter.start()
			entry, err := manager.Create(cmd.Context(), a.detector().Detect(source), source, target)
			reporter.stop()
			if err != nil {
				return fmt.Errorf(messages.EntryFailedFmt, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.EntryCreatedFmt, entry.ID)
			if n := len(entry.Configuration.Failed()); n > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.PrepareSummaryWarningsFmt, n)
			}
			return nil
		},
	}
	volumes.addSource(cmd, true)
	volumes.addTarget(cmd, true)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.FlagYes)
	return cmd
}
