package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wtg/internal/messages"
)

func newDetectCmd(root *rootOptions) *cobra.Command {
	var volumes volumeFlags
	cmd := &cobra.Command{
		Use:   messages.DetectUse,
		Short: messages.DetectShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := volumes.parseSource()
			if err != nil {
				return err
			}
			a, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			detection := a.detector().DetectDetailed(source)
			a.logger.Debug("detected", "version", detection.Version.Key(), "method", string(detection.Method), "evidence", detection.Evidence)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.DetectResFmt, source, detection.Version, detection.Method)
			return nil
		},
	}
	volumes.addSourceRoot(cmd, true)
	return cmd
}
