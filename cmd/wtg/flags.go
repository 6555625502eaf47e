package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/volume"
)

// volumeFlags are the --source and --target flags shared by commands.
type volumeFlags struct {
	source string
	target string
	// allowRoot lets --source name a mount directory.
	allowRoot bool
}

func (f *volumeFlags) addSource(cmd *cobra.Command, required bool) {
	cmd.Flags().StringVar(&f.source, "source", "", messages.FlagSource)
	if required {
		_ = cmd.MarkFlagRequired("source")
	}
}

// addSourceRoot is addSource for commands that only read the source, which
// may then be a mounted image.
func (f *volumeFlags) addSourceRoot(cmd *cobra.Command, required bool) {
	f.allowRoot = true
	cmd.Flags().StringVar(&f.source, "source", "", messages.FlagSourceRoot)
	if required {
		_ = cmd.MarkFlagRequired("source")
	}
}

func (f *volumeFlags) parseSource() (volume.Source, error) {
	if f.allowRoot {
		return volume.ParseSourceRoot(f.source)
	}
	return volume.ParseSource(f.source)
}

func (f *volumeFlags) addTarget(cmd *cobra.Command, required bool) {
	cmd.Flags().StringVar(&f.target, "target", "", messages.FlagTarget)
	if required {
		_ = cmd.MarkFlagRequired("target")
	}
}

// parsePair parses both volumes and rejects the same drive for both.
func (f *volumeFlags) parsePair() (volume.Source, volume.Target, error) {
	source, err := f.parseSource()
	if err != nil {
		return "", "", err
	}
	target, err := volume.ParseTarget(f.target)
	if err != nil {
		return "", "", err
	}
	if err := volume.Distinct(source, target); err != nil {
		return "", "", err
	}
	return source, target, nil
}
