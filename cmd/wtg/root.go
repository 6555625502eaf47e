package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/conn-castle/wtg/internal/bcd"
	"github.com/conn-castle/wtg/internal/config"
	"github.com/conn-castle/wtg/internal/logging"
	"github.com/conn-castle/wtg/internal/messages"
	"github.com/conn-castle/wtg/internal/osversion"
	"github.com/conn-castle/wtg/internal/prompt"
	"github.com/conn-castle/wtg/internal/status"
	"github.com/conn-castle/wtg/internal/terminal"
)

// Seams replaced by tests.
var (
	newSystem        = func() bcd.System { return bcd.RealSystem{} }
	newFs            = afero.NewOsFs
	newVersionReader = func() osversion.VersionReader { return osversion.RealReader{} }
	newConfirmer     = func() prompt.Confirmer { return prompt.NewHuhUI() }
	isInteractive    = terminal.IsInteractive
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          rootLong(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, messages.RootFlagVerbose)

	cmd.AddCommand(
		newPrepareCmd(opts),
		newValidateCmd(opts),
		newPlanCmd(opts),
		newDetectCmd(opts),
		newEntryCmd(opts),
	)
	return cmd
}

// rootLong appends the config key reference to the root description.
func rootLong() string {
	var b strings.Builder
	b.WriteString(messages.RootShort)
	b.WriteString("\n\n")
	_, _ = fmt.Fprintf(&b, messages.ConfigKeysHeader, config.DefaultPath)
	for _, f := range config.Fields() {
		_, _ = fmt.Fprintf(&b, messages.ConfigKeyLineFmt, f.Key, f.Type, f.Default, f.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// app is what every command that touches a volume needs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	fs     afero.Fs
	sys    bcd.System
	// stderr is shared by the logger and the status reporter.
	stderr io.Writer
}

// loadApp reads the config and builds the shared dependencies.
func loadApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	explicit := cmd.Root().PersistentFlags().Changed("config")
	cfg, err := config.Load(opts.configPath, explicit)
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	stderr := logging.SyncWriter(cmd.ErrOrStderr())
	logger := logging.New(stderr, level)
	logger.Debug("config loaded", "path", opts.configPath, "explicit", explicit)
	return &app{cfg: cfg, logger: logger, fs: newFs(), sys: newSystem(), stderr: stderr}, nil
}

// detector returns the release detector for this process.
func (a *app) detector() *osversion.Detector {
	return osversion.NewDetector(a.fs, newVersionReader())
}

// executor resolves the tool path and returns an executor publishing to sink.
func (a *app) executor(sink status.Sink) (*bcd.Executor, error) {
	toolPath, err := a.cfg.ResolveToolPath()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("tool resolved", "path", toolPath)
	return bcd.NewExecutor(a.sys, toolPath, sink, a.logger), nil
}

// orchestratorOptions maps the config onto a run.
func (a *app) orchestratorOptions(createEntry bool) bcd.Options {
	return bcd.Options{
		StoreFile:      a.cfg.BCDEdit.StoreFile,
		DirectiveDelay: a.cfg.DirectiveDelay(),
		EntryDelay:     a.cfg.EntryDelay(),
		CreateEntry:    createEntry && a.cfg.EntryEnabled(),
		EntryLabel:     a.cfg.Entry.Label,
		Tuning:         a.cfg.Tuning.Enabled,
	}
}
