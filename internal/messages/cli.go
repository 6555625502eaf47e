package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "wtg"
	// RootShort is the short description for the root command.
	RootShort       = "Make an OS-to-go volume bootable by editing its boot configuration store"
	RootVersionFlag = "Print version and exit"
	RootFlagConfig  = "Path to the wtg config file"
	RootFlagVerbose = "Trace every boot configuration tool invocation to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagSource     = "Volume holding the installed OS and its boot store (e.g. C:)"
	FlagSourceRoot = "Volume holding the installed OS (e.g. C:), or the directory where it is mounted"
	FlagTarget     = "Removable volume being made bootable (e.g. F:)"
	FlagYes        = "Apply boot store edits without asking for confirmation"
	FlagNoEntry    = "Skip creating a dedicated boot entry for the removable volume"
	FlagShowDiff   = "Print a diff of the store enumeration before and after the run"
	FlagDiffLines  = "Maximum number of diff lines to print"
	FlagOSVersion  = "Plan for this release instead of detecting it (vista, win7, win8, win8.1, win10, win11, unknown)"
	FlagPlanFormat = "Output format: text or yaml"

	// PrepareUse is the prepare command name.
	PrepareUse   = "prepare"
	PrepareShort = "Validate, modify, and re-validate the boot store so the target volume boots"

	PrepareConfirmFmt          = "Edit the boot configuration store on %s so that %s becomes bootable?"
	PrepareConfirmDescFmt      = "Detected %s; %d edits will be applied to %s."
	PrepareRequiresConfirm     = "prepare modifies the boot configuration store; re-run with --yes to confirm in a non-interactive session"
	PrepareCancelled           = "prepare cancelled; no changes were made"
	PrepareSummarySucceededFmt = "Succeeded: %s is now bootable (%s)\n"
	PrepareSummaryFailedFmt    = "Failed while %s: %s\n"
	PrepareSummaryEntryFmt     = "Dedicated boot entry: %s\n"
	PrepareSummaryWarningsFmt  = "%d directive(s) reported warnings\n"
	PrepareDiffHeader          = "Boot store changes:"
	PrepareDiffUnchanged       = "Boot store enumeration is unchanged."
	DiffTruncatedFmt           = "... (truncated to %d lines; rerun with --diff-lines <n> to see more)"

	// ValidateUse is the validate command name.
	ValidateUse      = "validate"
	ValidateShort    = "Check the boot store for required records and corruption, repairing it when a target is given"
	ValidateOKFmt    = "Boot store on %s is healthy\n"
	ValidateFailFmt  = "Boot store on %s failed validation\n"
	ValidateRepaired = "A repair batch was applied during validation."

	// PlanUse is the plan command name.
	PlanUse              = "plan"
	PlanShort            = "Print the boot store edits that prepare would apply"
	PlanHeaderFmt        = "Plan for %s targeting %s (%d directives):\n"
	PlanLineFmt          = "%3d. %s\n"
	PlanFormatInvalidFmt = "unsupported format %q (supported: text, yaml)"
	PlanNeedsSource      = "plan needs --version or --source to choose a release"

	// DetectUse is the detect command name.
	DetectUse    = "detect"
	DetectShort  = "Detect the OS release installed on a volume"
	DetectResFmt = "%s runs %s (%s)\n"

	// EntryUse is the entry command name.
	EntryUse             = "entry"
	EntryShort           = "Create a dedicated boot entry for the target volume"
	EntryCreatedFmt      = "Created boot entry %s\n"
	EntryFailedFmt       = "failed to create boot entry: %w"
	EntryConfirmFmt      = "Create a boot entry in the store on %s that boots %s?"
	EntryCancelled       = "entry cancelled; no changes were made"
	EntryRequiresConfirm = "entry modifies the boot configuration store; re-run with --yes to confirm in a non-interactive session"
	VolumesMustDiffer    = "source and target volumes must differ"

	// PromptRequiresTerminal is returned when a prompt is shown without a TTY.
	PromptRequiresTerminal = "confirmation requires an interactive terminal"
	PromptCancelled        = "confirmation cancelled"
)
