package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt       = "missing config file %s: %w"
	ConfigInvalidConfigFmt     = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt  = "%s: unrecognized config keys: %v"
	ConfigExpandPathFmt        = "expand config path %s: %w"
	ConfigValidationGuidance   = "(see `wtg --help` for the supported keys)"
	ConfigDelayInvalidFmt      = "%s: %s must be a non-negative duration such as 500ms (got %q)"
	ConfigStoreFileInvalidFmt  = "%s: bcdedit.store_file must be a bare file name (got %q)"
	ConfigEntryLabelRequired   = "%s: entry.label is required when entry.enabled is true"
	ConfigToolNotFoundFmt      = "bcdedit.path is empty and %s was not found on PATH: %w"
	ConfigDefaultToolPath      = `C:\Windows\System32\bcdedit.exe`
	ConfigDefaultToolName      = "bcdedit.exe"
	ConfigDefaultStoreFile     = "BCD"
	ConfigDefaultEntryLabel    = "Windows To Go - USB"
	ConfigDefaultDirectiveWait = "500ms"
	ConfigDefaultEntryWait     = "200ms"

	ConfigFieldToolPath       = "boot configuration tool executable; empty means look it up on PATH"
	ConfigFieldStoreFile      = "store file name under <source>\\Boot"
	ConfigFieldDirectiveDelay = "wait between modification directives"
	ConfigFieldEntryDelay     = "wait between boot entry configuration directives"
	ConfigFieldEntryEnabled   = "create a dedicated boot entry for the target volume"
	ConfigFieldEntryLabel     = "description of the dedicated boot entry"
	ConfigFieldTuning         = "apply the optional release-specific optimization batches"
	ConfigKeysHeader          = "Config keys (%s):\n"
	ConfigKeyLineFmt          = "  %-24s %-9s default %-34q %s\n"

	// VolumeInvalidFmt reports a volume that is not a drive letter with a colon.
	VolumeInvalidFmt     = "invalid %s volume %q: use a drive letter followed by a colon, like E:"
	VolumeInvalidRootFmt = "invalid %s volume %q: use a drive letter followed by a colon, like E:, or the absolute path where the volume is mounted"
	VolumeRoleSource     = "source"
	VolumeRoleTarget     = "target"

	// OSVersionInvalidFmt reports an unknown release name.
	OSVersionInvalidFmt = "unknown OS release %q (supported: %s)"
)
