package messages

// Boot configuration store status lines and errors. Status lines are
// published to the status stream; *Fmt values ending in %w are errors.
const (
	// BCDExecutingFmt is published before each tool invocation.
	BCDExecutingFmt         = "Executing: %s"
	BCDLaunchFailed         = "ERROR: Failed to launch bcdedit"
	BCDLaunchFailedFmt      = "launch %s: elevated: %v; unelevated: %w"
	BCDElevationUnsupported = "elevated launch is not supported on this platform"
	BCDDirectiveWarnFmt     = "WARNING: Failed to apply USB modification: %s"
	BCDEntryConfigWarnFmt   = "WARNING: Failed to configure USB boot entry: %s"
	BCDInterrupted          = "interrupted before all directives were issued"

	BCDValidatingFmt        = "Validating system BCD store on drive %s..."
	BCDStoreMissingFmt      = "ERROR: BCD store not found on %s"
	BCDDetectedVersionFmt   = "Detected Windows version: %s"
	BCDStoreInaccessibleFmt = "ERROR: Cannot access BCD store on %s"
	BCDMissingComponents    = "WARNING: BCD missing essential components - attempting repair..."
	BCDCorruptionFmt        = "ERROR: BCD store appears corrupted (%s) - attempting repair..."
	BCDRepairUnavailable    = "ERROR: No repair directives available; pass a target volume to enable repair"
	BCDRepairFailed         = "ERROR: Failed to repair BCD components"
	BCDRepaired             = "BCD components repaired successfully"
	BCDValidatedFmt         = "System BCD validation completed for drive %s"

	BCDModifying          = "Modifying BCD bootloader for USB compatibility..."
	BCDApplyingTuning     = "Applying version-specific USB optimizations..."
	BCDModifyWarningsFmt  = "WARNING: %d of %d USB modifications failed"
	BCDStoreVanishedFmt   = "ERROR: BCD store on %s is no longer accessible"
	BCDAllLaunchesFailed  = "ERROR: bcdedit could not be launched for any modification"
	BCDCannotProceed      = "ERROR: Cannot proceed with corrupted BCD"
	BCDMakingBootableFmt  = "Making BCD bootable from USB: %s"
	BCDFinalValidation    = "Performing final USB boot validation..."
	BCDCorruptedAfterEdit = "ERROR: BCD corrupted after USB modifications"
	BCDConfigured         = "BCD successfully configured for USB boot!"
	BCDNowBootableFmt     = "USB Drive: %s is now bootable"

	BCDCreatingEntry       = "Creating USB-specific boot entry..."
	BCDEntrySkipped        = "Dedicated USB boot entry disabled; using modified existing entry"
	BCDEntryCreateFailed   = "ERROR: Failed to create USB boot entry"
	BCDEntryNoGUID         = "ERROR: Cannot extract GUID from bcdedit output"
	BCDEntryCreatedFmt     = "USB-specific boot entry created successfully: %s"
	BCDEntryNotPromotedFmt = "WARNING: USB boot entry %s was created but could not be made the default"
	BCDEntryNotElevated    = "WARNING: Not running as administrator; the create directive is run again to read the new entry's identifier, which can leave a duplicate or orphaned entry. Run wtg from an elevated shell to avoid this"
	BCDEntryFallbackFmt    = "WARNING: Failed to create dedicated USB boot entry, using modified existing entry: %v"
	BCDEntryCreateErrFmt   = "create boot entry (exit code %d): %w"
	BCDEntryParseErrFmt    = "parse boot entry identifier: %w"
	BCDEntryNotGUIDErrFmt  = "record identifier %s: %w"
	BCDRecordIDErrNotFound = "no {...} delimited record identifier in tool output"
	BCDRecordIDErrNotGUID  = "record identifier is not a GUID"
	BCDCreateFailedErr     = "create directive failed"
)
