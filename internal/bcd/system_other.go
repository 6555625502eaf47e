//go:build !windows

package bcd

// processElevated is true where no elevation prompt exists: every launch
// already captures its own output.
var processElevated = func() bool { return true }

// runElevated has no elevation prompt outside Windows; the executor falls
// back to an unelevated launch.
func runElevated(string, []string) (Launch, error) {
	return Launch{}, ErrElevationUnsupported
}
