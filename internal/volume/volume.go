// Package volume types the two drive roles wtg works with. A Source holds the
// installed OS and its boot configuration store; a Target is the removable
// volume being made bootable. Keeping them as separate types means a function
// that needs one cannot be handed the other.
//
// A Source may also be the directory where a volume is mounted, for reading
// an offline OS image without the boot configuration tool.
package volume

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/conn-castle/wtg/internal/messages"
)

// ErrInvalid is wrapped by parse failures.
var ErrInvalid = errors.New("invalid volume")

var driveLetter = regexp.MustCompile(`^[A-Za-z]:$`)

// Source names the volume holding the OS being configured.
type Source string

// Target names the removable volume being made bootable.
type Target string

// ParseSource validates and normalizes a source drive designator.
func ParseSource(value string) (Source, error) {
	normalized, err := normalize(value, messages.VolumeRoleSource)
	if err != nil {
		return "", err
	}
	return Source(normalized), nil
}

// ParseSourceRoot accepts a source drive designator or the absolute path of
// a directory where the source volume is mounted.
func ParseSourceRoot(value string) (Source, error) {
	trimmed := strings.TrimSpace(value)
	if driveLetter.MatchString(trimmed) {
		return Source(strings.ToUpper(trimmed)), nil
	}
	if trimmed == "" || !filepath.IsAbs(trimmed) {
		return "", fmt.Errorf("%w: "+messages.VolumeInvalidRootFmt, ErrInvalid, messages.VolumeRoleSource, value)
	}
	return Source(filepath.Clean(trimmed)), nil
}

// ParseTarget validates and normalizes a target drive designator.
func ParseTarget(value string) (Target, error) {
	normalized, err := normalize(value, messages.VolumeRoleTarget)
	if err != nil {
		return "", err
	}
	return Target(normalized), nil
}

func normalize(value string, role string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !driveLetter.MatchString(trimmed) {
		return "", fmt.Errorf("%w: "+messages.VolumeInvalidFmt, ErrInvalid, role, value)
	}
	return strings.ToUpper(trimmed), nil
}

// String returns the drive designator, e.g. "C:", or the mount root.
func (s Source) String() string { return string(s) }

// MountRoot reports whether s is a mount directory rather than a drive.
func (s Source) MountRoot() bool {
	return !driveLetter.MatchString(string(s))
}

// Join builds a path rooted at the volume: a Windows path for a drive, a
// host path for a mount root.
func (s Source) Join(elem ...string) string {
	if s.MountRoot() {
		parts := []string{string(s)}
		for _, e := range elem {
			parts = append(parts, strings.Split(strings.Trim(e, `\/`), `\`)...)
		}
		return filepath.Join(parts...)
	}
	return join(string(s), elem)
}

// String returns the drive designator, e.g. "F:".
func (t Target) String() string { return string(t) }

// Join builds a Windows path rooted at the volume.
func (t Target) Join(elem ...string) string {
	return join(string(t), elem)
}

// Partition renders the device value the boot store uses for this volume.
func (t Target) Partition() string {
	return "partition=" + string(t)
}

// Distinct reports an error when both roles name the same drive.
func Distinct(source Source, target Target) error {
	if strings.EqualFold(string(source), string(target)) {
		return errors.New(messages.VolumesMustDiffer)
	}
	return nil
}

func join(root string, elem []string) string {
	if len(elem) == 0 {
		return root + `\`
	}
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		e = strings.Trim(e, `\/`)
		if e != "" {
			parts = append(parts, e)
		}
	}
	return root + `\` + strings.Join(parts, `\`)
}
