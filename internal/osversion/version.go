// Package osversion identifies which Windows release is installed on a
// volume. Detection never fails: when neither marker files nor the kernel's
// version resource give an answer the result is Unknown, which every caller
// must treat as a valid, if degraded, outcome.
package osversion

import (
	"fmt"
	"strings"

	"github.com/conn-castle/wtg/internal/messages"
)

// Version is a closed set of known releases plus Unknown.
type Version int

// Known releases, oldest first.
const (
	Unknown Version = iota
	Vista
	Win7
	Win8
	Win81
	Win10
	Win11
)

var displayNames = map[Version]string{
	Unknown: "Unknown Windows Version",
	Vista:   "Windows Vista",
	Win7:    "Windows 7",
	Win8:    "Windows 8",
	Win81:   "Windows 8.1",
	Win10:   "Windows 10",
	Win11:   "Windows 11",
}

var keys = map[Version]string{
	Unknown: "unknown",
	Vista:   "vista",
	Win7:    "win7",
	Win8:    "win8",
	Win81:   "win8.1",
	Win10:   "win10",
	Win11:   "win11",
}

// All returns every Version value, including Unknown.
func All() []Version {
	return []Version{Unknown, Vista, Win7, Win8, Win81, Win10, Win11}
}

// String returns the display name.
func (v Version) String() string {
	if name, ok := displayNames[v]; ok {
		return name
	}
	return displayNames[Unknown]
}

// Key returns the short flag/config name, e.g. "win10".
func (v Version) Key() string {
	if key, ok := keys[v]; ok {
		return key
	}
	return keys[Unknown]
}

// Known reports whether v is a concrete release.
func (v Version) Known() bool {
	return v > Unknown && v <= Win11
}

// AtLeast reports whether v is a known release no older than other.
func (v Version) AtLeast(other Version) bool {
	return v.Known() && v >= other
}

// MarshalText renders the short key so the value reads well in YAML output.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.Key()), nil
}

// ParseVersion resolves a short key ("win10") or display name ("Windows 10").
func ParseVersion(value string) (Version, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for _, v := range All() {
		if needle == keys[v] || needle == strings.ToLower(displayNames[v]) {
			return v, nil
		}
	}
	names := make([]string, 0, len(keys))
	for _, v := range All() {
		names = append(names, keys[v])
	}
	return Unknown, fmt.Errorf(messages.OSVersionInvalidFmt, value, strings.Join(names, ", "))
}

// FileVersion is the product version embedded in a PE image.
type FileVersion struct {
	Major    uint16
	Minor    uint16
	Build    uint16
	Revision uint16
}

func (f FileVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", f.Major, f.Minor, f.Build, f.Revision)
}

// FromFileVersion maps a kernel product version to a release.
func FromFileVersion(fv FileVersion) Version {
	switch fv.Major {
	case 10:
		if fv.Build >= 22000 {
			return Win11
		}
		return Win10
	case 6:
		switch fv.Minor {
		case 0:
			return Vista
		case 1:
			return Win7
		case 2:
			return Win8
		case 3:
			return Win81
		}
	}
	return Unknown
}
