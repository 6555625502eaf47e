package bcd

import (
	"fmt"

	"github.com/conn-castle/wtg/internal/osversion"
	"github.com/conn-castle/wtg/internal/volume"
)

const (
	winloadPath = `\Windows\system32\winload.exe`
	systemRoot  = `\Windows`
)

// versionSettings holds the release-specific block applied to {current}.
// Every osversion.Version must have a non-empty entry; init enforces it.
var versionSettings = map[osversion.Version][]Setting{
	osversion.Unknown: {
		{"nointegritychecks", "on"},
		{"testsigning", "on"},
	},
	osversion.Vista: {
		{"nointegritychecks", "on"},
		{"pae", "forceenable"},
	},
	osversion.Win7: {
		{"nointegritychecks", "on"},
		{"pae", "forceenable"},
		{"useplatformclock", "yes"},
		{"truncatememory", "0x10000000"},
	},
	osversion.Win8: {
		{"nointegritychecks", "on"},
		{"loadoptions", "DISABLE_INTEGRITY_CHECKS"},
		{"bootmenupolicy", "Legacy"},
		{"useplatformtick", "yes"},
	},
	osversion.Win81: {
		{"nointegritychecks", "on"},
		{"loadoptions", "DISABLE_INTEGRITY_CHECKS"},
		{"bootmenupolicy", "Legacy"},
		{"useplatformtick", "yes"},
	},
	osversion.Win10: {
		{"testsigning", "on"},
		{"bootmenupolicy", "Standard"},
		{"isolatedcontext", "no"},
		{"allowprereleaseboot", "yes"},
		{"bootlog", "yes"},
		{"quietboot", "no"},
	},
	osversion.Win11: {
		{"testsigning", "on"},
		{"nointegritychecks", "on"},
		{"bootmenupolicy", "Standard"},
		{"hypervisorlaunchtype", "Off"},
		{"vsmlaunchtype", "Off"},
		{"allowprereleaseboot", "yes"},
		{"bootlog", "yes"},
		{"quietboot", "no"},
		{"isolatedcontext", "no"},
	},
}

// removableMediaSettings are vendor extension elements that mark the
// loader as booting from removable media.
var removableMediaSettings = []Setting{
	{"custom:16000069", "true"},
	{"custom:16000070", "1"},
	{"custom:16000071", "5000"},
}

func init() {
	for _, v := range osversion.All() {
		if len(versionSettings[v]) == 0 {
			panic(fmt.Sprintf("bcd: no directive block for %s", v.Key()))
		}
	}
}

// VersionSettings returns a copy of the release-specific block for v.
func VersionSettings(v osversion.Version) []Setting {
	settings, ok := versionSettings[v]
	if !ok {
		settings = versionSettings[osversion.Unknown]
	}
	return append([]Setting(nil), settings...)
}

// CommonDirectives points the boot manager and the current loader at target
// and applies the settings every release needs. It is also the repair batch.
func CommonDirectives(target volume.Target) []Directive {
	partition := target.Partition()
	return []Directive{
		Setting{"device", partition}.On(BootManager),
		Setting{"timeout", "10"}.On(BootManager),
		Setting{"displayorder", string(Current)}.On(BootManager),
		{"/displayorder", string(Current), "/addfirst"},
		Setting{"device", partition}.On(Current),
		Setting{"osdevice", partition}.On(Current),
		Setting{"path", winloadPath}.On(Current),
		Setting{"systemroot", systemRoot}.On(Current),
		Setting{"detecthal", "yes"}.On(Current),
		Setting{"winpe", "no"}.On(Current),
	}
}

// Plan returns the ordered edits that make the current loader boot from
// target on release v. It is pure and never returns an empty plan.
func Plan(v osversion.Version, target volume.Target) []Directive {
	plan := CommonDirectives(target)
	plan = append(plan, applySettings(Current, VersionSettings(v))...)
	plan = append(plan, applySettings(Current, removableMediaSettings)...)
	return plan
}
