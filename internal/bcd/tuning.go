package bcd

import "github.com/conn-castle/wtg/internal/osversion"

var (
	debugSettings = []Setting{
		{"bootlog", "yes"},
		{"sos", "yes"},
		{"debug", "yes"},
		{"debugtype", "Serial"},
		{"debugport", "1"},
		{"baudrate", "115200"},
	}
	legacySettings = []Setting{
		{"nx", "OptIn"},
		{"increaseuserva", "3072"},
		{"removememory", "0"},
	}
	baselineSettings = []Setting{
		{"nx", "OptIn"},
	}
)

// PlanTuning returns optional optimization and compatibility edits for the
// current loader. They are applied after Plan when tuning is enabled.
func PlanTuning(v osversion.Version) []Directive {
	var settings []Setting
	switch v {
	case osversion.Win10, osversion.Win11:
		settings = append(settings, debugSettings...)
	case osversion.Win7, osversion.Win8, osversion.Win81:
		settings = append(settings, legacySettings...)
	default:
		settings = append(settings, baselineSettings...)
	}

	settings = append(settings,
		Setting{"nointegritychecks", "on"},
		Setting{"testsigning", "on"},
		Setting{"bootmenupolicy", "Legacy"},
	)
	if v.AtLeast(osversion.Win8) {
		settings = append(settings,
			Setting{"disabledynamictick", "yes"},
			Setting{"useplatformclock", "yes"},
		)
	}
	settings = append(settings,
		Setting{"removememory", "0"},
		Setting{"truncatememory", "0"},
	)
	if v.AtLeast(osversion.Win10) {
		settings = append(settings,
			Setting{"hypervisorlaunchtype", "Off"},
			Setting{"vsmlaunchtype", "Off"},
			Setting{"isolatedcontext", "no"},
		)
	}
	return applySettings(Current, settings)
}
