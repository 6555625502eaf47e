package bcd

import "strings"

// RecordID names a record in the store, either a sentinel such as
// {current} or a GUID generated by a create directive.
type RecordID string

// Sentinel records that always exist.
const (
	BootManager RecordID = "{bootmgr}"
	Current     RecordID = "{current}"
)

// String returns the identifier with its braces.
func (r RecordID) String() string { return string(r) }

// Directive is one edit to the store, expressed as the tool's argument
// vector without the store selection switch.
type Directive []string

// Setting is an element/value pair applied to a record with /set.
type Setting struct {
	Element string
	Value   string
}

// On renders the setting as a /set directive for record.
func (s Setting) On(record RecordID) Directive {
	return Directive{"/set", string(record), s.Element, s.Value}
}

// applySettings renders settings against record in order.
func applySettings(record RecordID, settings []Setting) []Directive {
	out := make([]Directive, 0, len(settings))
	for _, s := range settings {
		out = append(out, s.On(record))
	}
	return out
}

// Args returns a copy of the argument vector.
func (d Directive) Args() []string {
	return append([]string(nil), d...)
}

// String renders the directive as it would be typed on a command line.
func (d Directive) String() string {
	parts := make([]string, len(d))
	for i, arg := range d {
		parts[i] = quoteArg(arg)
	}
	return strings.Join(parts, " ")
}

// RequiresVolume reports whether the directive carries a volume token.
func (d Directive) RequiresVolume() bool {
	for _, arg := range d {
		if strings.HasPrefix(arg, "partition=") {
			return true
		}
	}
	return false
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t") {
		return `"` + arg + `"`
	}
	return arg
}

// EnumAll lists every record in the store. It never modifies the store.
var EnumAll = Directive{"/enum", "all"}
