package config

import "github.com/conn-castle/wtg/internal/messages"

// FieldType classifies the kind of value a config field accepts.
type FieldType string

const (
	// FieldBool accepts true or false.
	FieldBool FieldType = "bool"
	// FieldDuration accepts a Go duration string such as 500ms.
	FieldDuration FieldType = "duration"
	// FieldFreetext accepts arbitrary string input.
	FieldFreetext FieldType = "freetext"
)

// FieldDef describes a single config key.
type FieldDef struct {
	Key         string
	Type        FieldType
	Default     string
	Description string
}

// fields is the canonical ordered registry of all config keys.
var fields = []FieldDef{
	{Key: "bcdedit.path", Type: FieldFreetext, Default: messages.ConfigDefaultToolPath, Description: messages.ConfigFieldToolPath},
	{Key: "bcdedit.store_file", Type: FieldFreetext, Default: messages.ConfigDefaultStoreFile, Description: messages.ConfigFieldStoreFile},
	{Key: "pacing.directive_delay", Type: FieldDuration, Default: messages.ConfigDefaultDirectiveWait, Description: messages.ConfigFieldDirectiveDelay},
	{Key: "pacing.entry_delay", Type: FieldDuration, Default: messages.ConfigDefaultEntryWait, Description: messages.ConfigFieldEntryDelay},
	{Key: "entry.enabled", Type: FieldBool, Default: "true", Description: messages.ConfigFieldEntryEnabled},
	{Key: "entry.label", Type: FieldFreetext, Default: messages.ConfigDefaultEntryLabel, Description: messages.ConfigFieldEntryLabel},
	{Key: "tuning.enabled", Type: FieldBool, Default: "false", Description: messages.ConfigFieldTuning},
}

// Fields returns a copy of the key registry in file order.
func Fields() []FieldDef {
	out := make([]FieldDef, len(fields))
	copy(out, fields)
	return out
}

// LookupField returns the definition for key.
func LookupField(key string) (FieldDef, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldDef{}, false
}
