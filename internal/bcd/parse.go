package bcd

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/conn-castle/wtg/internal/messages"
)

// Every assumption about the shape of the tool's console output lives in
// this file.

// Record markers that a healthy enumeration must contain.
const (
	BootManagerMarker = "Windows Boot Manager"
	BootLoaderMarker  = "Windows Boot Loader"
)

// corruptionMarkers appear in enumeration output when the store is damaged.
var corruptionMarkers = []string{
	"Element not found",
	"The system cannot find the file",
}

var (
	// ErrNoRecordID is returned when output carries no {...} token.
	ErrNoRecordID = errors.New(messages.BCDRecordIDErrNotFound)
	// ErrNotGUID is returned when a token is not a GUID.
	ErrNotGUID = errors.New(messages.BCDRecordIDErrNotGUID)
)

// Inspection summarizes an enumeration's output.
type Inspection struct {
	HasBootManager bool
	HasBootLoader  bool
	// Corruption lists the corruption markers found, in marker order.
	Corruption []string
}

// Healthy reports whether both records are present and nothing looks corrupt.
func (i Inspection) Healthy() bool {
	return i.HasBootManager && i.HasBootLoader && len(i.Corruption) == 0
}

// MissingRecords reports whether a required record marker is absent.
func (i Inspection) MissingRecords() bool {
	return !i.HasBootManager || !i.HasBootLoader
}

// Inspect scans enumeration output. Matching ignores case.
func Inspect(output string) Inspection {
	lower := strings.ToLower(output)
	insp := Inspection{
		HasBootManager: strings.Contains(lower, strings.ToLower(BootManagerMarker)),
		HasBootLoader:  strings.Contains(lower, strings.ToLower(BootLoaderMarker)),
	}
	for _, marker := range corruptionMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			insp.Corruption = append(insp.Corruption, marker)
		}
	}
	return insp
}

// ExtractRecordID returns the first {...} token in output, braces included.
// It never falls back to a sentinel: no token, an unclosed token, or an
// empty token is ErrNoRecordID.
func ExtractRecordID(output string) (RecordID, error) {
	start := strings.IndexByte(output, '{')
	if start < 0 {
		return "", ErrNoRecordID
	}
	end := strings.IndexByte(output[start:], '}')
	if end < 0 {
		return "", ErrNoRecordID
	}
	token := output[start : start+end+1]
	if strings.TrimSpace(token[1:len(token)-1]) == "" {
		return "", ErrNoRecordID
	}
	return RecordID(token), nil
}

// IsGUID reports whether the identifier is a brace-wrapped GUID rather
// than a sentinel such as {current}.
func (r RecordID) IsGUID() bool {
	s := string(r)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return false
	}
	_, err := uuid.Parse(s[1 : len(s)-1])
	return err == nil
}
