package osversion

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// ErrNoVersionResource is returned when an image carries no VS_FIXEDFILEINFO.
var ErrNoVersionResource = errors.New("no version resource")

// fixedFileInfoSignature starts every VS_FIXEDFILEINFO record.
const fixedFileInfoSignature uint32 = 0xFEEF04BD

// fixedFileInfoSize is the size of VS_FIXEDFILEINFO in bytes.
const fixedFileInfoSize = 13 * 4

// fromProductVersion splits the packed ProductVersionMS/LS words.
func fromProductVersion(ms, ls uint32) FileVersion {
	return FileVersion{
		Major:    uint16(ms >> 16),
		Minor:    uint16(ms & 0xffff),
		Build:    uint16(ls >> 16),
		Revision: uint16(ls & 0xffff),
	}
}

// parseFixedFileInfo finds the first VS_FIXEDFILEINFO record in data and
// returns its product version.
func parseFixedFileInfo(data []byte) (FileVersion, error) {
	var sig [4]byte
	binary.LittleEndian.PutUint32(sig[:], fixedFileInfoSignature)

	offset := 0
	for {
		idx := bytes.Index(data[offset:], sig[:])
		if idx < 0 {
			return FileVersion{}, ErrNoVersionResource
		}
		start := offset + idx
		if start+fixedFileInfoSize > len(data) {
			return FileVersion{}, ErrNoVersionResource
		}
		// Records are DWORD aligned; skip unaligned false positives.
		if start%4 != 0 {
			offset = start + 1
			continue
		}
		// Layout: Signature, StrucVersion, FileVersionMS, FileVersionLS,
		// ProductVersionMS, ProductVersionLS, ...
		ms := binary.LittleEndian.Uint32(data[start+16:])
		ls := binary.LittleEndian.Uint32(data[start+20:])
		return fromProductVersion(ms, ls), nil
	}
}
