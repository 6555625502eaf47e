//go:build windows

package osversion

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// RealReader reads product versions through the Win32 version API.
type RealReader struct{}

// ProductVersion queries the root block of the file's version resource.
func (RealReader) ProductVersion(path string) (FileVersion, error) {
	size, err := windows.GetFileVersionInfoSize(path, nil)
	if err != nil || size == 0 {
		return FileVersion{}, fmt.Errorf("%s: %w", path, ErrNoVersionResource)
	}
	data := make([]byte, size)
	if err := windows.GetFileVersionInfo(path, 0, size, unsafe.Pointer(&data[0])); err != nil {
		return FileVersion{}, fmt.Errorf("%s: %w", path, err)
	}

	var fixed *windows.VS_FIXEDFILEINFO
	var length uint32
	if err := windows.VerQueryValue(unsafe.Pointer(&data[0]), `\`, unsafe.Pointer(&fixed), &length); err != nil {
		return FileVersion{}, fmt.Errorf("%s: %w", path, err)
	}
	if fixed == nil || length == 0 || fixed.Signature != fixedFileInfoSignature {
		return FileVersion{}, fmt.Errorf("%s: %w", path, ErrNoVersionResource)
	}
	return fromProductVersion(fixed.ProductVersionMS, fixed.ProductVersionLS), nil
}
