//go:build !windows

package osversion

import (
	"debug/pe"
	"fmt"
)

// RealReader reads product versions from PE images on disk.
type RealReader struct{}

// ProductVersion scans the image's resource section for VS_FIXEDFILEINFO.
func (RealReader) ProductVersion(path string) (FileVersion, error) {
	file, err := pe.Open(path)
	if err != nil {
		return FileVersion{}, err
	}
	defer func() {
		_ = file.Close()
	}()

	section := file.Section(".rsrc")
	if section == nil {
		return FileVersion{}, fmt.Errorf("%s: %w", path, ErrNoVersionResource)
	}
	data, err := section.Data()
	if err != nil {
		return FileVersion{}, fmt.Errorf("%s: %w", path, err)
	}
	fv, err := parseFixedFileInfo(data)
	if err != nil {
		return FileVersion{}, fmt.Errorf("%s: %w", path, err)
	}
	return fv, nil
}
