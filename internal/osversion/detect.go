package osversion

import (
	"github.com/spf13/afero"

	"github.com/conn-castle/wtg/internal/volume"
)

// VersionReader reads the product version embedded in an executable.
type VersionReader interface {
	ProductVersion(path string) (FileVersion, error)
}

// Method records how a Detection was reached.
type Method string

// Detection methods.
const (
	MethodMarker   Method = "marker file"
	MethodResource Method = "kernel version resource"
	MethodNone     Method = "no evidence"
)

// Detection is a detected release along with the evidence that produced it.
type Detection struct {
	Version  Version
	Method   Method
	Evidence string
}

type marker struct {
	file    string
	version Version
}

// markers are probed in order; the first file present wins.
var markers = []marker{
	{file: "MusNotification.exe", version: Win11},
	{file: "MusUpdateHandlers.dll", version: Win10},
	{file: "wcmapi.dll", version: Win81},
	{file: "PlayToManager.dll", version: Win8},
	{file: "api-ms-win-core-synch-l1-2-0.dll", version: Win7},
}

const kernelImage = "ntoskrnl.exe"

// Detector probes a source volume for its installed release.
type Detector struct {
	fs     afero.Fs
	reader VersionReader
}

// NewDetector returns a Detector reading marker files from fs and version
// resources through reader.
func NewDetector(fs afero.Fs, reader VersionReader) *Detector {
	return &Detector{fs: fs, reader: reader}
}

// Detect returns the release installed on source, or Unknown.
func (d *Detector) Detect(source volume.Source) Version {
	return d.DetectDetailed(source).Version
}

// DetectDetailed is Detect plus the evidence used.
func (d *Detector) DetectDetailed(source volume.Source) Detection {
	for _, m := range markers {
		path := source.Join("Windows", "System32", m.file)
		found, err := afero.Exists(d.fs, path)
		if err == nil && found {
			return Detection{Version: m.version, Method: MethodMarker, Evidence: path}
		}
	}

	if d.reader == nil {
		return Detection{Version: Unknown, Method: MethodNone}
	}
	kernel := source.Join("Windows", "System32", kernelImage)
	fv, err := d.reader.ProductVersion(kernel)
	if err != nil {
		return Detection{Version: Unknown, Method: MethodNone, Evidence: err.Error()}
	}
	version := FromFileVersion(fv)
	if version == Unknown {
		return Detection{Version: Unknown, Method: MethodNone, Evidence: kernel + " " + fv.String()}
	}
	return Detection{Version: version, Method: MethodResource, Evidence: kernel + " " + fv.String()}
}
