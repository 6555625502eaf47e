package bcd

import (
	"github.com/spf13/afero"

	"github.com/conn-castle/wtg/internal/volume"
)

// Store is a boot configuration store file. It can only be built from a
// source volume, so target volumes never select which store is edited.
type Store struct {
	source volume.Source
	path   string
}

// NewStore locates the store file named fileName under source's Boot directory.
func NewStore(source volume.Source, fileName string) Store {
	return Store{source: source, path: source.Join("Boot", fileName)}
}

// Source returns the volume the store lives on.
func (s Store) Source() volume.Source { return s.source }

// Path returns the store file path.
func (s Store) Path() string { return s.path }

// Args prefixes a directive with the store selection switch.
func (s Store) Args(d Directive) []string {
	args := make([]string, 0, len(d)+2)
	args = append(args, "/store", s.path)
	return append(args, d...)
}

// CommandLine renders the full invocation for logs and status lines.
func (s Store) CommandLine(toolPath string, d Directive) string {
	return quoteArg(toolPath) + ` /store "` + s.path + `" ` + d.String()
}

// Exists reports whether the store file is present as a regular file.
func (s Store) Exists(fs afero.Fs) bool {
	info, err := fs.Stat(s.path)
	return err == nil && !info.IsDir()
}
