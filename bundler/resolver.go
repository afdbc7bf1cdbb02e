package bundler

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Resolver is the bundler's two out-of-scope collaborator callbacks
// (spec §4.5/§6): `resolve_filename` maps a current directory and a raw
// import specifier to a canonical module name plus the new current
// directory; `resolve_import` returns that canonical module's source
// bytes.
type Resolver interface {
	ResolveFilename(currentDir, name string) (canonicalName, newCurrentDir string, err error)
	ResolveImport(canonicalName string) (string, error)
}

// FsResolver is the default Resolver, backed by an afero.Fs so module
// graphs can be built against the real filesystem or, in tests, an
// in-memory one (afero.NewMemMapFs) without touching disk.
type FsResolver struct {
	FS afero.Fs
	// Extensions is tried in order when name has no extension of its own.
	// Defaults to {".eco", ".js"} when nil.
	Extensions []string
}

// NewFsResolver builds a FsResolver over fs with the default extension
// search order.
func NewFsResolver(fs afero.Fs) *FsResolver {
	return &FsResolver{FS: fs, Extensions: []string{".eco", ".js"}}
}

func (r *FsResolver) extensions() []string {
	if len(r.Extensions) > 0 {
		return r.Extensions
	}
	return []string{".eco", ".js"}
}

// ResolveFilename joins name against currentDir and, when it has no
// extension, tries each of Extensions in turn until a file exists.
func (r *FsResolver) ResolveFilename(currentDir, name string) (string, string, error) {
	joined := name
	if !filepath.IsAbs(joined) {
		joined = filepath.Join(currentDir, name)
	}
	joined = filepath.Clean(joined)

	candidates := []string{joined}
	if filepath.Ext(joined) == "" {
		for _, ext := range r.extensions() {
			candidates = append(candidates, joined+ext)
		}
	}

	for _, c := range candidates {
		if exists, _ := afero.Exists(r.FS, c); exists {
			return c, filepath.Dir(c), nil
		}
	}
	return "", "", fmt.Errorf("cannot resolve module %q from %q", name, currentDir)
}

// ResolveImport reads the canonical module's source from the filesystem.
func (r *FsResolver) ResolveImport(canonicalName string) (string, error) {
	bytes, err := afero.ReadFile(r.FS, canonicalName)
	if err != nil {
		return "", fmt.Errorf("cannot read module %q: %w", canonicalName, err)
	}
	return string(bytes), nil
}
