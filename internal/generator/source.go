package generator

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source is a dialect file the generator reads syllables from.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// File returns a Source reading the dialect file at path.
func File(p string) Source {
	return fileSource{path: p}
}

// FS returns a Source reading name from fsys, e.g. an embed.FS.
func FS(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

type fileSource struct {
	path string
}

func (s fileSource) Name() string {
	return trimExt(filepath.Base(s.path))
}

func (s fileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Name() string {
	return trimExt(path.Base(s.name))
}

func (s fsSource) Open() (io.ReadCloser, error) {
	return s.fsys.Open(s.name)
}

func trimExt(base string) string {
	return strings.TrimSuffix(base, path.Ext(base))
}
