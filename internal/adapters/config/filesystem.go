package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts the project tree for testability.
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// ReadDir lists the entries of a directory sorted by name.
	ReadDir(path string) ([]fs.DirEntry, error)
	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is built from the project root by the loader
	return os.ReadFile(path)
}

// ReadDir lists the entries of a directory sorted by name.
func (o *OSFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// IsDir checks if the path is a directory.
func (o *OSFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// MapFSAdapter adapts an fs.FS such as fstest.MapFS to FileSystem for testing.
type MapFSAdapter struct {
	FS   fs.FS
	Root string // simulated project root
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: root,
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.toRelPath(path))
}

// ReadDir lists the entries of a directory sorted by name.
func (m *MapFSAdapter) ReadDir(path string) ([]fs.DirEntry, error) {
	return fs.ReadDir(m.FS, m.toRelPath(path))
}

// IsDir checks if the path is a directory.
func (m *MapFSAdapter) IsDir(path string) (bool, error) {
	info, err := m.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// toRelPath converts a path under Root to the slash separated form fs.FS expects.
// Paths outside the root are returned unchanged so fs operations fail with
// "file not found".
func (m *MapFSAdapter) toRelPath(path string) string {
	path = filepath.Clean(path)
	if filepath.IsAbs(path) {
		if m.Root != "/" && path != m.Root && !strings.HasPrefix(path, m.Root+string(filepath.Separator)) {
			return path
		}
		path = strings.TrimPrefix(path, m.Root)
		path = strings.TrimPrefix(path, string(filepath.Separator))
	}
	if path == "" {
		return "."
	}
	return filepath.ToSlash(path)
}
