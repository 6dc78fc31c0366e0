// Package filesystem abstracts the file probing done around the analysis
// core, so discovery and report lookup can be tested without disk.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Filesystem is the subset of os and filepath used to probe for inputs.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
	// DirFS roots an fs.FS at dir for pattern walks.
	DirFS(dir string) fs.FS
	Getwd() (string, error)
	Abs(path string) (string, error)
}

// DefaultFS is the host filesystem.
type DefaultFS struct{}

func (DefaultFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (DefaultFS) DirFS(dir string) fs.FS {
	return os.DirFS(dir)
}

func (DefaultFS) Getwd() (string, error) {
	return os.Getwd()
}

func (DefaultFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// FileExists reports whether name exists and is a regular file.
func FileExists(fsys Filesystem, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether name exists and is a directory.
func DirExists(fsys Filesystem, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}
