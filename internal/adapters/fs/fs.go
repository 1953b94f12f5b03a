// Package fs provides file system adapters for scanning a package directory,
// reading creation times and removing files.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filesystem implements ports.Scanner, ports.Timestamper and ports.Remover
// on the local file system.
type Filesystem struct{}

// New creates a new Filesystem.
func New() *Filesystem {
	return &Filesystem{}
}

// Scan lists the entries directly inside dir, sorted by file name.
// Symlinks are followed to decide whether an entry is a regular file.
func (f *Filesystem) Scan(dir string) ([]domain.Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, notADirectory(dir)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat directory"), "path", dir)
	}
	if !info.IsDir() {
		return nil, notADirectory(dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}

	entries := make([]domain.Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		path := filepath.Join(dir, d.Name())
		entries = append(entries, domain.Entry{
			Path:    path,
			Regular: isRegular(path, d),
		})
	}

	return entries, nil
}

func notADirectory(dir string) error {
	return zerr.With(zerr.Wrap(domain.ErrNotADirectory, "cannot scan target"), "path", dir)
}

// isRegular reports whether d is a regular file, resolving symlinks.
// Dangling symlinks are not regular files.
func isRegular(path string, d iofs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// CreatedAt returns the birth time of path when the file system records it,
// and its modification time otherwise.
func (f *Filesystem) CreatedAt(path string) (time.Time, error) {
	if t, ok := birthTime(path); ok {
		return t, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.ModTime(), nil
}

// Remove deletes the file at path. A file that is already gone is not an error.
func (f *Filesystem) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to delete file"), "path", path)
	}
	return nil
}
