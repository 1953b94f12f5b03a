// Package ports defines the core interfaces for the application.
package ports

import (
	"time"

	"go.trai.ch/pkgsweep/internal/core/domain"
)

// Scanner enumerates a single directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Scanner interface {
	// Scan lists the entries of dir without descending into subdirectories.
	// It returns domain.ErrNotADirectory when dir is missing or not a directory.
	Scan(dir string) ([]domain.Entry, error)
}

// Timestamper looks up when a file was created.
type Timestamper interface {
	// CreatedAt returns the creation time of path, or its modification time
	// when the filesystem does not record creation.
	CreatedAt(path string) (time.Time, error)
}

// Remover deletes files.
type Remover interface {
	// Remove deletes the file at path.
	Remove(path string) error
}
