package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// SignatureSuffix is appended to a package file name to form its detached signature.
	SignatureSuffix = ".sig"

	archiveMarker = ".pkg.tar."
	// minStemTokens is name, version, release and arch.
	minStemTokens = 4
)

// PackageFile is a package archive whose file name was parsed successfully.
// It is immutable once created by ParsePackageFile.
type PackageFile struct {
	// Path is the path the file was found at.
	Path string
	// Name is the package name. It may itself contain hyphens.
	Name string
	// Version is the "<version>-<release>" token, kept verbatim.
	Version string
	// Arch is the architecture token.
	Arch string
	// Compression is the token following ".pkg.tar.".
	Compression string
}

// FileName returns the base name of the package file.
func (p PackageFile) FileName() string {
	return filepath.Base(p.Path)
}

// Stem reassembles the file name without its ".pkg.tar.<compression>" extension.
func (p PackageFile) Stem() string {
	return p.Name + "-" + p.Version + "-" + p.Arch
}

// ParsePackageFile extracts the package identity from the file name at path.
//
// Parsing is right-anchored: the arch, release and version tokens are taken
// from the end of the stem because package names may contain hyphens.
func ParsePackageFile(path string) (PackageFile, error) {
	fileName := filepath.Base(path)

	idx := strings.LastIndex(fileName, archiveMarker)
	if idx < 0 {
		return PackageFile{}, malformed(fileName, "missing .pkg.tar.<compression> extension")
	}

	compression := fileName[idx+len(archiveMarker):]
	if compression == "" || strings.Contains(compression, ".") {
		return PackageFile{}, malformed(fileName, "extension is not exactly pkg.tar.<compression>")
	}

	tokens := strings.Split(fileName[:idx], "-")
	if len(tokens) < minStemTokens {
		return PackageFile{}, malformed(fileName, "expected <name>-<version>-<release>-<arch>")
	}

	last := len(tokens) - 1
	arch, release, version := tokens[last], tokens[last-1], tokens[last-2]
	name := strings.Join(tokens[:last-2], "-")

	if name == "" || version == "" || release == "" || arch == "" {
		return PackageFile{}, malformed(fileName, "empty name, version, release or arch")
	}

	versionString := version + "-" + release
	if _, err := ParseVersion(versionString); err != nil {
		return PackageFile{}, zerr.With(err, "file", fileName)
	}

	return PackageFile{
		Path:        path,
		Name:        name,
		Version:     versionString,
		Arch:        arch,
		Compression: compression,
	}, nil
}

func malformed(fileName, reason string) error {
	return zerr.With(zerr.With(ErrMalformedPackageName, "file", fileName), "reason", reason)
}

// IsSignature reports whether path names a detached signature file.
func IsSignature(path string) bool {
	return strings.HasSuffix(path, SignatureSuffix) && len(filepath.Base(path)) > len(SignatureSuffix)
}

// SignedPath returns the data file path a signature file belongs to.
func SignedPath(signaturePath string) string {
	return strings.TrimSuffix(signaturePath, SignatureSuffix)
}
