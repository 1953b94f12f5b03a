// Package config provides the configuration loader for pkgsweep.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger reading from the local file system.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load reads the configuration file at path. With an empty path the default
// location is used, and a missing default file yields domain.DefaultConfig.
func (l *Loader) Load(path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.DefaultConfigPath()
		if path == "" {
			l.Logger.Debug("no config location available, using defaults")
			return domain.DefaultConfig(), nil
		}
	}

	if _, err := l.FS.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		if explicit {
			return domain.Config{}, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		l.Logger.Debug(fmt.Sprintf("no config file at %s, using defaults", path))
		return domain.DefaultConfig(), nil
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := decode(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := l.toConfig(path, &file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug(fmt.Sprintf("loaded config from %s", path))
	return cfg, nil
}

// decode parses data strictly. Unknown keys are an error; an empty document is not.
func decode(data []byte, target *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (l *Loader) toConfig(path string, file *File) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.DryRun = file.DryRun

	if file.ConfirmLevel != "" {
		level, err := domain.ParseConfirmLevel(file.ConfirmLevel)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.ConfirmLevel = level
	}

	if file.TargetDirectory != "" {
		dir, err := l.resolveDirectory(filepath.Dir(path), file.TargetDirectory)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.TargetDirectory = dir
	}

	return cfg, nil
}

// resolveDirectory expands a leading "~" and makes relative directories
// relative to the directory holding the config file.
func (l *Loader) resolveDirectory(base, dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := l.FS.UserHomeDir()
		if err != nil {
			return "", zerr.Wrap(err, "failed to expand home directory")
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	return filepath.Clean(dir), nil
}
