package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgsweep/internal/adapters/config"
	"go.trai.ch/pkgsweep/internal/core/domain"
	"go.trai.ch/pkgsweep/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_Explicit(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "pkgsweep.yaml", `
targetDirectory: /var/cache/pacman/pkg
dryRun: true
confirmLevel: Everything
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		TargetDirectory: "/var/cache/pacman/pkg",
		DryRun:          true,
		ConfirmLevel:    domain.ConfirmEverything,
	}, cfg)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	path := createFile(t, t.TempDir(), "pkgsweep.yaml", "dryRun: true\n")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.DryRun)
	assert.Equal(t, domain.DefaultConfirmLevel, cfg.ConfirmLevel)
	assert.Empty(t, cfg.TargetDirectory)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := createFile(t, t.TempDir(), "pkgsweep.yaml", "")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_RelativeTargetDirectory(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "pkgsweep.yaml", "targetDirectory: cache/pkg\n")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cache", "pkg"), cfg.TargetDirectory)
}

func TestLoader_Load_HomeTargetDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := createFile(t, t.TempDir(), "pkgsweep.yaml", "targetDirectory: ~/packages\n")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "packages"), cfg.TargetDirectory)
}

func TestLoader_Load_DefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := newLoader(t).Load("")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultConfig(), cfg)
	})

	t.Run("present file is read", func(t *testing.T) {
		appDir := filepath.Join(xdg, domain.AppName)
		require.NoError(t, os.MkdirAll(appDir, 0o750))
		createFile(t, appDir, domain.ConfigFileName, "confirmLevel: nothing\n")

		cfg, err := newLoader(t).Load("")
		require.NoError(t, err)
		assert.Equal(t, domain.ConfirmNothing, cfg.ConfirmLevel)
	})
}

func TestLoader_Load_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{
			name:    "explicit file missing",
			path:    filepath.Join(dir, "missing.yaml"),
			wantMsg: domain.ErrConfigNotFound.Error(),
		},
		{
			name:    "unknown key",
			path:    createFile(t, dir, "unknown.yaml", "colour: red\n"),
			wantMsg: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "malformed yaml",
			path:    createFile(t, dir, "malformed.yaml", "dryRun: [\n"),
			wantMsg: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "wrong type",
			path:    createFile(t, dir, "type.yaml", "dryRun: sometimes\n"),
			wantMsg: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unknown confirm level",
			path:    createFile(t, dir, "level.yaml", "confirmLevel: always\n"),
			wantMsg: domain.ErrInvalidConfirmLevel.Error(),
		},
		{
			name:    "directory instead of file",
			path:    dir,
			wantMsg: domain.ErrConfigReadFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(tt.path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

type failingFS struct {
	config.OSFS
}

func (failingFS) Stat(string) (fs.FileInfo, error) {
	return nil, fs.ErrPermission
}

func TestLoader_Load_StatFailure(t *testing.T) {
	loader := newLoader(t)
	loader.FS = &failingFS{}

	_, err := loader.Load("/etc/pkgsweep.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
